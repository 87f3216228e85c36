// Package mcp exposes the index engine's query resolvers as MCP tools
// over stdio or streamable HTTP.
package mcp

// SearchEndpointsInput defines the input for the search_endpoints tool.
type SearchEndpointsInput struct {
	Path        string `json:"path,omitempty" jsonschema:"case-insensitive substring to match against endpoint paths"`
	Method      string `json:"method,omitempty" jsonschema:"HTTP method to match exactly, case-insensitive"`
	OperationID string `json:"operationId,omitempty" jsonschema:"case-insensitive substring to match against operation ids; when set all other filters are ignored"`
	Tag         string `json:"tag,omitempty" jsonschema:"case-insensitive substring matched against any of an endpoint's tags"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of endpoints to return (default 10)"`
}

// SearchEndpointsOutput contains the matched endpoints.
type SearchEndpointsOutput struct {
	Endpoints []Endpoint `json:"endpoints"`
	Count     int        `json:"count"`
}

// Endpoint is the full endpoint record returned by search and tag tools.
type Endpoint struct {
	Path        string      `json:"path"`
	Method      string      `json:"method"`
	Summary     string      `json:"summary,omitempty"`
	Description string      `json:"description,omitempty"`
	OperationID string      `json:"operationId,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Parameters  []Parameter `json:"parameters,omitempty"`
}

// Parameter mirrors one operation parameter.
type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// ListEndpointsInput defines the input for the list_endpoints tool.
type ListEndpointsInput struct {
	Offset int `json:"offset,omitempty" jsonschema:"number of endpoints to skip (default 0)"`
	Limit  int `json:"limit,omitempty" jsonschema:"maximum number of endpoints to return (default 50)"`
}

// ListEndpointsOutput contains one page of the endpoint listing.
type ListEndpointsOutput struct {
	Endpoints []ListedEndpoint `json:"endpoints"`
	Total     int              `json:"total"`
}

// ListedEndpoint is the compact record of the paginated listing.
type ListedEndpoint struct {
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Summary     string   `json:"summary,omitempty"`
	OperationID string   `json:"operationId,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// TagEndpointsInput defines the input for the get_tag_endpoints tool.
type TagEndpointsInput struct {
	Tag                string `json:"tag" jsonschema:"case-insensitive substring to match against tag names"`
	IncludeDescription bool   `json:"includeDescription,omitempty" jsonschema:"include tag descriptions from the document's tag definitions (default false)"`
}

// TagEndpointsOutput contains every matched tag with its endpoints.
type TagEndpointsOutput struct {
	Tags []TagEntry `json:"tags"`
}

// TagEntry bundles a tag name with its endpoints.
type TagEntry struct {
	TagName     string     `json:"tagName"`
	Description string     `json:"description,omitempty"`
	Endpoints   []Endpoint `json:"endpoints"`
}

// SearchSchemasInput defines the input for the search_schemas tool. The
// criteria are evaluated in order: schemaName, then property, then
// path+method; the first one present wins and the rest are ignored.
type SearchSchemasInput struct {
	SchemaName string `json:"schemaName,omitempty" jsonschema:"case-insensitive substring to match against response schema names"`
	Property   string `json:"property,omitempty" jsonschema:"case-insensitive substring to match against schema property names"`
	Path       string `json:"path,omitempty" jsonschema:"exact endpoint path; requires method"`
	Method     string `json:"method,omitempty" jsonschema:"HTTP method for the path lookup"`
}

// SearchSchemasOutput contains the matched schema occurrences.
type SearchSchemasOutput struct {
	Schemas []SchemaOccurrence `json:"schemas"`
	Count   int                `json:"count"`
}

// SchemaOccurrence is one (schema name, path, method) binding with the
// schema snapshot.
type SchemaOccurrence struct {
	SchemaName string  `json:"schemaName,omitempty"`
	Path       string  `json:"path,omitempty"`
	Method     string  `json:"method,omitempty"`
	Schema     *Schema `json:"schema"`
}

// Schema is the serialized recursive schema snapshot.
type Schema struct {
	Title      string             `json:"title,omitempty"`
	Type       string             `json:"type,omitempty"`
	Format     string             `json:"format,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Ref        string             `json:"$ref,omitempty"`
}

// SearchFulltextInput defines the input for the search_fulltext tool.
type SearchFulltextInput struct {
	Query string `json:"query" jsonschema:"free-text query matched against endpoint summaries, descriptions and parameter text"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchFulltextOutput contains the ranked fulltext hits.
type SearchFulltextOutput struct {
	Results []FulltextResult `json:"results"`
	Count   int              `json:"count"`
}

// FulltextResult is one scored fulltext hit.
type FulltextResult struct {
	Path          string   `json:"path"`
	Method        string   `json:"method"`
	Summary       string   `json:"summary,omitempty"`
	Description   string   `json:"description,omitempty"`
	Score         float64  `json:"score"`
	MatchedFields []string `json:"matchedFields"`
}

// ListTagsInput defines the input for the list_tags tool. It takes no
// parameters.
type ListTagsInput struct{}

// ListTagsOutput contains the tag definitions and tag groups in document
// order.
type ListTagsOutput struct {
	Tags   []Tag      `json:"tags"`
	Groups []TagGroup `json:"groups,omitempty"`
}

// Tag is one tag definition.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TagGroup is one named grouping of tags.
type TagGroup struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}
