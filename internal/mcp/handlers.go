package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hirakinii/osf-api-mcp/internal/index"
	"github.com/hirakinii/osf-api-mcp/internal/model"
)

func (s *Server) handleSearchEndpoints(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchEndpointsInput,
) (*mcp.CallToolResult, SearchEndpointsOutput, error) {
	results := s.engine.SearchEndpoints(index.EndpointQuery{
		Path:        input.Path,
		Method:      input.Method,
		OperationID: input.OperationID,
		Tag:         input.Tag,
		Limit:       input.Limit,
	})

	output := SearchEndpointsOutput{
		Endpoints: toEndpoints(results),
		Count:     len(results),
	}
	return nil, output, nil
}

func (s *Server) handleListEndpoints(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListEndpointsInput,
) (*mcp.CallToolResult, ListEndpointsOutput, error) {
	entries := s.engine.ListEndpoints(input.Offset, input.Limit)

	listed := make([]ListedEndpoint, 0, len(entries))
	for _, e := range entries {
		listed = append(listed, ListedEndpoint{
			Path:        e.Path,
			Method:      string(e.Method),
			Summary:     e.Summary,
			OperationID: e.OperationID,
			Tags:        e.Tags,
		})
	}

	return nil, ListEndpointsOutput{
		Endpoints: listed,
		Total:     s.engine.Stats().Operations,
	}, nil
}

func (s *Server) handleTagEndpoints(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TagEndpointsInput,
) (*mcp.CallToolResult, TagEndpointsOutput, error) {
	if input.Tag == "" {
		return nil, TagEndpointsOutput{}, missingParamError("get_tag_endpoints", "tag")
	}

	results := s.engine.TagEndpoints(input.Tag, input.IncludeDescription)

	tags := make([]TagEntry, 0, len(results))
	for _, r := range results {
		tags = append(tags, TagEntry{
			TagName:     r.Tag,
			Description: r.Description,
			Endpoints:   toEndpoints(r.Endpoints),
		})
	}

	return nil, TagEndpointsOutput{Tags: tags}, nil
}

func (s *Server) handleSearchSchemas(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchSchemasInput,
) (*mcp.CallToolResult, SearchSchemasOutput, error) {
	occs, err := s.engine.SearchSchemas(index.SchemaQuery{
		Name:     input.SchemaName,
		Property: input.Property,
		Path:     input.Path,
		Method:   input.Method,
	})
	if err != nil {
		return nil, SearchSchemasOutput{}, err
	}

	schemas := make([]SchemaOccurrence, 0, len(occs))
	for _, occ := range occs {
		schemas = append(schemas, SchemaOccurrence{
			SchemaName: occ.Name,
			Path:       occ.Path,
			Method:     string(occ.Method),
			Schema:     toSchema(occ.Schema),
		})
	}

	return nil, SearchSchemasOutput{Schemas: schemas, Count: len(schemas)}, nil
}

func (s *Server) handleSearchFulltext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchFulltextInput,
) (*mcp.CallToolResult, SearchFulltextOutput, error) {
	if input.Query == "" {
		return nil, SearchFulltextOutput{}, missingParamError("search_fulltext", "query")
	}

	hits := s.engine.SearchFulltext(input.Query, input.Limit)

	results := make([]FulltextResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, FulltextResult{
			Path:          h.Path,
			Method:        string(h.Method),
			Summary:       h.Summary,
			Description:   h.Description,
			Score:         h.Score,
			MatchedFields: h.MatchedFields,
		})
	}

	return nil, SearchFulltextOutput{Results: results, Count: len(results)}, nil
}

func (s *Server) handleListTags(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListTagsInput,
) (*mcp.CallToolResult, ListTagsOutput, error) {
	defs := s.engine.TagDefinitions()
	tags := make([]Tag, 0, len(defs))
	for _, t := range defs {
		tags = append(tags, Tag{Name: t.Name, Description: t.Description})
	}

	groups := s.engine.TagGroups()
	out := ListTagsOutput{Tags: tags}
	for _, g := range groups {
		out.Groups = append(out.Groups, TagGroup{Name: g.Name, Tags: g.Tags})
	}

	return nil, out, nil
}

func toEndpoints(summaries []index.EndpointSummary) []Endpoint {
	endpoints := make([]Endpoint, 0, len(summaries))
	for _, s := range summaries {
		endpoints = append(endpoints, Endpoint{
			Path:        s.Path,
			Method:      string(s.Method),
			Summary:     s.Summary,
			Description: s.Description,
			OperationID: s.OperationID,
			Tags:        s.Tags,
			Parameters:  toParameters(s.Parameters),
		})
	}
	return endpoints
}

func toParameters(params []model.Parameter) []Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		out = append(out, Parameter{
			Name:        p.Name,
			In:          string(p.In),
			Description: p.Description,
			Required:    p.Required,
		})
	}
	return out
}

func toSchema(s *model.Schema) *Schema {
	if s == nil {
		return nil
	}
	out := &Schema{
		Title:  s.Title,
		Type:   string(s.Type),
		Format: s.Format,
		Ref:    s.Ref,
		Items:  toSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for _, p := range s.Properties {
			out.Properties[p.Name] = toSchema(p.Schema)
		}
	}
	return out
}
