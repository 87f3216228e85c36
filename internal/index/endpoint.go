package index

import (
	"sort"
	"strings"

	"github.com/hirakinii/osf-api-mcp/internal/model"
)

// EndpointSummary is the lightweight endpoint record returned by the
// endpoint and tag resolvers.
type EndpointSummary struct {
	Path        string
	Method      model.Method
	Summary     string
	Description string
	OperationID string
	Tags        []string
	Parameters  []model.Parameter
}

// EndpointEntry is the compact record returned by ListEndpoints.
type EndpointEntry struct {
	Path        string
	Method      model.Method
	Summary     string
	OperationID string
	Tags        []string
}

// operationRef locates an operation by path and method.
type operationRef struct {
	path   string
	method model.Method
}

// endpointIndex supports path/method/operationId lookup and tag grouping.
// Paths, tags and operation ids keep document traversal order.
type endpointIndex struct {
	pathOrder []string
	paths     map[string]map[model.Method]*model.Operation

	tagOrder []string
	tags     map[string][]EndpointSummary

	idOrder      []string
	operationIDs map[string]operationRef
}

func newEndpointIndex() endpointIndex {
	return endpointIndex{
		paths:        make(map[string]map[model.Method]*model.Operation),
		tags:         make(map[string][]EndpointSummary),
		operationIDs: make(map[string]operationRef),
	}
}

func (ei *endpointIndex) add(op *model.Operation) {
	byMethod, ok := ei.paths[op.Path]
	if !ok {
		byMethod = make(map[model.Method]*model.Operation)
		ei.paths[op.Path] = byMethod
		ei.pathOrder = append(ei.pathOrder, op.Path)
	}
	byMethod[op.Method] = op

	// An operation with several tags appears under each of them.
	for _, tag := range op.Tags {
		if _, seen := ei.tags[tag]; !seen {
			ei.tagOrder = append(ei.tagOrder, tag)
		}
		ei.tags[tag] = append(ei.tags[tag], summarize(op))
	}

	// Duplicate operation ids are not flagged; the last write wins.
	if op.ID != "" {
		if _, seen := ei.operationIDs[op.ID]; !seen {
			ei.idOrder = append(ei.idOrder, op.ID)
		}
		ei.operationIDs[op.ID] = operationRef{path: op.Path, method: op.Method}
	}
}

func (ei *endpointIndex) lookup(path string, method model.Method) (*model.Operation, bool) {
	op, ok := ei.paths[path][method]
	return op, ok
}

func summarize(op *model.Operation) EndpointSummary {
	return EndpointSummary{
		Path:        op.Path,
		Method:      op.Method,
		Summary:     op.Summary,
		Description: op.Description,
		OperationID: op.ID,
		Tags:        op.Tags,
		Parameters:  op.Parameters,
	}
}

// EndpointQuery filters the endpoint search. All substring matches are
// case-insensitive. When OperationID is set it takes precedence and the
// path, method and tag filters are ignored entirely.
type EndpointQuery struct {
	Path        string
	Method      string
	OperationID string
	Tag         string
	Limit       int
}

// SearchEndpoints resolves an endpoint query against the endpoint index.
// With no filters set it returns all endpoints up to the limit.
func (e *Engine) SearchEndpoints(q EndpointQuery) []EndpointSummary {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	if q.OperationID != "" {
		return e.searchByOperationID(q.OperationID, limit)
	}

	pathSub := strings.ToLower(q.Path)
	tagSub := strings.ToLower(q.Tag)

	// The limit is caller-supplied and unbounded; never allocate off it.
	results := make([]EndpointSummary, 0, min(limit, len(e.endpoints.pathOrder)))
	for _, path := range e.endpoints.pathOrder {
		if pathSub != "" && !strings.Contains(strings.ToLower(path), pathSub) {
			continue
		}
		byMethod := e.endpoints.paths[path]
		for _, method := range model.Methods {
			op, ok := byMethod[method]
			if !ok {
				continue
			}
			if q.Method != "" && !strings.EqualFold(q.Method, string(method)) {
				continue
			}
			if tagSub != "" && !anyTagContains(op.Tags, tagSub) {
				continue
			}
			results = append(results, summarize(op))
			if len(results) >= limit {
				return results
			}
		}
	}
	return results
}

func (e *Engine) searchByOperationID(sub string, limit int) []EndpointSummary {
	sub = strings.ToLower(sub)
	results := make([]EndpointSummary, 0, min(limit, len(e.endpoints.idOrder)))
	for _, id := range e.endpoints.idOrder {
		if !strings.Contains(strings.ToLower(id), sub) {
			continue
		}
		ref := e.endpoints.operationIDs[id]
		if op, ok := e.endpoints.lookup(ref.path, ref.method); ok {
			results = append(results, summarize(op))
			if len(results) >= limit {
				break
			}
		}
	}
	return results
}

func anyTagContains(tags []string, sub string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), sub) {
			return true
		}
	}
	return false
}

// TagResult bundles one matched tag with its endpoints as accumulated at
// index time, cross-tag duplicates included.
type TagResult struct {
	Tag         string
	Description string
	Endpoints   []EndpointSummary
}

// TagEndpoints returns every tag whose name contains the given substring,
// case-insensitively, with its full endpoint list. Tag descriptions are
// resolved from the specification's tag definitions only when requested.
func (e *Engine) TagEndpoints(tag string, includeDescription bool) []TagResult {
	sub := strings.ToLower(tag)

	var results []TagResult
	for _, name := range e.endpoints.tagOrder {
		if !strings.Contains(strings.ToLower(name), sub) {
			continue
		}
		result := TagResult{Tag: name, Endpoints: e.endpoints.tags[name]}
		if includeDescription {
			if def := e.spec.TagByName(name); def != nil {
				result.Description = def.Description
			}
		}
		results = append(results, result)
	}
	return results
}

// ListEndpoints enumerates every (path, method) pair sorted by path then
// method, paginated by offset and limit.
func (e *Engine) ListEndpoints(offset, limit int) []EndpointEntry {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries := make([]EndpointEntry, 0, len(e.endpoints.pathOrder))
	for _, path := range e.endpoints.pathOrder {
		byMethod := e.endpoints.paths[path]
		for _, method := range model.Methods {
			op, ok := byMethod[method]
			if !ok {
				continue
			}
			entries = append(entries, EndpointEntry{
				Path:        op.Path,
				Method:      op.Method,
				Summary:     op.Summary,
				OperationID: op.ID,
				Tags:        op.Tags,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Method < entries[j].Method
	})

	if offset >= len(entries) {
		return nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end]
}
