package index

import (
	"strings"

	"github.com/hirakinii/osf-api-mcp/internal/model"
)

// undefinedName stands in for a missing schema name in deduplication keys,
// so that two unnamed occurrences with different paths both survive.
const undefinedName = "undefined"

// Occurrence is one concrete (schema name, path, method) binding recorded
// for a response schema.
type Occurrence struct {
	Name   string
	Path   string
	Method model.Method
	Schema *model.Schema
}

// schemaIndex maps schema names and property names to the response-schema
// occurrences that carry them. Keys keep first-seen order so query results
// are deterministic.
type schemaIndex struct {
	nameOrder []string
	byName    map[string][]Occurrence

	propOrder  []string
	byProperty map[string][]Occurrence
}

func newSchemaIndex() schemaIndex {
	return schemaIndex{
		byName:     make(map[string][]Occurrence),
		byProperty: make(map[string][]Occurrence),
	}
}

// add indexes every response schema of the operation. Property indexing
// covers the schema's direct properties and, for array schemas, the direct
// properties of the item schema. One level of unwrapping, never a full
// recursive descent, which bounds traversal depth on self-referencing
// schema graphs.
func (si *schemaIndex) add(op *model.Operation) {
	for i := range op.Responses {
		resp := &op.Responses[i]
		if resp.Schema == nil {
			continue
		}

		occ := occurrenceFor(op, resp)

		if occ.Name != "" {
			if _, seen := si.byName[occ.Name]; !seen {
				si.nameOrder = append(si.nameOrder, occ.Name)
			}
			si.byName[occ.Name] = append(si.byName[occ.Name], occ)
		}

		for _, prop := range resp.Schema.PropertyNames() {
			si.addProperty(prop, occ)
		}
		if resp.Schema.Items != nil {
			for _, prop := range resp.Schema.Items.PropertyNames() {
				si.addProperty(prop, occ)
			}
		}
	}
}

func (si *schemaIndex) addProperty(prop string, occ Occurrence) {
	if _, seen := si.byProperty[prop]; !seen {
		si.propOrder = append(si.propOrder, prop)
	}
	si.byProperty[prop] = append(si.byProperty[prop], occ)
}

// occurrenceFor names a response schema by its explicit override name when
// present, falling back to the schema's own title.
func occurrenceFor(op *model.Operation, resp *model.Response) Occurrence {
	name := resp.SchemaName
	if name == "" {
		name = resp.Schema.Title
	}
	return Occurrence{
		Name:   name,
		Path:   op.Path,
		Method: op.Method,
		Schema: resp.Schema,
	}
}

// SchemaQuery selects at most one search mode, evaluated in order: schema
// name substring, then property name substring, then exact path+method.
// Criteria after the first satisfied one are ignored.
type SchemaQuery struct {
	Name     string
	Property string
	Path     string
	Method   string
}

// SearchSchemas resolves a schema query. In path+method mode the
// occurrences are synthesized from the operation's responses on the fly;
// a missing operation is a not-found error naming path and method.
func (e *Engine) SearchSchemas(q SchemaQuery) ([]Occurrence, error) {
	switch {
	case q.Name != "":
		return dedupe(e.schemas.matchKeys(q.Name, e.schemas.nameOrder, e.schemas.byName)), nil

	case q.Property != "":
		return dedupe(e.schemas.matchKeys(q.Property, e.schemas.propOrder, e.schemas.byProperty)), nil

	case q.Path != "" && q.Method != "":
		method, ok := model.ParseMethod(q.Method)
		if !ok {
			return nil, &OperationNotFoundError{Path: q.Path, Method: strings.ToUpper(q.Method)}
		}
		op, ok := e.endpoints.lookup(q.Path, method)
		if !ok {
			return nil, &OperationNotFoundError{Path: q.Path, Method: string(method)}
		}
		var occs []Occurrence
		for i := range op.Responses {
			resp := &op.Responses[i]
			if resp.Schema == nil {
				continue
			}
			occs = append(occs, occurrenceFor(op, resp))
		}
		return dedupe(occs), nil

	default:
		return nil, nil
	}
}

func (si *schemaIndex) matchKeys(sub string, order []string, m map[string][]Occurrence) []Occurrence {
	sub = strings.ToLower(sub)
	var occs []Occurrence
	for _, key := range order {
		if strings.Contains(strings.ToLower(key), sub) {
			occs = append(occs, m[key]...)
		}
	}
	return occs
}

// dedupe removes exact (path, method, name) duplicates. A missing name
// participates in the key as the literal undefined marker, so unnamed
// occurrences at different paths are still distinct.
func dedupe(occs []Occurrence) []Occurrence {
	seen := make(map[string]bool, len(occs))
	out := make([]Occurrence, 0, len(occs))
	for _, occ := range occs {
		name := occ.Name
		if name == "" {
			name = undefinedName
		}
		key := occ.Path + "\x00" + string(occ.Method) + "\x00" + name
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, occ)
	}
	return out
}
