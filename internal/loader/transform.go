package loader

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"go.yaml.in/yaml/v4"

	"github.com/hirakinii/osf-api-mcp/internal/model"
)

type transformer struct {
	componentSchemas map[*base.Schema]string

	// visitedRefs and visitedPtrs track schemas on the current descent
	// path so that self-referencing schema graphs transform in bounded
	// time. Named schemas are tracked by reference name: libopenapi may
	// hand out a distinct *base.Schema per proxy resolution of the same
	// $ref, so pointer identity alone would miss the revisit. Anonymous
	// schemas fall back to pointer identity.
	visitedRefs map[string]bool
	visitedPtrs map[*base.Schema]bool
}

func Transform(result *Result) (*model.Spec, error) {
	doc := result.Document.Model

	t := &transformer{
		componentSchemas: make(map[*base.Schema]string),
		visitedRefs:      make(map[string]bool),
		visitedPtrs:      make(map[*base.Schema]bool),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			t.componentSchemas[schemaProxy.Schema()] = name
		}
	}

	spec := &model.Spec{
		Info:      transformInfo(doc.Info),
		Tags:      transformTags(doc.Tags),
		TagGroups: transformTagGroups(&doc),
	}

	if doc.Paths != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			spec.Paths = append(spec.Paths, t.transformPath(pathStr, pathItem))
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func transformTags(tags []*base.Tag) []model.Tag {
	var result []model.Tag
	for _, t := range tags {
		result = append(result, model.Tag{
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return result
}

// transformTagGroups decodes the Redoc-style x-tagGroups vendor extension,
// when present. OSF groups its tags this way for display.
func transformTagGroups(doc *v3.Document) []model.TagGroup {
	if doc.Extensions == nil {
		return nil
	}

	for pair := doc.Extensions.First(); pair != nil; pair = pair.Next() {
		if pair.Key() != "x-tagGroups" {
			continue
		}
		node := pair.Value()
		if node == nil || node.Kind != yaml.SequenceNode {
			return nil
		}

		var groups []model.TagGroup
		for _, item := range node.Content {
			if item.Kind != yaml.MappingNode {
				continue
			}
			var group model.TagGroup
			for i := 0; i < len(item.Content)-1; i += 2 {
				key := item.Content[i].Value
				value := item.Content[i+1]
				switch key {
				case "name":
					group.Name = value.Value
				case "tags":
					for _, tag := range value.Content {
						group.Tags = append(group.Tags, tag.Value)
					}
				}
			}
			groups = append(groups, group)
		}
		return groups
	}

	return nil
}

func (t *transformer) transformPath(pathStr string, pathItem *v3.PathItem) model.Path {
	path := model.Path{Path: pathStr}

	methods := []struct {
		method model.Method
		op     *v3.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPost, pathItem.Post},
		{model.MethodPut, pathItem.Put},
		{model.MethodPatch, pathItem.Patch},
		{model.MethodDelete, pathItem.Delete},
		{model.MethodHead, pathItem.Head},
		{model.MethodOptions, pathItem.Options},
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		path.Operations = append(path.Operations, t.transformOperation(m.method, pathStr, m.op))
	}

	return path
}

func (t *transformer) transformOperation(method model.Method, path string, op *v3.Operation) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, t.transformParameter(p))
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			operation.Responses = append(operation.Responses, t.transformResponse(code, resp))
		}
	}

	return operation
}

func (t *transformer) transformParameter(p *v3.Parameter) model.Parameter {
	param := model.Parameter{
		Name:        p.Name,
		In:          model.ParameterLocation(strings.ToLower(p.In)),
		Description: p.Description,
		Required:    boolPtr(p.Required),
	}

	if p.Schema != nil {
		param.Schema = t.transformSchemaProxy(p.Schema)
	}

	return param
}

// transformResponse keeps the first media type's schema, which for the OSF
// document is always application/json. The component name of a $ref schema
// is kept as the response's explicit schema name.
func (t *transformer) transformResponse(code string, resp *v3.Response) model.Response {
	response := model.Response{
		StatusCode:  code,
		Description: resp.Description,
	}

	if resp.Content == nil {
		return response
	}

	for _, content := range resp.Content.FromOldest() {
		if content.Schema == nil {
			continue
		}
		response.SchemaName = t.schemaName(content.Schema)
		response.Schema = t.transformSchemaProxy(content.Schema)
		break
	}

	return response
}

// schemaName resolves the component name a proxy points at, or "" for
// inline schemas.
func (t *transformer) schemaName(proxy *base.SchemaProxy) string {
	if ref := proxy.GetReference(); ref != "" {
		parts := strings.Split(ref, "/")
		return parts[len(parts)-1]
	}
	if name, ok := t.componentSchemas[proxy.Schema()]; ok {
		return name
	}
	return ""
}

func (t *transformer) transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}
	schema := proxy.Schema()
	if schema == nil {
		return nil
	}
	return t.transformSchema(t.schemaName(proxy), schema)
}

func (t *transformer) transformSchema(ref string, s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Title:       s.Title,
		Description: s.Description,
		Format:      s.Format,
		Ref:         ref,
	}

	if len(s.Type) > 0 {
		schema.Type = model.SchemaType(s.Type[0])
	}

	// Stop descent on revisit: a schema already on the current path means
	// the graph is cyclic, so keep a shallow stub and go no deeper.
	if ref != "" {
		if t.visitedRefs[ref] {
			return schema
		}
		t.visitedRefs[ref] = true
		defer delete(t.visitedRefs, ref)
	} else {
		if t.visitedPtrs[s] {
			return schema
		}
		t.visitedPtrs[s] = true
		defer delete(t.visitedPtrs, s)
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: t.transformSchemaProxy(propProxy),
			})
		}
	}

	if s.Items != nil && s.Items.A != nil {
		schema.Items = t.transformSchemaProxy(s.Items.A)
	}

	return schema
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
