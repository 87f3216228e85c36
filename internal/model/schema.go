package model

// Schema is a recursive type description. Schema graphs in the source
// document may be cyclic or arbitrarily deep; the loader breaks cycles
// at transform time, consumers must not assume a tree of bounded depth.
type Schema struct {
	Title       string
	Description string
	Type        SchemaType
	Format      string

	// Object properties, in document order.
	Properties []Property

	// Array item schema.
	Items *Schema

	// Ref names the component this schema was resolved from, when known.
	Ref string
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

type Property struct {
	Name   string
	Schema *Schema
}

// PropertyNames returns the direct property names in document order.
func (s *Schema) PropertyNames() []string {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}
	names := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		names[i] = p.Name
	}
	return names
}
