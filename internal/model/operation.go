package model

import "strings"

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods lists every supported HTTP method in the fixed traversal order
// used by the loader and the index builder.
var Methods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodPatch,
	MethodDelete,
	MethodHead,
	MethodOptions,
}

// ParseMethod maps a method string to the closed Method set,
// case-insensitively. Returns false for anything outside the set.
func ParseMethod(s string) (Method, bool) {
	for _, m := range Methods {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return "", false
}

type Operation struct {
	ID          string
	Method      Method
	Path        string
	Summary     string
	Description string
	Tags        []string
	Parameters  []Parameter
	Responses   []Response
}

type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationCookie ParameterLocation = "cookie"
)

type Parameter struct {
	Name        string
	In          ParameterLocation
	Description string
	Required    bool
	Schema      *Schema
}

// Response describes one status-code entry of an operation.
// SchemaName carries the component name when the response schema was a
// $ref; otherwise it is empty and lookups fall back to the schema title.
type Response struct {
	StatusCode  string
	Description string
	SchemaName  string
	Schema      *Schema
}
