package model

// Spec is the in-memory representation of a loaded OpenAPI document.
// It is immutable after loading; the index builder traverses it exactly once.
type Spec struct {
	Info      Info
	Tags      []Tag
	TagGroups []TagGroup
	Paths     []Path
}

// TagByName returns the tag definition with the given name, or nil.
func (s *Spec) TagByName(name string) *Tag {
	for i := range s.Tags {
		if s.Tags[i].Name == name {
			return &s.Tags[i]
		}
	}
	return nil
}

type Info struct {
	Title       string
	Description string
	Version     string
}

type Tag struct {
	Name        string
	Description string
}

// TagGroup is a named display grouping of tags, taken from the
// x-tagGroups vendor extension.
type TagGroup struct {
	Name string
	Tags []string
}

// Path holds the operations defined for one path string, in the fixed
// method traversal order.
type Path struct {
	Path       string
	Operations []Operation
}
