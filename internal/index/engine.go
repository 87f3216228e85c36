// Package index builds purpose-built in-memory indexes over a loaded
// OpenAPI specification and answers bounded, ranked lookup queries
// against them.
//
// Build runs exactly once per loaded specification; afterwards the engine
// is immutable and every query method is safe for unsynchronized
// concurrent use.
package index

import (
	"errors"
	"fmt"

	"github.com/hirakinii/osf-api-mcp/internal/model"
)

// Default result limits for the query resolvers.
const (
	DefaultSearchLimit = 10
	DefaultListLimit   = 50
)

// ErrNotInitialized reports an attempt to build or query before a
// specification has been loaded.
var ErrNotInitialized = errors.New("specification not loaded")

// OperationNotFoundError reports a path+method lookup that matched no
// operation in the endpoint index.
type OperationNotFoundError struct {
	Path   string
	Method string
}

func (e *OperationNotFoundError) Error() string {
	return fmt.Sprintf("no operation found for %s %s", e.Method, e.Path)
}

// Engine holds the three derived indexes over one specification. A built
// engine is never mutated; resolvers read the frozen indexes only.
type Engine struct {
	spec      *model.Spec
	endpoints endpointIndex
	schemas   schemaIndex
	fulltext  fulltextIndex
}

// Build traverses the specification once and populates all indexes.
// It either returns a fully populated engine or an error; there is no
// observable half-built state.
func Build(spec *model.Spec) (*Engine, error) {
	if spec == nil {
		return nil, ErrNotInitialized
	}

	e := &Engine{
		spec:      spec,
		endpoints: newEndpointIndex(),
		schemas:   newSchemaIndex(),
		fulltext:  newFulltextIndex(),
	}

	for pi := range spec.Paths {
		path := &spec.Paths[pi]
		for oi := range path.Operations {
			op := &path.Operations[oi]
			e.endpoints.add(op)
			e.schemas.add(op)
			e.fulltext.add(op)
		}
	}

	return e, nil
}

// Info returns the specification's info block.
func (e *Engine) Info() model.Info {
	return e.spec.Info
}

// TagDefinitions returns the specification's tag definitions in document
// order.
func (e *Engine) TagDefinitions() []model.Tag {
	return e.spec.Tags
}

// TagGroups returns the specification's tag groups in document order.
func (e *Engine) TagGroups() []model.TagGroup {
	return e.spec.TagGroups
}

// Stats summarizes index sizes, for startup logging and the stats command.
type Stats struct {
	Paths       int
	Operations  int
	Tags        int
	SchemaNames int
	Properties  int
	Documents   int
	Tokens      int
}

func (e *Engine) Stats() Stats {
	operations := 0
	for _, byMethod := range e.endpoints.paths {
		operations += len(byMethod)
	}
	return Stats{
		Paths:       len(e.endpoints.pathOrder),
		Operations:  operations,
		Tags:        len(e.endpoints.tagOrder),
		SchemaNames: len(e.schemas.nameOrder),
		Properties:  len(e.schemas.propOrder),
		Documents:   len(e.fulltext.documents),
		Tokens:      len(e.fulltext.words),
	}
}
