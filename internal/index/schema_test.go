package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirakinii/osf-api-mcp/internal/model"
)

func occurrenceKeys(occs []Occurrence) []string {
	keys := make([]string, 0, len(occs))
	for _, occ := range occs {
		name := occ.Name
		if name == "" {
			name = "<unnamed>"
		}
		keys = append(keys, name+" "+string(occ.Method)+" "+occ.Path)
	}
	return keys
}

func TestSearchSchemasByName(t *testing.T) {
	engine := buildTestEngine(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "substring matches several names",
			query: "file",
			want:  []string{"FileList GET /files/", "File POST /files/"},
		},
		{
			name:  "exact name",
			query: "FileList",
			want:  []string{"FileList GET /files/"},
		},
		{
			name:  "case-insensitive",
			query: "FILELIST",
			want:  []string{"FileList GET /files/"},
		},
		{
			name:  "no match",
			query: "contributor",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occs, err := engine.SearchSchemas(SchemaQuery{Name: tt.query})
			require.NoError(t, err)
			assert.Equal(t, tt.want, occurrenceKeys(occs))
		})
	}
}

func TestSearchSchemasByProperty(t *testing.T) {
	engine := buildTestEngine(t)

	// "name" appears on File directly (POST /files/) and through one level
	// of array-item unwrapping on FileList (GET /files/).
	occs, err := engine.SearchSchemas(SchemaQuery{Property: "name"})
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"FileList GET /files/", "File POST /files/"},
		occurrenceKeys(occs))
}

func TestSearchSchemasPropertyNoRecursiveDescent(t *testing.T) {
	engine := buildTestEngine(t)

	// "title" only exists on the Node schema nested inside the response
	// object's "data" property; nested property schemas are not unwrapped.
	occs, err := engine.SearchSchemas(SchemaQuery{Property: "title"})
	require.NoError(t, err)
	assert.Empty(t, occs)

	// The direct "data" property is indexed for both unnamed responses.
	occs, err = engine.SearchSchemas(SchemaQuery{Property: "data"})
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"<unnamed> GET /nodes/", "<unnamed> GET /registrations/"},
		occurrenceKeys(occs))
}

// Two occurrences without a schema name must both survive deduplication
// when their paths differ; only exact (path, method, name) collisions
// collapse.
func TestSearchSchemasDeduplication(t *testing.T) {
	engine := buildTestEngine(t)

	occs, err := engine.SearchSchemas(SchemaQuery{Property: "data"})
	require.NoError(t, err)
	require.Len(t, occs, 2)
	assert.NotEqual(t, occs[0].Path, occs[1].Path)
}

func TestSearchSchemasNamePrecedesProperty(t *testing.T) {
	engine := buildTestEngine(t)

	// With both set, only the name criterion is evaluated.
	occs, err := engine.SearchSchemas(SchemaQuery{Name: "FileList", Property: "data"})
	require.NoError(t, err)
	assert.Equal(t, []string{"FileList GET /files/"}, occurrenceKeys(occs))
}

func TestSearchSchemasByPathMethod(t *testing.T) {
	engine := buildTestEngine(t)

	occs, err := engine.SearchSchemas(SchemaQuery{Path: "/files/", Method: "get"})
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.Equal(t, "FileList", occs[0].Name)
	require.NotNil(t, occs[0].Schema)
	assert.Equal(t, model.TypeArray, occs[0].Schema.Type)

	// Unnamed response schemas synthesize occurrences with an empty name.
	occs, err = engine.SearchSchemas(SchemaQuery{Path: "/nodes/", Method: "GET"})
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.Empty(t, occs[0].Name)
}

func TestSearchSchemasPathMethodNotFound(t *testing.T) {
	engine := buildTestEngine(t)

	tests := []struct {
		name   string
		path   string
		method string
	}{
		{name: "unknown path", path: "/missing/", method: "GET"},
		{name: "unknown method on known path", path: "/nodes/", method: "DELETE"},
		{name: "method outside the closed set", path: "/nodes/", method: "TRACE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.SearchSchemas(SchemaQuery{Path: tt.path, Method: tt.method})
			var notFound *OperationNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.path, notFound.Path)
			assert.Contains(t, notFound.Error(), tt.path)
		})
	}
}

func TestSearchSchemasEmptyQuery(t *testing.T) {
	engine := buildTestEngine(t)

	occs, err := engine.SearchSchemas(SchemaQuery{})
	require.NoError(t, err)
	assert.Empty(t, occs)

	// A path without a method does not reach the path+method mode.
	occs, err = engine.SearchSchemas(SchemaQuery{Path: "/files/"})
	require.NoError(t, err)
	assert.Empty(t, occs)
}
