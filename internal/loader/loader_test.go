package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSpec = `openapi: 3.0.0
info:
  title: OSF API
  description: Open Science Framework API
  version: "2.0"
x-tagGroups:
  - name: Core
    tags:
      - Files
      - Nodes
tags:
  - name: Files
    description: File management operations
  - name: Nodes
    description: Project node operations
paths:
  /files/:
    get:
      operationId: files_list
      summary: List all files
      description: Returns a list of all files in the system
      tags:
        - Files
      parameters:
        - name: page
          in: query
          description: Page number of the paginated results
          schema:
            type: integer
      responses:
        '200':
          description: OK
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/FileList'
  /nodes/:
    get:
      operationId: nodes_list
      summary: List all nodes
      tags:
        - Nodes
      responses:
        '200':
          description: OK
          content:
            application/json:
              schema:
                type: object
                properties:
                  data:
                    $ref: '#/components/schemas/Node'
components:
  schemas:
    File:
      title: File
      type: object
      properties:
        name:
          type: string
        size:
          type: integer
    FileList:
      title: FileList
      type: array
      items:
        $ref: '#/components/schemas/File'
    Node:
      title: Node
      type: object
      properties:
        title:
          type: string
        parent:
          $ref: '#/components/schemas/Node'
`

func loadSample(t *testing.T) *Result {
	t.Helper()
	result, err := LoadBytes([]byte(sampleSpec), nil)
	require.NoError(t, err)
	return result
}

func TestLoadBytes(t *testing.T) {
	result := loadSample(t)

	assert.Equal(t, "3.0.0", result.Version)
	assert.Equal(t, []byte(sampleSpec), result.RawData)
	require.NotNil(t, result.Document)
	assert.Equal(t, "OSF API", result.Document.Model.Info.Title)
}

func TestLoadBytes30Warning(t *testing.T) {
	result := loadSample(t)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "3.0.x")
}

func TestLoadBytesNoWarningFor31(t *testing.T) {
	spec := `openapi: 3.1.0
info:
  title: Minimal
  version: "1.0"
paths: {}
`
	result, err := LoadBytes([]byte(spec), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
}

func TestLoadBytesRejectsSwagger2(t *testing.T) {
	spec := `swagger: "2.0"
info:
  title: Legacy
  version: "1.0"
paths: {}
`
	_, err := LoadBytes([]byte(spec), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported OpenAPI version")
}

func TestLoadBytesRejectsGarbage(t *testing.T) {
	_, err := LoadBytes([]byte("not: [valid"), nil)
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/openapi.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading spec file")
}
