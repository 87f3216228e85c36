// Package loader reads an OpenAPI document, gates it to 3.x, and
// transforms the built model into the document model the index consumes.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	validator "github.com/pb33f/libopenapi-validator"
)

// Result is a loaded, version-gated document ready for Transform.
type Result struct {
	Document *libopenapi.DocumentModel[v3.Document]
	Version  string
	Warnings []string
	RawData  []byte

	doc libopenapi.Document
}

// LoadFile reads the OSF API document at path. Relative $ref targets in
// the document resolve against the file's directory.
func LoadFile(path string) (*Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving spec path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	return LoadBytes(data, &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(abs),
		AllowFileReferences: true,
	})
}

// LoadBytes parses an in-memory document. A nil config parses without
// file-reference resolution.
func LoadBytes(data []byte, config *datamodel.DocumentConfiguration) (*Result, error) {
	doc, err := newDocument(data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version %s: only 3.x documents can be indexed", version)
	}

	model, err := doc.BuildV3Model()
	if err != nil {
		return nil, fmt.Errorf("building v3 model: %w", err)
	}

	result := &Result{
		Document: model,
		Version:  version,
		RawData:  data,
		doc:      doc,
	}

	if strings.HasPrefix(version, "3.0") {
		result.Warnings = append(result.Warnings,
			"document declares OpenAPI 3.0.x; 3.1-only constructs will be absent from the index")
	}

	return result, nil
}

func newDocument(data []byte, config *datamodel.DocumentConfiguration) (libopenapi.Document, error) {
	if config == nil {
		return libopenapi.NewDocument(data)
	}
	return libopenapi.NewDocumentWithConfiguration(data, config)
}

// Validate runs full document validation over the loaded spec. This is
// opt-in: indexing only needs a structurally parseable document.
func (r *Result) Validate() error {
	v, errs := validator.NewValidator(r.doc)
	if len(errs) > 0 {
		return fmt.Errorf("creating validator: %w", errs[0])
	}

	valid, validationErrs := v.ValidateDocument()
	if valid {
		return nil
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, ve := range validationErrs {
		msgs = append(msgs, ve.Message)
	}
	return fmt.Errorf("document validation failed: %s", strings.Join(msgs, "; "))
}
