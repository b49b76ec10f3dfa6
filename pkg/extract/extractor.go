package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedType is returned when no extractor is registered for the
// uploaded file's extension.
type ErrUnsupportedType struct {
	Extension string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Extension)
}

// Extractor converts an uploaded file into plain text for storage.
type Extractor interface {
	Extract(r io.Reader) (string, error)
}

// Registry maps file extensions (lowercase, with dot) to extractors.
type Registry struct {
	extractors map[string]Extractor
}

func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Extractor)}
	r.Register(".txt", PlainText{})
	r.Register(".md", PlainText{})
	r.Register(".csv", CSV{})
	r.Register(".pdf", PDF{})
	r.Register(".xlsx", Excel{})
	return r
}

func (r *Registry) Register(ext string, e Extractor) {
	r.extractors[strings.ToLower(ext)] = e
}

// Supported reports whether files with the given name can be extracted.
func (r *Registry) Supported(filename string) bool {
	_, ok := r.extractors[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Extract picks the extractor by the file's extension.
func (r *Registry) Extract(filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	e, ok := r.extractors[ext]
	if !ok {
		return "", &ErrUnsupportedType{Extension: ext}
	}
	return e.Extract(src)
}

// PlainText passes file contents through unchanged.
type PlainText struct{}

func (PlainText) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// CSV flattens rows into comma-joined lines so the text is searchable and
// usable as prompt context.
type CSV struct{}

func (CSV) Extract(r io.Reader) (string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	var sb strings.Builder
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse csv: %w", err)
		}
		sb.WriteString(strings.Join(row, ", "))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
