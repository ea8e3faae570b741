package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"route-planner-service/internal/domain"

	"gopkg.in/yaml.v3"
)

// FileInputProvider reads a planning request from a YAML or JSON document:
//
//	drivers:   [{x: 0, y: 0}, ...]
//	locations: [{x: 1, y: 1}, ...]
//	profits:   [10, 50, ...]
//
// JSON is accepted because it is valid YAML.
type FileInputProvider struct {
	Path string
}

func NewFileInputProvider(path string) *FileInputProvider {
	return &FileInputProvider{Path: path}
}

func (f *FileInputProvider) ReadRequest(ctx context.Context) (*domain.PlanRequest, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("file input: read %q: %w", f.Path, err)
	}

	req, err := DecodeRequest(b)
	if err != nil {
		return nil, fmt.Errorf("file input: %q: %w", f.Path, err)
	}
	return req, nil
}

// DecodeRequest parses one request document, rejecting unknown keys.
func DecodeRequest(b []byte) (*domain.PlanRequest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var req domain.PlanRequest
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode request: empty document: %w", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("decode request: %v: %w", err, domain.ErrInvalidInput)
	}
	return &req, nil
}
