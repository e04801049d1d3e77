// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aws/cfn-shapes/internal/pkg/shape"
	"github.com/imdario/mergo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// document is a shape's members read from a YAML or JSON file, keyed by wire name.
type document map[string]interface{}

// documentReader reads shape documents from a filesystem.
type documentReader struct {
	fs afero.Fs
}

func (r documentReader) exists(path string) error {
	ok, err := afero.Exists(r.fs, path)
	if err != nil {
		return fmt.Errorf("check if file %s exists: %w", path, err)
	}
	if !ok {
		return &errFileNotExist{path: path}
	}
	return nil
}

// read parses the file at path. JSON documents are read as YAML flow mappings.
func (r documentReader) read(path string) (document, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	doc := make(document)
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal file %s: %w", path, err)
	}
	return doc, nil
}

// readMerged reads base and merges each overlay on top of it in order.
// Nested mappings are merged member by member, lists and scalars of an overlay replace the base values.
func (r documentReader) readMerged(base string, overlays ...string) (document, error) {
	doc, err := r.read(base)
	if err != nil {
		return nil, err
	}
	for _, path := range overlays {
		overlay, err := r.read(path)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(&doc, overlay, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge overlay %s: %w", path, err)
		}
	}
	return doc, nil
}

// decodeShape returns a new shape named name holding the members of doc.
// Members that the shape does not declare are rejected.
func decodeShape(name string, doc document) (interface{}, error) {
	v, err := shape.New(name)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal %s document: %w", name, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("decode %s document: %w", name, err)
	}
	return v, nil
}
