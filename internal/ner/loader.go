package ner

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadTagged reads a JSON array of {start, end, type, word} records. Records
// carrying any other field are rejected.
func LoadTagged(reader io.Reader) ([]TaggedEntity, error) {
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()

	var entities []TaggedEntity
	if err := dec.Decode(&entities); err != nil {
		return nil, fmt.Errorf("parse entity JSON: %w", err)
	}
	if entities == nil {
		return nil, ErrNoEntityArray
	}
	return entities, nil
}

func LoadTaggedFile(path string) ([]TaggedEntity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open entity file: %w", err)
	}
	defer f.Close()

	entities, err := LoadTagged(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return entities, nil
}
