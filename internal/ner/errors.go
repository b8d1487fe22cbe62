package ner

import "errors"

var (
	// ErrNoEntityArray indicates the entity file decoded to JSON null instead of an array.
	ErrNoEntityArray = errors.New("ner: entity file does not contain an array")
)
