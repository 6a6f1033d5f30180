// Package docstore defines the document store contract the shop services are
// written against: keyed JSON documents grouped in collections, read and
// written through transactions that either commit entirely or not at all.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrConflict    = errors.New("transaction conflict")
	ErrUnavailable = errors.New("document store unavailable")
	ErrTxClosed    = errors.New("transaction already closed")
)

type WriteMode int

const (
	// Merge overwrites only the top level fields present in the patch and
	// creates the document when it does not exist.
	Merge WriteMode = iota
	// Replace discards every field not present in the patch.
	Replace
)

func (m WriteMode) String() string {
	switch m {
	case Merge:
		return "merge"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("WriteMode(%d)", int(m))
	}
}

// Document is a JSON object keyed by top level field name.
type Document map[string]json.RawMessage

type Tx interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	Set(ctx context.Context, collection, id string, patch Document, mode WriteMode) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type TxBeginner interface {
	Begin(ctx context.Context) (Tx, error)
}

type Reader interface {
	Get(ctx context.Context, collection, id string) (Document, error)
}

type Store interface {
	TxBeginner
	Reader
}

func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("value is not a JSON object: %w", err)
	}

	return doc, nil
}

func Decode(doc Document, v any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	return nil
}

// Fields builds a patch from individual field values.
func Fields(fields map[string]any) (Document, error) {
	doc := make(Document, len(fields))
	for name, value := range fields {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", name, err)
		}
		doc[name] = raw
	}

	return doc, nil
}

func (d Document) Clone() Document {
	if d == nil {
		return nil
	}

	out := make(Document, len(d))
	for k, v := range d {
		out[k] = append(json.RawMessage(nil), v...)
	}

	return out
}

// Apply returns the document that results from writing patch over d.
func (d Document) Apply(patch Document, mode WriteMode) Document {
	var out Document
	if mode == Replace {
		out = make(Document, len(patch))
	} else {
		out = d.Clone()
		if out == nil {
			out = make(Document, len(patch))
		}
	}

	for k, v := range patch {
		out[k] = append(json.RawMessage(nil), v...)
	}

	return out
}
