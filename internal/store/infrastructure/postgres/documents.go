package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Lexv0lk/room-shop/internal/pkg/database"
	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/jackc/pgx/v5"
)

const (
	getDocumentSQL        = `SELECT data FROM documents WHERE collection = $1 AND id = $2`
	getAndLockDocumentSQL = `SELECT data FROM documents WHERE collection = $1 AND id = $2 FOR UPDATE`

	mergeDocumentSQL = `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE
		SET data = documents.data || EXCLUDED.data, version = documents.version + 1, updated_at = now()`

	replaceDocumentSQL = `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE
		SET data = EXCLUDED.data, version = documents.version + 1, updated_at = now()`

	createDocumentSQL = `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO NOTHING`
)

// DocumentStore keeps documents as JSONB rows. Documents read inside a
// transaction are locked with FOR UPDATE until it ends, so concurrent
// read-modify-write cycles on one document are serialized by Postgres.
// A missing row cannot be locked, so a document read as missing is written
// with an insert that reports ErrConflict if another transaction created it
// in the meantime.
type DocumentStore struct {
	db database.QueryTxBeginner
}

func NewDocumentStore(db database.QueryTxBeginner) *DocumentStore {
	return &DocumentStore{
		db: db,
	}
}

func (s *DocumentStore) Begin(ctx context.Context) (docstore.Tx, error) {
	tx, err := s.db.BeginTx(ctx, database.DefaultTxOptions)
	if err != nil {
		return nil, classifyError("failed to begin transaction", err)
	}

	return &documentTx{tx: tx, absent: make(map[string]struct{})}, nil
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	return getDocument(ctx, s.db, getDocumentSQL, collection, id)
}

type documentTx struct {
	tx pgx.Tx
	// documents this transaction read as missing
	absent map[string]struct{}
}

func documentKey(collection, id string) string {
	return collection + "/" + id
}

func (t *documentTx) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	doc, err := getDocument(ctx, t.tx, getAndLockDocumentSQL, collection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		t.absent[documentKey(collection, id)] = struct{}{}
	}

	return doc, err
}

func (t *documentTx) Set(ctx context.Context, collection, id string, patch docstore.Document, mode docstore.WriteMode) error {
	var sql string
	switch mode {
	case docstore.Merge:
		sql = mergeDocumentSQL
	case docstore.Replace:
		sql = replaceDocumentSQL
	default:
		return fmt.Errorf("unsupported write mode %s", mode)
	}

	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", collection, id, err)
	}

	key := documentKey(collection, id)
	if _, missing := t.absent[key]; missing {
		tag, err := t.tx.Exec(ctx, createDocumentSQL, collection, id, data)
		if err != nil {
			return classifyError(fmt.Sprintf("failed to create %s/%s", collection, id), err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s/%s was created concurrently: %w", collection, id, docstore.ErrConflict)
		}

		delete(t.absent, key)
		return nil
	}

	_, err = t.tx.Exec(ctx, sql, collection, id, data)
	if err != nil {
		return classifyError(fmt.Sprintf("failed to write %s/%s", collection, id), err)
	}

	return nil
}

func (t *documentTx) Commit(ctx context.Context) error {
	err := t.tx.Commit(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return docstore.ErrTxClosed
		}
		if errors.Is(err, pgx.ErrTxCommitRollback) {
			return fmt.Errorf("failed to commit transaction: %w: %w", docstore.ErrConflict, err)
		}

		return classifyError("failed to commit transaction", err)
	}

	return nil
}

func (t *documentTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return docstore.ErrTxClosed
	}

	return err
}

func getDocument(ctx context.Context, querier database.Querier, sql, collection, id string) (docstore.Document, error) {
	var data []byte
	err := querier.QueryRow(ctx, sql, collection, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docstore.ErrNotFound
		}

		return nil, classifyError(fmt.Sprintf("failed to read %s/%s", collection, id), err)
	}

	var doc docstore.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, id, err)
	}
	if doc == nil {
		doc = docstore.Document{}
	}

	return doc, nil
}

func classifyError(msg string, err error) error {
	switch {
	case database.IsConflict(err):
		return fmt.Errorf("%s: %w: %w", msg, docstore.ErrConflict, err)
	case database.IsUnavailable(err):
		return fmt.Errorf("%s: %w: %w", msg, docstore.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
