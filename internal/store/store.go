// Package store provides the snapshot persistence boundary: whole
// collections serialized as versioned JSON blobs under well-known keys.
// Engines are swappable (file, redis, memory) without touching call sites.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Well-known snapshot keys.
const (
	KeyUsers         = "users"
	KeySubmissions   = "submissions"
	KeyNews          = "news"
	KeyStatusChanges = "status_changes"
)

// SchemaVersion is stamped into every persisted envelope so blobs can
// be migrated safely if the shape ever changes.
const SchemaVersion = 1

// ErrNotFound indicates no snapshot exists under the key.
var ErrNotFound = errors.New("snapshot not found")

// Store is the durable snapshot interface. Writes are last-writer-wins
// whole-collection replacements.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
}

// envelope wraps collection payloads with versioning metadata.
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	SavedAt       time.Time       `json:"saved_at"`
	Data          json.RawMessage `json:"data"`
}

// Encode serializes a collection into a versioned snapshot blob.
func Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot data: %w", err)
	}
	env := envelope{
		SchemaVersion: SchemaVersion,
		SavedAt:       time.Now().UTC(),
		Data:          data,
	}
	blob, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot envelope: %w", err)
	}
	return blob, nil
}

// Decode deserializes a snapshot blob into the target collection,
// rejecting envelopes written by a newer schema.
func Decode(blob []byte, target any) error {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return fmt.Errorf("decode snapshot envelope: %w", err)
	}
	if env.SchemaVersion > SchemaVersion {
		return fmt.Errorf("snapshot schema version %d is newer than supported %d", env.SchemaVersion, SchemaVersion)
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("decode snapshot data: %w", err)
	}
	return nil
}

// Save encodes and persists a collection under the key.
func Save(ctx context.Context, s Store, key string, value any) error {
	blob, err := Encode(value)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, blob)
}

// Load fetches and decodes the collection stored under the key.
func Load(ctx context.Context, s Store, key string, target any) error {
	blob, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	return Decode(blob, target)
}
