package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

type fixture struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags,omitempty"`
	Count int      `json:"count"`
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := []fixture{
		{ID: "a", Name: "first", Tags: []string{"x", "y"}, Count: 3},
		{ID: "b", Name: "second"},
	}

	blob, err := Encode(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded []fixture
	if err := Decode(blob, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("expected %d items, got %d", len(original), len(decoded))
	}
	for i := range original {
		if decoded[i].ID != original[i].ID || decoded[i].Name != original[i].Name || decoded[i].Count != original[i].Count {
			t.Fatalf("item %d changed across round trip: %+v vs %+v", i, original[i], decoded[i])
		}
	}
}

func TestDecodeRejectsNewerSchema(t *testing.T) {
	env := envelope{
		SchemaVersion: SchemaVersion + 1,
		SavedAt:       time.Now().UTC(),
		Data:          json.RawMessage(`[]`),
	}
	blob, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}

	var target []fixture
	if err := Decode(blob, &target); err == nil {
		t.Fatal("expected newer schema to be rejected")
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	items := []fixture{{ID: "1", Name: "persisted"}}
	if err := Save(ctx, first, KeyNews, items); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A fresh instance over the same directory sees the same snapshot.
	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen file store: %v", err)
	}
	var loaded []fixture
	if err := Load(ctx, second, KeyNews, &loaded); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "persisted" {
		t.Fatalf("unexpected loaded snapshot: %+v", loaded)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if _, err := fs.Get(context.Background(), "absent"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := fs.Put(ctx, KeyUsers, []byte(`{}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := fs.Delete(ctx, KeyUsers); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := fs.Get(ctx, KeyUsers); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting a missing key is not an error.
	if err := fs.Delete(ctx, KeyUsers); err != nil {
		t.Fatalf("delete missing key: %v", err)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	blob := []byte(`{"payload":true}`)
	if err := ms.Put(ctx, KeySubmissions, blob); err != nil {
		t.Fatalf("put: %v", err)
	}
	blob[0] = 'X'

	stored, err := ms.Get(ctx, KeySubmissions)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(stored) != `{"payload":true}` {
		t.Fatalf("stored blob mutated by caller: %s", stored)
	}
}
