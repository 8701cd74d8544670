package testsupport

import (
	"context"
	"testing"

	"tessera/internal/config"
	"tessera/internal/corpus"
	"tessera/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// InsertText records a corpus text for tests using the provided store.
func InsertText(t testing.TB, st *store.Store, text *corpus.Text) *corpus.Text {
	t.Helper()

	if err := st.InsertText(context.Background(), text); err != nil {
		t.Fatalf("store.InsertText: %v", err)
	}
	return text
}
