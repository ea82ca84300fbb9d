// Package cache implements lexfa build's incremental compile cache: a
// compiled transition table is stored on disk keyed by the sha256 of the
// source .nfa file that produced it, encoded with github.com/dekarrin/rezi
// the same way the teacher's sqlite DAO binary-encodes game state.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"

	"github.com/dekarrin/lexfa/internal/fatab"
)

// entry is the on-disk cache record: the compiled table plus a build ID
// used to correlate cache hits in logs.
type entry struct {
	BuildID uuid.UUID
	Table   fatab.Table
}

// Key returns the cache key for a given source file's content: the hex
// sha256 digest.
func Key(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func entryPath(dir, key string) string {
	return filepath.Join(dir, key+".rezi")
}

// Store writes table to the cache directory under key, tagged with a fresh
// build ID, and returns that ID.
func Store(dir, key string, table fatab.Table) (uuid.UUID, error) {
	id := uuid.New()
	e := entry{BuildID: id, Table: table}

	data := rezi.EncBinary(e)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return uuid.Nil, fmt.Errorf("cache: creating cache dir: %w", err)
	}
	if err := os.WriteFile(entryPath(dir, key), data, 0o644); err != nil {
		return uuid.Nil, fmt.Errorf("cache: writing cache entry: %w", err)
	}

	return id, nil
}

// Load reads a previously-stored table for key. found is false (with a nil
// error) if no cache entry exists yet.
func Load(dir, key string) (table fatab.Table, buildID uuid.UUID, found bool, err error) {
	data, err := os.ReadFile(entryPath(dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return fatab.Table{}, uuid.Nil, false, nil
		}
		return fatab.Table{}, uuid.Nil, false, fmt.Errorf("cache: reading cache entry: %w", err)
	}

	var e entry
	n, err := rezi.DecBinary(data, &e)
	if err != nil {
		return fatab.Table{}, uuid.Nil, false, fmt.Errorf("cache: REZI decode: %w", err)
	}
	if n != len(data) {
		return fatab.Table{}, uuid.Nil, false, fmt.Errorf("cache: REZI decoded byte count mismatch; only consumed %d/%d bytes", n, len(data))
	}

	return e.Table, e.BuildID, true, nil
}
