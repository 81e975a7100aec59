// Package storage is the durable key/value port for all game state.
// Records are JSON documents stored per key in a single SQLite table.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store provides JSON get/set/remove over SQLite. When the database
// cannot be opened the store degrades to memory-only: the game stays
// playable, progress just does not survive the process.
type Store struct {
	mu        sync.Mutex
	db        *sql.DB
	mem       map[string]string
	available bool
}

// Open creates a Store backed by the SQLite database at path.
// On any open/migrate failure it returns a memory-only Store and logs
// a warning instead of failing; callers can check Available().
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err == nil {
		if perr := applyPragmas(db); perr != nil {
			err = fmt.Errorf("apply pragmas: %w", perr)
		} else if merr := migrate(db); merr != nil {
			err = fmt.Errorf("migrate: %w", merr)
		}
	}
	if err != nil {
		if db != nil {
			db.Close()
		}
		log.Printf("storage: %v; progress will not be saved", err)
		return OpenMemory(), nil
	}

	s := &Store{db: db, available: true}
	if err := s.probe(); err != nil {
		db.Close()
		log.Printf("storage: write probe failed: %v; progress will not be saved", err)
		return OpenMemory(), nil
	}
	return s, nil
}

// OpenMemory returns a Store with no durable backend. Every write
// succeeds in memory and is lost when the process exits.
func OpenMemory() *Store {
	return &Store{mem: make(map[string]string), available: false}
}

// Available reports whether writes reach durable storage.
func (s *Store) Available() bool {
	return s.available
}

// Close closes the underlying database, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get unmarshals the JSON document stored under key into v.
// Returns false if the key is absent. Corrupt documents are treated
// as absent rather than failing the caller.
func (s *Store) Get(key string, v any) bool {
	raw, ok := s.getRaw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("storage: corrupt record %q: %v", key, err)
		return false
	}
	return true
}

// Set marshals v and stores it under key. On a storage-full error the
// oldest session-history entries are evicted and the write retried
// once; a second failure is logged and the write dropped. Returns
// whether the value was stored.
func (s *Store) Set(key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("storage: marshal %q: %v", key, err)
		return false
	}

	err = s.setRaw(key, string(raw))
	if err == nil {
		return true
	}
	if !isFull(err) {
		log.Printf("storage: write %q: %v", key, err)
		return false
	}

	// Storage full: make room and retry once.
	s.evictOldSessions()
	if err := s.setRaw(key, string(raw)); err != nil {
		log.Printf("storage: write %q failed after cleanup: %v", key, err)
		return false
	}
	return true
}

// Remove deletes the record under key. Returns whether the delete
// reached the backend without error.
func (s *Store) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		delete(s.mem, key)
		return true
	}
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		log.Printf("storage: remove %q: %v", key, err)
		return false
	}
	return true
}

// Keys returns all stored keys. Used by reset and export.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		keys := make([]string, 0, len(s.mem))
		for k := range s.mem {
			keys = append(keys, k)
		}
		return keys
	}
	rows, err := s.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return keys
		}
		keys = append(keys, k)
	}
	return keys
}

func (s *Store) getRaw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		raw, ok := s.mem[key]
		return raw, ok
	}
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		log.Printf("storage: read %q: %v", key, err)
		return "", false
	}
	return raw, true
}

func (s *Store) setRaw(key, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		s.mem[key] = raw
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, raw,
	)
	return err
}

// evictOldSessions trims the session-history list to its cap so a
// retried write has room. History is stored newest-first.
func (s *Store) evictOldSessions() {
	var history []json.RawMessage
	if !s.Get(KeySessionHistory, &history) {
		return
	}
	if len(history) > MaxSessionHistory {
		history = history[:MaxSessionHistory]
	} else if len(history) > 1 {
		history = history[:len(history)/2]
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return
	}
	if err := s.setRaw(KeySessionHistory, string(raw)); err != nil {
		log.Printf("storage: session-history cleanup: %v", err)
	}
}

// probe verifies the database accepts writes before committing to it.
func (s *Store) probe() error {
	if err := s.setRaw(probeKey, "1"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, probeKey)
	return err
}

const probeKey = "__storage_probe__"

// isFull reports whether err is SQLite's disk-full condition
// (SQLITE_FULL), the local analogue of a quota-exceeded write.
func isFull(err error) bool {
	return err != nil && strings.Contains(err.Error(), "database or disk is full")
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SPACEMATH_DB environment variable
// 2. $XDG_DATA_HOME/space-math/space-math.db
// 3. ~/.local/share/space-math/space-math.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SPACEMATH_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "space-math", "space-math.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
