// Package desccache keeps descriptors already computed by an engine in an
// SQLite database, so they don't have to be computed again in later runs.
package desccache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	desc "github.com/rmera/stereodesc"
	"github.com/rmera/stereodesc/rdkit"
	"go.uber.org/zap"

	// SQLite driver (pure Go, no CGO required)
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS descriptors (
	engine     TEXT NOT NULL,
	smiles     TEXT NOT NULL,
	data       TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (engine, smiles)
)`

// Cache is an SQLite-backed store of descriptor sets, keyed by engine name and SMILES.
type Cache struct {
	db   *sql.DB
	path string
	log  *zap.Logger
}

// Open opens the cache database at path, creating it (and its directory)
// if needed. log can be nil.
func Open(path string, log *zap.Logger) (*Cache, error) {
	if path == "" {
		return nil, desc.NewError("cache path is required", "", "desccache.Open", true, nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, desc.NewError("can't create cache directory", path, "desccache.Open", true, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, desc.NewError("can't open cache", path, "desccache.Open", true, err)
	}
	//one writer, and nothing here is concurrent anyway.
	db.SetMaxOpenConns(1)
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range append(pragmas, schema) {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, desc.NewError(fmt.Sprintf("can't initialize cache (%s)", p), path, "desccache.Open", true, err)
		}
	}
	log.Debug("cache opened", zap.String("path", path))
	return &Cache{db: db, path: path, log: log}, nil
}

// Close closes the database.
func (C *Cache) Close() error {
	return C.db.Close()
}

// Get returns the descriptors stored for smiles as computed by engine. The boolean is
// false if there are none.
func (C *Cache) Get(engine, smiles string) (desc.Descriptors, bool, error) {
	var data string
	err := C.db.QueryRow("SELECT data FROM descriptors WHERE engine = ? AND smiles = ?", engine, smiles).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, desc.NewError("cache lookup failed", smiles, "Cache.Get", true, err)
	}
	d, err := rdkit.DecodeDescriptors([]byte(data))
	if err != nil {
		//a broken row is a miss; Put will replace it.
		C.log.Warn("discarding corrupt cache row", zap.String("smiles", smiles), zap.Error(err))
		return nil, false, nil
	}
	return d, true, nil
}

// Put stores d as the descriptors of smiles computed by engine, replacing any previous value.
// Non-finite values are stored too, so a set that fails validation fails again
// when read back.
func (C *Cache) Put(engine, smiles string, d desc.Descriptors) error {
	data, err := rdkit.EncodeDescriptors(d)
	if err != nil {
		return desc.NewError("can't encode descriptors", smiles, "Cache.Put", true, err)
	}
	_, err = C.db.Exec("INSERT OR REPLACE INTO descriptors (engine, smiles, data, created_at) VALUES (?, ?, ?, ?)",
		engine, smiles, string(data), time.Now().Unix())
	if err != nil {
		return desc.NewError("can't store descriptors", smiles, "Cache.Put", true, err)
	}
	return nil
}

// Len returns the number of descriptor sets stored.
func (C *Cache) Len() (int, error) {
	var n int
	if err := C.db.QueryRow("SELECT COUNT(*) FROM descriptors").Scan(&n); err != nil {
		return 0, desc.NewError("can't count cache rows", C.path, "Cache.Len", true, err)
	}
	return n, nil
}

// Prune deletes the entries older than age, and returns how many were deleted.
func (C *Cache) Prune(age time.Duration) (int64, error) {
	res, err := C.db.Exec("DELETE FROM descriptors WHERE created_at < ?", time.Now().Add(-age).Unix())
	if err != nil {
		return 0, desc.NewError("can't prune cache", C.path, "Cache.Prune", true, err)
	}
	return res.RowsAffected()
}
