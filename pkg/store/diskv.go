// Package store persists the daily task record.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daily/pkg/task"
)

// StateKey is the single key the daily record lives under.
const StateKey = "state"

// ErrCorrupt is returned by Load when the stored record cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt record")

// Record is the persisted daily list.
type Record struct {
	Tasks []task.Task `json:"tasks"`
	Date  string      `json:"date"`
}

// Persistence defines the persistence contract for the daily record.
type Persistence interface {
	// Load returns the stored record, or nil when none has been written.
	Load(ctx context.Context) (*Record, error)
	// Save replaces the stored record.
	Save(ctx context.Context, r *Record) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	// No cache: another process may rewrite the record between reads.
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, tempDir),
		Transform:    flatTransform,
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

const tempDir = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(_ context.Context) (*Record, error) {
	if !p.d.Has(StateKey) {
		return nil, nil
	}
	val, err := p.d.Read(StateKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read: %w", err)
	}
	return decode(val)
}

func (p *persistence) Save(_ context.Context, r *Record) error {
	data, err := encode(r)
	if err != nil {
		return err
	}
	if err := p.d.Write(StateKey, data); err != nil {
		return fmt.Errorf("store: write: %w", err)
	}
	return nil
}

// Path is the file holding the record.
func (p *persistence) Path() string {
	return filepath.Join(p.basePath, StateKey)
}

func encode(r *Record) ([]byte, error) {
	if r == nil {
		return nil, errors.New("store: nil record")
	}
	out := Record{Date: r.Date, Tasks: r.Tasks}
	if out.Tasks == nil {
		out.Tasks = []task.Task{}
	}
	return json.Marshal(out)
}

func decode(val []byte) (*Record, error) {
	if len(val) == 0 {
		return nil, nil
	}
	r := &Record{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if r.Tasks == nil {
		r.Tasks = []task.Task{}
	}
	return r, nil
}

func flatTransform(string) []string {
	return []string{}
}
