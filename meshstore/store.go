// Package meshstore checkpoints meshing results in a badger key-value store.
//
// A run is stored under a name. For each name the store keeps any number of
// meshes, cell fields and parent-cell maps, each under its own label:
//
//	mesh/<run>/<label>
//	field/<run>/<label>
//	parent/<run>/<label>
//
// Values are JSON documents. A store opened without a path lives in memory
// and disappears on Close.
package meshstore

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphmesh/mesh"
)

var (
	// ErrNotFound reports a missing run or label.
	ErrNotFound = errors.New("meshstore: not found")
	// ErrReadOnly reports a write to a store opened read-only.
	ErrReadOnly = errors.New("meshstore: store is read-only")
)

const (
	kindMesh   = "mesh"
	kindField  = "field"
	kindParent = "parent"
)

// Option configures Open.
type Option func(*badger.Options)

// WithReadOnly opens an existing store for reading only.
func WithReadOnly() Option {
	return func(o *badger.Options) { o.ReadOnly = true }
}

// WithSyncWrites makes every commit wait for fsync.
func WithSyncWrites() Option {
	return func(o *badger.Options) { o.SyncWrites = true }
}

// Store is an open checkpoint store. It is safe for concurrent use.
type Store struct {
	db       *badger.DB
	readOnly bool
}

// Open opens or creates the store at path. An empty path opens an
// in-memory store.
func Open(path string, opts ...Option) (*Store, error) {
	dbOpts := badger.DefaultOptions(path)
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false
	if path == "" {
		dbOpts = dbOpts.WithInMemory(true)
	}
	for _, opt := range opts {
		opt(&dbOpts)
	}
	if dbOpts.InMemory && dbOpts.ReadOnly {
		return nil, errors.Wrap(ErrReadOnly, "in-memory store cannot be read-only")
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "meshstore: open %q", path)
	}
	klog.V(1).Infof("meshstore: opened %q (in-memory=%v)", path, dbOpts.InMemory)

	return &Store{db: db, readOnly: dbOpts.ReadOnly}, nil
}

// Close releases the store.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(kind, run, label string) []byte {
	return []byte(kind + "/" + run + "/" + label)
}

func (s *Store) put(kind, run, label string, v any) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if strings.Contains(run, "/") {
		return errors.Errorf("meshstore: run name %q contains '/'", run)
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "meshstore: encode %s %s/%s", kind, run, label)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(kind, run, label), buf)
	})
}

func (s *Store) get(kind, run, label string, v any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(kind, run, label))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errors.Wrapf(ErrNotFound, "%s %s/%s", kind, run, label)
	}

	return errors.Wrapf(err, "meshstore: read %s %s/%s", kind, run, label)
}

// meshDoc is the stored form of a mesh.
type meshDoc struct {
	Coords [][3]float64 `json:"coords"`
	Cells  [][2]int     `json:"cells"`
	Keys   []int        `json:"keys,omitempty"`
}

// PutMesh stores m under run/label, replacing any previous value.
func (s *Store) PutMesh(run, label string, m *mesh.Mesh) error {
	return s.put(kindMesh, run, label, meshDoc{Coords: m.Coords, Cells: m.Cells, Keys: m.Keys})
}

// GetMesh loads the mesh stored under run/label.
func (s *Store) GetMesh(run, label string) (*mesh.Mesh, error) {
	var doc meshDoc
	if err := s.get(kindMesh, run, label, &doc); err != nil {
		return nil, err
	}
	m, err := mesh.New(doc.Coords, doc.Cells)
	if err != nil {
		return nil, err
	}
	if err = m.SetKeys(doc.Keys); err != nil {
		return nil, err
	}

	return m, nil
}

// PutParentMap stores a refinement parent-cell map under run/label.
func (s *Store) PutParentMap(run, label string, parent []int) error {
	return s.put(kindParent, run, label, parent)
}

// GetParentMap loads the parent-cell map stored under run/label.
func (s *Store) GetParentMap(run, label string) ([]int, error) {
	var parent []int
	if err := s.get(kindParent, run, label, &parent); err != nil {
		return nil, err
	}

	return parent, nil
}

// PutField stores a cell field under run/label.
func PutField[T mesh.Scalar](s *Store, run, label string, f mesh.CellField[T]) error {
	return s.put(kindField, run, label, []T(f))
}

// GetField loads the cell field stored under run/label.
func GetField[T mesh.Scalar](s *Store, run, label string) (mesh.CellField[T], error) {
	var values []T
	if err := s.get(kindField, run, label, &values); err != nil {
		return nil, err
	}

	return values, nil
}

// Runs returns the distinct run names that have at least one mesh, in
// key order.
func (s *Store) Runs() ([]string, error) {
	var runs []string
	prefix := []byte(kindMesh + "/")
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			rest := bytes.TrimPrefix(it.Item().Key(), prefix)
			run := string(rest[:bytes.IndexByte(rest, '/')])
			if len(runs) == 0 || runs[len(runs)-1] != run {
				runs = append(runs, run)
			}
		}

		return nil
	})

	return runs, err
}

// Labels returns the mesh labels stored for run, in key order.
func (s *Store) Labels(run string) ([]string, error) {
	var labels []string
	prefix := key(kindMesh, run, "")
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			labels = append(labels, string(bytes.TrimPrefix(it.Item().Key(), prefix)))
		}

		return nil
	})

	return labels, err
}

// DeleteRun removes everything stored under run and returns the number of
// deleted entries.
func (s *Store) DeleteRun(run string) (int, error) {
	if s.readOnly {
		return 0, ErrReadOnly
	}

	n := 0
	err := s.db.Update(func(txn *badger.Txn) error {
		var keys [][]byte
		for _, kind := range []string{kindMesh, kindField, kindParent} {
			it := txn.NewIterator(badger.IteratorOptions{Prefix: key(kind, run, "")})
			for it.Rewind(); it.Valid(); it.Next() {
				keys = append(keys, it.Item().KeyCopy(nil))
			}
			it.Close()
		}
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		n = len(keys)

		return nil
	})

	return n, err
}
