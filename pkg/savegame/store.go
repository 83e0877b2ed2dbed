// Package savegame persists world snapshots in a bbolt database. Each
// named save is one gob-encoded snapshot under the saves bucket.
package savegame

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sort"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haulage-game/haulage/pkg/world"
)

var (
	bucketMeta  = []byte("meta")
	bucketSaves = []byte("saves")
)

// Store wraps a bbolt database holding named savegames.
type Store struct {
	bolt *bbolt.DB
}

// Open opens or creates a savegame database file and ensures all buckets
// exist.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("savegame: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketMeta, bucketSaves} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("savegame: create buckets: %w", err)
	}

	return &Store{bolt: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	if s.bolt != nil {
		return s.bolt.Close()
	}
	return nil
}

// Path returns the filesystem path of the underlying bbolt database.
func (s *Store) Path() string {
	if s.bolt != nil {
		return s.bolt.Path()
	}
	return ""
}

func encodeSnapshot(snap *world.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeSnapshot(data []byte) (*world.Snapshot, error) {
	var snap world.Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save snapshots the world and stores it under the given name, replacing
// any existing save with that name.
func (s *Store) Save(w *world.World, name string) error {
	data, err := encodeSnapshot(w.Snapshot())
	if err != nil {
		return fmt.Errorf("savegame: encode %q: %w", name, err)
	}
	return s.bolt.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketSaves).Put([]byte(name), data); err != nil {
			return err
		}
		stamp := time.Now().UTC().Format(time.RFC3339)
		return tx.Bucket(bucketMeta).Put([]byte("last:"+name), []byte(stamp))
	})
}

// Load restores the world from the named save.
func (s *Store) Load(w *world.World, name string) error {
	var data []byte
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketSaves).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("savegame: no save named %q", name)
		}
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return err
	}
	snap, err := decodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("savegame: decode %q: %w", name, err)
	}
	w.Restore(snap)
	return nil
}

// List returns the stored save names in sorted order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSaves).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the named save. Deleting a missing save is not an error.
func (s *Store) Delete(name string) error {
	return s.bolt.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketSaves).Delete([]byte(name)); err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Delete([]byte("last:" + name))
	})
}
