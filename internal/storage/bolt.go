package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("zennav")

// BoltKV implements KV using a bbolt database with a single bucket.
type BoltKV struct {
	db *bolt.DB
}

// NewBoltKV opens or creates the bbolt database at path.
func NewBoltKV(path string) (*BoltKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltKV{db: db}, nil
}

// Get returns a copy of the value stored under key.
func (s *BoltKV) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// v is only valid inside the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

// Put writes all entries in one transaction.
func (s *BoltKV) Put(entries ...Entry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		for _, e := range entries {
			if err := bucket.Put([]byte(e.Key), e.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close closes the database.
func (s *BoltKV) Close() error {
	return s.db.Close()
}
