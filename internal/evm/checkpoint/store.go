// Package checkpoint persists how far the feed follower has delivered blocks.
package checkpoint

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketName = []byte("follower")
	heightKey  = []byte("last_delivered_block")
)

// Store keeps the last fully delivered block height in a bbolt file.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the checkpoint file at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create checkpoint dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open checkpoint db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create checkpoint bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Load returns the stored height; false when none has been saved yet.
func (s *Store) Load() (uint64, bool, error) {
	var (
		height uint64
		found  bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketName).Get(heightKey)
		if data == nil {
			return nil
		}
		if len(data) != 8 {
			return fmt.Errorf("corrupt checkpoint: %d bytes", len(data))
		}
		height, found = binary.BigEndian.Uint64(data), true
		return nil
	})
	if err != nil {
		return 0, false, fmt.Errorf("load checkpoint: %w", err)
	}
	return height, found, nil
}

// Save durably records height.
func (s *Store) Save(height uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, height)

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(heightKey, buf)
	})
	if err != nil {
		return fmt.Errorf("save checkpoint %d: %w", height, err)
	}
	return nil
}

// Close closes the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}
