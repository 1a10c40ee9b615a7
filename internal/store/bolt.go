package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketKV  = []byte("kv")
	bucketRev = []byte("kv_rev")
)

// BoltStore implements KV on a bbolt file. Revisions are the bucket sequence
// at the time of the write.
type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("bolt db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketKV); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketRev)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketKV).Get([]byte(key))
		if data == nil {
			return nil
		}
		value, ok = string(data), true
		return nil
	})
	return value, ok, err
}

func (s *BoltStore) Set(ctx context.Context, key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		kv := tx.Bucket(bucketKV)
		if err := kv.Put([]byte(key), []byte(value)); err != nil {
			return err
		}
		seq, err := kv.NextSequence()
		if err != nil {
			return err
		}
		return tx.Bucket(bucketRev).Put([]byte(key), []byte(strconv.FormatUint(seq, 10)))
	})
}

func (s *BoltStore) Revision(ctx context.Context, key string) (string, error) {
	var rev string
	err := s.db.View(func(tx *bolt.Tx) error {
		rev = string(tx.Bucket(bucketRev).Get([]byte(key)))
		return nil
	})
	return rev, err
}

func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
