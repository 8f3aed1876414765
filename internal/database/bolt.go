package database

import (
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

// BoltKVStore provides simple kv store interface based on boltdb.
type BoltKVStore struct {
	db     *bbolt.DB
	bucket []byte
}

// NewBoltKVStore opens a bolt database file, creating it and the bucket
// when needed.
func NewBoltKVStore(dbPath string, bucketName string) (*BoltKVStore, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		return nil, errors.Wrap(err, "creating database bucket")
	}

	return &BoltKVStore{
		db:     db,
		bucket: []byte(bucketName),
	}, nil
}

// Get returns data saved for given key. Missing keys return nil data and
// no error.
func (s *BoltKVStore) Get(key []byte) ([]byte, error) {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		// Values are only valid inside the transaction, copy out.
		if v := tx.Bucket(s.bucket).Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "reading from db")
	}

	return data, nil
}

// Put stores given data under given key.
func (s *BoltKVStore) Put(key []byte, data []byte) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put(key, data)
	}); err != nil {
		return errors.Wrap(err, "writing to db")
	}

	return nil
}

// Close closes the database file.
func (s *BoltKVStore) Close() error {
	return s.db.Close()
}
