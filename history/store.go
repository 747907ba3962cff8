// Package history persists generated documents locally so the history view
// has something to show across invocations. Records are view data only; the
// backend never sees them.
package history

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/gamma-omg/pdfsearch-cli/backend"
)

var bucketGenerated = []byte("generated")

// Record is a generated document kept for the history view.
type Record struct {
	ID       string                    `json:"id"`
	SavedAt  time.Time                 `json:"saved_at"`
	Document backend.GeneratedDocument `json:"document"`
}

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketGenerated)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history db: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save assigns the document an ID and persists it.
func (s *Store) Save(doc backend.GeneratedDocument) (*Record, error) {
	rec := &Record{
		ID:       uuid.NewString(),
		SavedAt:  time.Now().UTC(),
		Document: doc,
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketGenerated).Put([]byte(rec.ID), data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save history record: %w", err)
	}

	return rec, nil
}

func (s *Store) Get(id string) (*Record, error) {
	var rec Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketGenerated).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("history record not found: %s", id)
		}
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGenerated).Delete([]byte(id))
	})
}

// List returns records newest first.
func (s *Store) List() ([]Record, error) {
	var recs []Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGenerated).ForEach(func(k, v []byte) error {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			recs = append(recs, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].SavedAt.After(recs[j].SavedAt)
	})

	return recs, nil
}
