package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lansync/internal/client/storage"
	"github.com/iudanet/lansync/internal/models"
)

// SaveRecord stores or replaces a record in BoltDB
func (s *Storage) SaveRecord(ctx context.Context, kind string, record models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	name, err := recordBucket(kind)
	if err != nil {
		return err
	}

	id := record.ID()
	if id == "" {
		return fmt.Errorf("record has no id")
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", name)
		}

		// bbolt хранит ссылку на value до конца транзакции, отдаем копию
		if err := bucket.Put([]byte(id), record.Clone()); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetRecord retrieves a record by id
func (s *Storage) GetRecord(ctx context.Context, kind, id string) (models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	name, err := recordBucket(kind)
	if err != nil {
		return nil, err
	}

	var record models.Record

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return storage.ErrRecordNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		// Данные валидны только внутри транзакции
		record = models.Record(data).Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListRecords returns all records of a kind ordered by id
func (s *Storage) ListRecords(ctx context.Context, kind string) ([]models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	name, err := recordBucket(kind)
	if err != nil {
		return nil, err
	}

	records := []models.Record{}

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			// Нет bucket - возвращаем пустой массив
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			records = append(records, models.Record(v).Clone())
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

// DeleteRecord removes a record by id
func (s *Storage) DeleteRecord(ctx context.Context, kind, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	name, err := recordBucket(kind)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}
