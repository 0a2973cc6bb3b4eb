package khata

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// Store is the embedded record store of a book, holding the four record
// kinds in one BadgerDB keyspace. It is an explicit handle: callers own it
// and pass it to the Book, there is no process-wide database.
//
// Keyspace layout:
//
//	rec/<kind>/<key>                     JSON-encoded record
//	idx/<kind>/<index>/<value>\x00<key>  secondary index row (empty value)
//	seq/<kind>                           auto-increment counter
//
// The NUL byte after the index value keeps one value from matching the
// prefix scan of another value it happens to start with.
type Store struct {
	db *badger.DB
}

// OpenStore opens (creating if needed) the store directory at path.
func OpenStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store: path is required")
	}
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("store: create directory %s: %w", path, err)
	}
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemoryStore opens a store without disk persistence, for tests.
func OpenInMemoryStore() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open in-memory: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database. The store is unusable afterwards.
func (s *Store) Close() error { return s.db.Close() }

func recKey(kind Kind, key string) []byte {
	return []byte("rec/" + string(kind) + "/" + key)
}

func recPrefix(kind Kind) []byte {
	return []byte("rec/" + string(kind) + "/")
}

// idxKey separates value from key with a NUL byte. Validation rejects NUL
// in indexed attributes, so a value can never smuggle the separator and
// match another value's prefix scan.
func idxKey(kind Kind, index, value, key string) []byte {
	return []byte("idx/" + string(kind) + "/" + index + "/" + value + "\x00" + key)
}

func idxPrefix(kind Kind, index, value string) []byte {
	return []byte("idx/" + string(kind) + "/" + index + "/" + value + "\x00")
}

func seqKey(kind Kind) []byte {
	return []byte("seq/" + string(kind))
}

// nextID reads, increments and writes back the kind's counter inside txn,
// so an identifier is allocated atomically with the insert that uses it.
func nextID(txn *badger.Txn, kind Kind) (int64, error) {
	var cur int64
	item, err := txn.Get(seqKey(kind))
	if err == nil {
		err = item.Value(func(val []byte) error {
			n, perr := strconv.ParseInt(string(val), 10, 64)
			cur = n
			return perr
		})
	}
	if err != nil && err != badger.ErrKeyNotFound {
		return 0, err
	}
	cur++
	if err := txn.Set(seqKey(kind), []byte(strconv.FormatInt(cur, 10))); err != nil {
		return 0, err
	}
	return cur, nil
}

// setRecord writes the record and its index rows inside txn.
func setRecord(txn *badger.Txn, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := txn.Set(recKey(rec.Kind(), rec.Key()), data); err != nil {
		return err
	}
	for index, value := range rec.Indexes() {
		if err := txn.Set(idxKey(rec.Kind(), index, value, rec.Key()), nil); err != nil {
			return err
		}
	}
	return nil
}

// unsetRecord deletes the record and its index rows inside txn.
func unsetRecord(txn *badger.Txn, rec Record) error {
	if err := txn.Delete(recKey(rec.Kind(), rec.Key())); err != nil {
		return err
	}
	for index, value := range rec.Indexes() {
		if err := txn.Delete(idxKey(rec.Kind(), index, value, rec.Key())); err != nil {
			return err
		}
	}
	return nil
}

// Add assigns a fresh identifier to rec, persists it and returns the
// identifier. The counter update and the insert commit together.
func (s *Store) Add(rec Record) (int64, error) {
	var id int64
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		if id, err = nextID(txn, rec.Kind()); err != nil {
			return err
		}
		rec.setID(id)
		return setRecord(txn, rec)
	})
	if err != nil {
		return 0, fmt.Errorf("store: add %s: %w", rec.Kind(), err)
	}
	return id, nil
}

// Put replaces the stored record wholesale. old is the previously stored
// version, whose stale index rows are dropped in the same transaction; it
// may be nil when the key is known to be new (settings upsert, restore).
func (s *Store) Put(rec, old Record) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if old != nil {
			if err := unsetRecord(txn, old); err != nil {
				return err
			}
		}
		return setRecord(txn, rec)
	})
	if err != nil {
		return fmt.Errorf("store: put %s/%s: %w", rec.Kind(), rec.Key(), err)
	}
	return nil
}

// Remove deletes the given records and their index rows in one transaction.
// Removing records that are already gone is not an error.
func (s *Store) Remove(recs ...Record) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, rec := range recs {
			if err := unsetRecord(txn, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store: remove: %w", err)
	}
	return nil
}

// RaiseCounter lifts the kind's auto-increment counter to at least floor,
// so identifiers assigned after a restore never collide with imported ones.
func (s *Store) RaiseCounter(kind Kind, floor int64) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		var cur int64
		item, err := txn.Get(seqKey(kind))
		if err == nil {
			err = item.Value(func(val []byte) error {
				n, perr := strconv.ParseInt(string(val), 10, 64)
				cur = n
				return perr
			})
		}
		if err != nil && err != badger.ErrKeyNotFound {
			return err
		}
		if floor <= cur {
			return nil
		}
		return txn.Set(seqKey(kind), []byte(strconv.FormatInt(floor, 10)))
	})
	if err != nil {
		return fmt.Errorf("store: raise counter %s: %w", kind, err)
	}
	return nil
}

// Clear drops every record and index row of the kind. The counter is kept,
// identifiers stay monotonic across a clear.
func (s *Store) Clear(kind Kind) error {
	if err := s.db.DropPrefix(recPrefix(kind), []byte("idx/"+string(kind)+"/")); err != nil {
		return fmt.Errorf("store: clear %s: %w", kind, err)
	}
	return nil
}

// get returns the record stored under key, or nil when absent. Absence is
// not an error.
func get[T any](s *Store, kind Kind, key string) (*T, error) {
	var rec *T
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recKey(kind, key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			rec = new(T)
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("store: get %s/%s: %w", kind, key, err)
	}
	return rec, nil
}

// getAll returns every record of the kind in key order, which is insertion
// order for auto-assigned identifiers.
func getAll[T any](s *Store, kind Kind) ([]*T, error) {
	var recs []*T
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := recPrefix(kind)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				rec := new(T)
				if err := json.Unmarshal(val, rec); err != nil {
					return err
				}
				recs = append(recs, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: get all %s: %w", kind, err)
	}
	return recs, nil
}

// getByIndex returns every record whose indexed attribute equals value,
// resolved through the secondary index rows.
func getByIndex[T any](s *Store, kind Kind, index, value string) ([]*T, error) {
	var recs []*T
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // index rows carry no value
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := idxPrefix(kind, index, value)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key()[len(prefix):])
			item, err := txn.Get(recKey(kind, key))
			if err == badger.ErrKeyNotFound {
				continue // dangling index row, skip
			}
			if err != nil {
				return err
			}
			err = item.Value(func(val []byte) error {
				rec := new(T)
				if err := json.Unmarshal(val, rec); err != nil {
					return err
				}
				recs = append(recs, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: get %s by %s: %w", kind, index, err)
	}
	return recs, nil
}
