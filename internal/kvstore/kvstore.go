// HomeHub - Household Kiosk Dashboard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package kvstore wraps BadgerDB as a small embedded key-value store for
// local kiosk state.
package kvstore

import (
	"errors"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("key not found")

// Options configures a Store.
type Options struct {
	Dir      string // on-disk directory (ignored when InMemory is true)
	InMemory bool   // use in-memory storage (for tests)
	ReadOnly bool   // open in read-only mode (no directory lock acquired)
}

// Store is an open Badger database. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open creates or opens a store. A kiosk is often powered off without a clean
// shutdown, so a store whose value log needs truncation is first opened in
// write mode to repair it and then reopened with the requested options.
func Open(opts Options) (*Store, error) {
	bopts := badgerOptions(opts)

	db, err := badger.Open(bopts)
	if err != nil && !opts.InMemory && needsTruncation(err) {
		recoveryOpts := badgerOptions(Options{Dir: opts.Dir})
		rdb, rerr := badger.Open(recoveryOpts)
		if rerr != nil {
			return nil, err // return original error if recovery fails
		}
		if cerr := rdb.Close(); cerr != nil {
			return nil, cerr
		}
		// Retry the original open.
		db, err = badger.Open(bopts)
	}
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}

	if !opts.ReadOnly && !opts.InMemory {
		s.runGC()
	}

	return s, nil
}

// badgerOptions builds BadgerDB options from our Options.
func badgerOptions(opts Options) badger.Options {
	bopts := badger.DefaultOptions(opts.Dir)
	bopts.Logger = nil
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
		bopts.Logger = nil
	}
	if opts.ReadOnly {
		bopts = bopts.WithReadOnly(true).WithBypassLockGuard(true)
	}
	return bopts
}

// needsTruncation checks if a BadgerDB open error indicates WAL truncation is needed.
func needsTruncation(err error) bool {
	return strings.Contains(err.Error(), "Log truncate required") ||
		strings.Contains(err.Error(), "MANIFEST has unsupported version")
}

// Get retrieves the value for a key. Returns ErrNotFound if the key does not exist.
func (s *Store) Get(key []byte) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	return val, err
}

// Set stores a key-value pair.
func (s *Store) Set(key, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Update replaces the value of key with the result of fn inside a single
// transaction. fn receives nil when the key does not exist. Returning a nil
// value deletes the key.
func (s *Store) Update(key []byte, fn func(old []byte) ([]byte, error)) ([]byte, error) {
	var out []byte
	err := s.db.Update(func(txn *badger.Txn) error {
		var old []byte
		item, err := txn.Get(key)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return err
		default:
			if old, err = item.ValueCopy(nil); err != nil {
				return err
			}
		}
		out, err = fn(old)
		if err != nil {
			return err
		}
		if out == nil {
			return txn.Delete(key)
		}
		return txn.Set(key, out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a key.
func (s *Store) Delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// Iterate calls fn for every key with the given prefix, in key order.
// Iteration stops at the first error returned by fn.
func (s *Store) Iterate(prefix []byte, fn func(key, value []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			k := item.KeyCopy(nil)
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close runs value log GC and then closes the underlying database.
func (s *Store) Close() error {
	s.runGC()
	return s.db.Close()
}

// runGC rewrites value log files that are at least half garbage until
// Badger reports nothing left to collect.
func (s *Store) runGC() {
	for {
		if s.db.RunValueLogGC(0.5) != nil {
			return
		}
	}
}
