// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package model

import (
	"context"
	"sort"

	"github.com/pkg/errors"
)

// Registry holds the named tenant databases. All tenants are opened at
// startup and the registry is read-only afterwards, so lookups need no
// locking.
type Registry struct {
	dbs         map[string]*DB
	defaultName string
}

func NewRegistry(defaultName string) *Registry {
	return &Registry{
		dbs:         make(map[string]*DB),
		defaultName: defaultName,
	}
}

func (r *Registry) Open(name, driver, dsn string) error {
	if _, ok := r.dbs[name]; ok {
		return errors.Errorf("database already registered: %s", name)
	}

	db, err := NewDB(driver, dsn)
	if err != nil {
		return errors.Wrapf(err, "failed to open database %s", name)
	}

	r.dbs[name] = db

	return nil
}

// Add registers an already open database. Used by tests.
func (r *Registry) Add(name string, db *DB) {
	r.dbs[name] = db
}

func (r *Registry) Get(name string) (*DB, error) {
	db, ok := r.dbs[name]
	if !ok {
		return nil, ErrUnknownDatabase
	}

	return db, nil
}

func (r *Registry) DefaultName() string {
	return r.defaultName
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.dbs))
	for name := range r.dbs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Migrate runs schema migrations on every tenant.
func (r *Registry) Migrate(ctx context.Context) error {
	for _, name := range r.Names() {
		if err := r.dbs[name].Migrate(ctx); err != nil {
			return errors.Wrapf(err, "migration failed for database %s", name)
		}
	}

	return nil
}

func (r *Registry) Close() error {
	var lastErr error
	for _, db := range r.dbs {
		if err := db.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}
