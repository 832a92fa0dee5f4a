// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package model

import (
	"context"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}

	// in-memory sqlite is per-connection
	db.SetMaxOpenConns(1)

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}

func TestMigrate(t *testing.T) {
	db := newTestDB(t)

	for _, table := range []string{"users", "company", "item", "location", "customer", "demand", "planned_order"} {
		var count int
		err := db.Get(&count, "select count(*) from "+table)
		if err != nil {
			t.Errorf("table %s missing after migration: %s", table, err)
		}
	}
}
