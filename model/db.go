// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package model

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/planxhq/planx/model/migrations"
)

type DB struct {
	*sqlx.DB

	driver string
}

func NewDB(driver, dsn string) (*DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return &DB{DB: db, driver: driver}, nil
}

func (db *DB) Driver() string {
	return db.driver
}

// Migrate brings the tenant schema up to date using the migrations
// embedded in the binary.
func (db *DB) Migrate(ctx context.Context) error {
	dialect := db.driver
	if dialect == "pgx" {
		dialect = "postgres"
	}

	provider, err := goose.NewProvider(goose.Dialect(dialect), db.DB.DB, migrations.FS)
	if err != nil {
		return errors.Wrap(err, "failed to setup migrations")
	}

	_, err = provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}
