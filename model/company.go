// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package model

import (
	"database/sql"
	"time"
)

// Company is a legal entity in the tenant database. The webtoken key
// is the shared secret the companion planning tool signs webtokens
// with.
type Company struct {
	Name        string     `db:"name"`
	WebtokenKey string     `db:"webtoken_key"`
	CreatedAt   *time.Time `db:"created_at"`
}

// FetchCompany looks up a company by exact name.
func FetchCompany(db *DB, name string) (*Company, error) {
	c := Company{}
	err := db.Get(&c, db.Rebind("select name,webtoken_key,created_at from company where name = ?"), name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &c, nil
}

// CreateCompany stores a new company with a freshly generated webtoken
// key.
func CreateCompany(db *DB, name string) (*Company, error) {
	key, err := GenerateSecret(32)
	if err != nil {
		return nil, err
	}

	c := &Company{
		Name:        name,
		WebtokenKey: key,
	}

	_, err = db.Exec(db.Rebind("insert into company (name,webtoken_key) values (?, ?)"), c.Name, c.WebtokenKey)
	if err != nil {
		return nil, err
	}

	return c, nil
}
