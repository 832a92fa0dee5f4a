// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package model

import (
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Username  string     `db:"username"`
	Password  string     `db:"password"`
	CreatedAt *time.Time `db:"created_at"`
}

// dummyHash is compared against when the user does not exist so a
// lookup miss costs the same as a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func FetchUser(db *DB, username string) (*User, error) {
	u := User{}
	err := db.Get(&u, db.Rebind("select username,password,created_at from users where username = ?"), username)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &u, nil
}

// AuthenticateUser verifies username/password credentials against the
// tenant users table. Returns ErrInvalidLogin for both unknown users
// and bad passwords.
func AuthenticateUser(db *DB, username, password string) error {
	u, err := FetchUser(db, username)
	if err == ErrNotFound {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return ErrInvalidLogin
	} else if err != nil {
		return err
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return ErrInvalidLogin
	}

	return nil
}

func CreateUser(db *DB, username, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username: username,
		Password: string(hash),
	}

	_, err = db.Exec(db.Rebind("insert into users (username,password) values (?, ?)"), u.Username, u.Password)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func DeleteUser(db *DB, username string) error {
	_, err := db.Exec(db.Rebind("delete from users where username = ?"), username)
	return err
}
