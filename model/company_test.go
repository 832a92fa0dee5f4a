// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package model

import (
	"testing"
)

func TestCompany(t *testing.T) {
	db := newTestDB(t)

	_, err := FetchCompany(db, "No Such Company")
	if err != ErrNotFound {
		t.Errorf("Incorrect error: got %v should be %v", err, ErrNotFound)
	}

	c, err := CreateCompany(db, "Acme Widgets")
	if err != nil {
		t.Fatal(err)
	}

	if len(c.WebtokenKey) != 64 {
		t.Errorf("Incorrect webtoken key length: got %d should be %d", len(c.WebtokenKey), 64)
	}

	fetched, err := FetchCompany(db, "Acme Widgets")
	if err != nil {
		t.Fatal(err)
	}

	if fetched.WebtokenKey != c.WebtokenKey {
		t.Errorf("Incorrect webtoken key: got %s should be %s", fetched.WebtokenKey, c.WebtokenKey)
	}

	// lookup is exact match only
	_, err = FetchCompany(db, "acme widgets")
	if err != ErrNotFound {
		t.Errorf("Incorrect error: got %v should be %v", err, ErrNotFound)
	}
}
