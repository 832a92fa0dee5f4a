// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBasicAuth(t *testing.T) {
	assert := assert.New(t)

	user, pass, err := parseBasicAuth("Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret")))
	if assert.NoError(err) {
		assert.Equal("admin", user)
		assert.Equal("secret", pass)
	}

	// password may contain colons
	user, pass, err = parseBasicAuth("Basic " + base64.StdEncoding.EncodeToString([]byte("admin:se:cret")))
	if assert.NoError(err) {
		assert.Equal("admin", user)
		assert.Equal("se:cret", pass)
	}

	// scheme is case insensitive
	_, _, err = parseBasicAuth("basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret")))
	assert.NoError(err)

	for _, header := range []string{
		"",
		"Basic",
		"Bearer xyz",
		"Basic !!notbase64!!",
		"Basic " + base64.StdEncoding.EncodeToString([]byte("nocolon")),
	} {
		_, _, err := parseBasicAuth(header)
		assert.Error(err, "header %q should not parse", header)
	}
}
