// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/planxhq/planx/model"
)

func TestWebToken(t *testing.T) {
	assert := assert.New(t)

	key, err := model.GenerateSecret(32)
	assert.NoError(err)

	token, err := NewWebToken("admin", key, time.Hour)
	if assert.NoError(err) {
		assert.Greater(len(token), 0)
	}

	claims, err := ParseWebToken(token, key)
	if assert.NoError(err) {
		assert.Equal("admin", claims.User)
	}
}

func TestWebTokenWrongKey(t *testing.T) {
	assert := assert.New(t)

	key, _ := model.GenerateSecret(32)
	otherKey, _ := model.GenerateSecret(32)

	token, err := NewWebToken("admin", key, time.Hour)
	assert.NoError(err)

	_, err = ParseWebToken(token, otherKey)
	assert.Error(err)
}

func TestWebTokenExpired(t *testing.T) {
	assert := assert.New(t)

	key, _ := model.GenerateSecret(32)

	token, err := NewWebToken("admin", key, -time.Minute)
	assert.NoError(err)

	_, err = ParseWebToken(token, key)
	assert.Error(err)
}

func TestWebTokenRejectsOtherAlgorithms(t *testing.T) {
	assert := assert.New(t)

	key, _ := model.GenerateSecret(32)

	// token signed with HS384 must not verify even with the right key
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, &WebTokenClaims{User: "admin"})
	signed, err := token.SignedString([]byte(key))
	assert.NoError(err)

	_, err = ParseWebToken(signed, key)
	assert.Error(err)
}

func TestWebTokenMalformed(t *testing.T) {
	assert := assert.New(t)

	key, _ := model.GenerateSecret(32)

	for _, garbage := range []string{"", "notatoken", "aaa.bbb.ccc"} {
		_, err := ParseWebToken(garbage, key)
		assert.Error(err)
	}
}
