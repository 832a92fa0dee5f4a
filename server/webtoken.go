// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package server

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WebTokenClaims is the payload of the webtoken the companion planning
// tool attaches to posted plans. The token is signed with the
// company's webtoken key and binds the request to the basic-auth user.
type WebTokenClaims struct {
	jwt.RegisteredClaims
	User string `json:"user"`
}

func NewWebToken(user, key string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &WebTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		User: user,
	})

	return token.SignedString([]byte(key))
}

// ParseWebToken verifies an HS256 signed webtoken. Any other signing
// algorithm is rejected.
func ParseWebToken(tokenString, key string) (*WebTokenClaims, error) {
	claims := &WebTokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(key), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid webtoken")
	}

	return claims, nil
}
