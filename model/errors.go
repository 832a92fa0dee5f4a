// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package model

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrUnknownDatabase = errors.New("unknown database")
	ErrInvalidLogin    = errors.New("invalid login")
)
