// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

// Package frepple reads and writes the XML documents exchanged with
// the frePPLe planning tool.
package frepple

import (
	"encoding/xml"
	"strings"
)

const (
	// PlanNamespace is the frePPLe XML schema namespace
	PlanNamespace = "http://frepple.com/xml/ver3"

	// TimeFormat used for all dates in the exchanged documents
	TimeFormat = "2006-01-02T15:04:05"

	// ModeFull exports master data and transactions, and import
	// replaces any previously stored plan
	ModeFull = 1

	// ModeIncremental exports transactions only, and import merges
	// into the stored plan
	ModeIncremental = 2
)

func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
