// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package frepple

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlan = `<?xml version="1.0" encoding="UTF-8" ?>
<plan xmlns="http://frepple.com/xml/ver3">
<operationplans>
<operationplan reference="PO-100" ordertype="PO">
  <item name="bolt M6"/>
  <location name="factory 1"/>
  <supplier name="Fasteners Inc"/>
  <start>2024-03-10T08:00:00</start>
  <end>2024-03-17T08:00:00</end>
  <quantity>500</quantity>
</operationplan>
<operationplan reference="MO-200" ordertype="MO">
  <item name="nut M6"/>
  <location name="factory 1"/>
  <quantity>250</quantity>
</operationplan>
</operationplans>
</plan>
`

func TestImporter(t *testing.T) {
	assert := assert.New(t)

	db := newTestDB(t)

	ip := NewImporter(db, "Acme Widgets", ModeFull)
	result, err := ip.Run(context.Background(), strings.NewReader(testPlan))
	require.NoError(t, err)
	assert.Equal("Processed 2 planned orders", result)

	var count int
	require.NoError(t, db.Get(&count, "select count(*) from planned_order"))
	assert.Equal(2, count)

	row := struct {
		OrderType string  `db:"ordertype"`
		Company   string  `db:"company"`
		Item      string  `db:"item"`
		Supplier  string  `db:"supplier"`
		Quantity  float64 `db:"quantity"`
	}{}
	require.NoError(t, db.Get(&row,
		db.Rebind("select ordertype,company,item,supplier,quantity from planned_order where reference = ?"), "PO-100"))
	assert.Equal("PO", row.OrderType)
	assert.Equal("Acme Widgets", row.Company)
	assert.Equal("bolt M6", row.Item)
	assert.Equal("Fasteners Inc", row.Supplier)
	assert.Equal(500.0, row.Quantity)
}

func TestImporterFullReplacesPlan(t *testing.T) {
	db := newTestDB(t)

	ip := NewImporter(db, "Acme Widgets", ModeFull)
	_, err := ip.Run(context.Background(), strings.NewReader(testPlan))
	require.NoError(t, err)

	// a second full import starts from a clean slate
	_, err = ip.Run(context.Background(), strings.NewReader(testPlan))
	require.NoError(t, err)

	var count int
	require.NoError(t, db.Get(&count, "select count(*) from planned_order"))
	assert.Equal(t, 2, count)
}

func TestImporterIncrementalMerges(t *testing.T) {
	db := newTestDB(t)

	full := NewImporter(db, "Acme Widgets", ModeFull)
	_, err := full.Run(context.Background(), strings.NewReader(testPlan))
	require.NoError(t, err)

	update := `<operationplans>
<operationplan reference="PO-100" ordertype="PO"><quantity>750</quantity></operationplan>
<operationplan reference="PO-101" ordertype="PO"><quantity>10</quantity></operationplan>
</operationplans>`

	incr := NewImporter(db, "Acme Widgets", ModeIncremental)
	result, err := incr.Run(context.Background(), strings.NewReader(update))
	require.NoError(t, err)
	assert.Equal(t, "Processed 2 planned orders", result)

	var count int
	require.NoError(t, db.Get(&count, "select count(*) from planned_order"))
	assert.Equal(t, 3, count)

	var qty float64
	require.NoError(t, db.Get(&qty,
		db.Rebind("select quantity from planned_order where reference = ?"), "PO-100"))
	assert.Equal(t, 750.0, qty)
}

func TestImporterMalformed(t *testing.T) {
	db := newTestDB(t)

	ip := NewImporter(db, "Acme Widgets", ModeFull)

	_, err := ip.Run(context.Background(), strings.NewReader("<operationplans><operationplan"))
	assert.Error(t, err)

	_, err = ip.Run(context.Background(), strings.NewReader("<operationplans><operationplan><quantity>5</quantity></operationplan></operationplans>"))
	assert.Error(t, err, "missing reference attribute")
}
