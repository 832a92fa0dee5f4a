// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package frepple

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/planxhq/planx/model"
)

// Importer consumes the operationplans document posted by the planning
// tool and stores each planned order in the tenant database. A full
// import replaces the stored plan, an incremental import merges into
// it.
type Importer struct {
	db      *model.DB
	company string
	mode    int
}

func NewImporter(db *model.DB, company string, mode int) *Importer {
	return &Importer{
		db:      db,
		company: company,
		mode:    mode,
	}
}

type nameRef struct {
	Name string `xml:"name,attr"`
}

type operationPlan struct {
	Reference string  `xml:"reference,attr"`
	OrderType string  `xml:"ordertype,attr"`
	Item      nameRef `xml:"item"`
	Location  nameRef `xml:"location"`
	Supplier  nameRef `xml:"supplier"`
	Start     string  `xml:"start"`
	End       string  `xml:"end"`
	Quantity  float64 `xml:"quantity"`
}

func parsePlanTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (i *Importer) Run(ctx context.Context, r io.Reader) (string, error) {
	tx, err := i.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if i.mode != ModeIncremental {
		_, err := tx.ExecContext(ctx, i.db.Rebind("delete from planned_order where company = ?"), i.company)
		if err != nil {
			return "", err
		}
	}

	count := 0
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", errors.Wrap(err, "malformed operationplans document")
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "operationplan" {
			continue
		}

		op := operationPlan{}
		if err := dec.DecodeElement(&op, &se); err != nil {
			return "", errors.Wrap(err, "malformed operationplan element")
		}

		if op.Reference == "" {
			return "", errors.New("operationplan without reference")
		}

		if err := i.store(ctx, tx, &op); err != nil {
			return "", errors.Wrapf(err, "failed to store operationplan %s", op.Reference)
		}

		count++
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return fmt.Sprintf("Processed %d planned orders", count), nil
}

func (i *Importer) store(ctx context.Context, tx *sqlx.Tx, op *operationPlan) error {
	start, err := parsePlanTime(op.Start)
	if err != nil {
		return err
	}
	end, err := parsePlanTime(op.End)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, i.db.Rebind("delete from planned_order where reference = ?"), op.Reference)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, i.db.Rebind(`
        insert into planned_order
            (reference,company,ordertype,item,location,supplier,quantity,startdate,enddate)
        values (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		op.Reference, i.company, op.OrderType, op.Item.Name, op.Location.Name, op.Supplier.Name,
		op.Quantity, start, end)

	return err
}
