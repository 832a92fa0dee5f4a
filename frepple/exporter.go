// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package frepple

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/planxhq/planx/model"
)

// Exporter writes the tenant planning data as a frePPLe plan document.
// Master data (items, locations, customers) is included in a full
// export; an incremental export ships open sales orders only.
type Exporter struct {
	db       *model.DB
	company  string
	mode     int
	language string
}

func NewExporter(db *model.DB, company string, mode int, language string) *Exporter {
	return &Exporter{
		db:       db,
		company:  company,
		mode:     mode,
		language: language,
	}
}

// planWriter tracks the first write error so each section can write
// without per-call checks.
type planWriter struct {
	w   io.Writer
	err error
}

func (pw *planWriter) printf(format string, args ...interface{}) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, format, args...)
}

func (e *Exporter) Run(ctx context.Context, w io.Writer) error {
	pw := &planWriter{w: w}

	pw.printf("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	if e.language != "" {
		pw.printf("<plan xmlns=\"%s\" lang=\"%s\">\n", PlanNamespace, escape(e.language))
	} else {
		pw.printf("<plan xmlns=\"%s\">\n", PlanNamespace)
	}

	if e.mode != ModeIncremental {
		if err := e.exportItems(ctx, pw); err != nil {
			return err
		}
		if err := e.exportLocations(ctx, pw); err != nil {
			return err
		}
		if err := e.exportCustomers(ctx, pw); err != nil {
			return err
		}
	}

	if err := e.exportDemands(ctx, pw); err != nil {
		return err
	}

	pw.printf("</plan>\n")

	return pw.err
}

type itemRow struct {
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Cost        float64 `db:"cost"`
}

func (e *Exporter) exportItems(ctx context.Context, pw *planWriter) error {
	items := []itemRow{}
	err := e.db.SelectContext(ctx, &items, "select name,description,cost from item order by name")
	if err != nil {
		return err
	}

	pw.printf("<items>\n")
	for _, i := range items {
		pw.printf("<item name=\"%s\">", escape(i.Name))
		if i.Description != "" {
			pw.printf("<description>%s</description>", escape(i.Description))
		}
		if i.Cost != 0 {
			pw.printf("<cost>%g</cost>", i.Cost)
		}
		pw.printf("</item>\n")
	}
	pw.printf("</items>\n")

	return pw.err
}

type nameDescriptionRow struct {
	Name        string `db:"name"`
	Description string `db:"description"`
}

func (e *Exporter) exportLocations(ctx context.Context, pw *planWriter) error {
	locations := []nameDescriptionRow{}
	err := e.db.SelectContext(ctx, &locations, "select name,description from location order by name")
	if err != nil {
		return err
	}

	pw.printf("<locations>\n")
	for _, l := range locations {
		pw.printf("<location name=\"%s\">", escape(l.Name))
		if l.Description != "" {
			pw.printf("<description>%s</description>", escape(l.Description))
		}
		pw.printf("</location>\n")
	}
	pw.printf("</locations>\n")

	return pw.err
}

func (e *Exporter) exportCustomers(ctx context.Context, pw *planWriter) error {
	customers := []nameDescriptionRow{}
	err := e.db.SelectContext(ctx, &customers, "select name,description from customer order by name")
	if err != nil {
		return err
	}

	pw.printf("<customers>\n")
	for _, c := range customers {
		pw.printf("<customer name=\"%s\">", escape(c.Name))
		if c.Description != "" {
			pw.printf("<description>%s</description>", escape(c.Description))
		}
		pw.printf("</customer>\n")
	}
	pw.printf("</customers>\n")

	return pw.err
}

type demandRow struct {
	Name     string    `db:"name"`
	Item     string    `db:"item"`
	Location string    `db:"location"`
	Customer string    `db:"customer"`
	Quantity float64   `db:"quantity"`
	Due      time.Time `db:"due"`
}

func (e *Exporter) exportDemands(ctx context.Context, pw *planWriter) error {
	query := "select name,item,location,customer,quantity,due from demand where status = 'open'"
	args := []interface{}{}
	if e.company != "" {
		query += " and company = ?"
		args = append(args, e.company)
	}
	query += " order by name"

	demands := []demandRow{}
	err := e.db.SelectContext(ctx, &demands, e.db.Rebind(query), args...)
	if err != nil {
		return err
	}

	pw.printf("<demands>\n")
	for _, d := range demands {
		pw.printf("<demand name=\"%s\">", escape(d.Name))
		pw.printf("<quantity>%g</quantity>", d.Quantity)
		pw.printf("<due>%s</due>", d.Due.Format(TimeFormat))
		pw.printf("<item name=\"%s\"/>", escape(d.Item))
		if d.Location != "" {
			pw.printf("<location name=\"%s\"/>", escape(d.Location))
		}
		if d.Customer != "" {
			pw.printf("<customer name=\"%s\"/>", escape(d.Customer))
		}
		pw.printf("</demand>\n")
	}
	pw.printf("</demands>\n")

	return pw.err
}
