// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
	"github.com/mileusna/useragent"
	log "github.com/sirupsen/logrus"

	"github.com/planxhq/planx/frepple"
	"github.com/planxhq/planx/model"
)

// ExchangeRequest carries the request-scoped context handed to the
// exporter/importer collaborators.
type ExchangeRequest struct {
	Database string
	DB       *model.DB
	Company  string
	User     string
	Mode     int
	Language string
}

// Exporter produces the plan document for the planning tool.
type Exporter interface {
	Run(ctx context.Context, w io.Writer) error
}

// Importer consumes the plan document posted by the planning tool and
// returns a text result for the client.
type Importer interface {
	Run(ctx context.Context, r io.Reader) (string, error)
}

func parseMode(s string) int {
	mode, err := strconv.Atoi(s)
	if err != nil {
		return frepple.ModeFull
	}

	return mode
}

func setNoCache(c *fiber.Ctx) {
	c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")
}

func clientName(c *fiber.Ctx) string {
	ua := useragent.Parse(c.Get(fiber.HeaderUserAgent))
	if ua.Name == "" {
		return "unknown"
	}

	return ua.Name
}

// Export handles GET /frepple/xml. The planning tool pulls the full
// planning data set as XML.
func (r *Router) Export(c *fiber.Ctx) error {
	database := c.Query("database", r.registry.DefaultName())

	user, db, err := r.authenticate(c, database)
	if err != nil {
		return r.basicAuthRequired(c, database, err)
	}

	req := &ExchangeRequest{
		Database: database,
		DB:       db,
		Company:  c.Query("company"),
		User:     user,
		Mode:     parseMode(c.Query("mode")),
		Language: c.Query("language"),
	}

	var buf bytes.Buffer
	if err := r.NewExporter(req).Run(c.UserContext(), &buf); err != nil {
		r.metrics.totalFailedExports.Inc()

		log.WithFields(log.Fields{
			"database": database,
			"user":     user,
			"mode":     req.Mode,
			"ip":       c.IP(),
			"err":      err,
		}).Error("Error generating planning XML data")

		return c.Status(fiber.StatusInternalServerError).SendString(MsgExportFailed)
	}

	r.metrics.totalExports.Inc()

	log.WithFields(log.Fields{
		"database": database,
		"user":     user,
		"mode":     req.Mode,
		"size":     humanize.Bytes(uint64(buf.Len())),
		"client":   clientName(c),
		"ip":       c.IP(),
	}).Info("Export complete")

	setNoCache(c)
	c.Set(fiber.HeaderContentType, ContentTypeXML)

	return c.Send(buf.Bytes())
}

// importPayload returns a reader over the posted plan document. The
// planning tool uploads it as a multipart file, older clients send it
// as a plain form field.
func importPayload(c *fiber.Ctx) (io.ReadCloser, error) {
	fh, err := c.FormFile(FormFieldPlan)
	if err == nil {
		return fh.Open()
	}

	if v := c.FormValue(FormFieldPlan); v != "" {
		return io.NopCloser(strings.NewReader(v)), nil
	}

	return nil, errors.New("missing plan payload")
}

// Import handles POST /frepple/xml. The planning tool pushes plan
// results back after a scheduling run. On top of basic auth the posted
// webtoken has to verify against the company's key and name the same
// user, proving the payload originated from the planning tool.
func (r *Router) Import(c *fiber.Ctx) error {
	database := c.FormValue("database")

	user, db, err := r.authenticate(c, database)
	if err != nil {
		return r.basicAuthRequired(c, database, err)
	}

	companyName := c.FormValue("company")
	company, err := model.FetchCompany(db, companyName)
	if err == model.ErrNotFound {
		log.WithFields(log.Fields{
			"database": database,
			"user":     user,
			"company":  companyName,
			"ip":       c.IP(),
		}).Warn("Import with unknown company name")

		return c.Status(fiber.StatusUnauthorized).SendString(MsgInvalidCompany)
	} else if err != nil {
		return err
	}

	claims, err := ParseWebToken(c.FormValue("webtoken"), company.WebtokenKey)
	if err != nil || claims.User != user {
		log.WithFields(log.Fields{
			"database": database,
			"user":     user,
			"company":  company.Name,
			"ip":       c.IP(),
			"err":      err,
		}).Warn("Import with invalid webtoken")

		return c.Status(fiber.StatusUnauthorized).SendString(MsgInvalidWebToken)
	}

	req := &ExchangeRequest{
		Database: database,
		DB:       db,
		Company:  company.Name,
		User:     user,
		Mode:     parseMode(c.FormValue("mode")),
		Language: c.FormValue("language"),
	}

	payload, err := importPayload(c)
	if err == nil {
		defer payload.Close()
	}

	var result string
	if err == nil {
		result, err = r.NewImporter(req).Run(c.UserContext(), payload)
	}

	if err != nil {
		r.metrics.totalFailedImports.Inc()

		log.WithFields(log.Fields{
			"database": database,
			"user":     user,
			"company":  company.Name,
			"mode":     req.Mode,
			"ip":       c.IP(),
			"err":      err,
		}).Error("Error processing posted planning data")

		return c.Status(fiber.StatusInternalServerError).SendString(MsgImportFailed)
	}

	r.metrics.totalImports.Inc()

	log.WithFields(log.Fields{
		"database": database,
		"user":     user,
		"company":  company.Name,
		"mode":     req.Mode,
		"size":     humanize.Bytes(uint64(len(c.Body()))),
		"client":   clientName(c),
		"ip":       c.IP(),
	}).Info("Import complete")

	setNoCache(c)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)

	return c.SendString(result)
}
