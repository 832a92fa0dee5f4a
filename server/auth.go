// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/base64"
	"errors"
	"strings"

	valid "github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/planxhq/planx/model"
)

func parseBasicAuth(header string) (string, string, error) {
	if header == "" {
		return "", "", errors.New("no authentication header")
	}

	method, creds, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(method, "Basic") {
		return "", "", errors.New("unknown authentication method")
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(creds))
	if err != nil {
		return "", "", errors.New("malformed basic auth credentials")
	}

	username, password, found := strings.Cut(string(raw), ":")
	if !found {
		return "", "", errors.New("malformed basic auth credentials")
	}

	return username, password, nil
}

// authenticate resolves the tenant database and checks the HTTP basic
// credentials against it. Returns the authenticated username and the
// tenant handle.
func (r *Router) authenticate(c *fiber.Ctx, database string) (string, *model.DB, error) {
	if database == "" || !valid.Matches(database, DatabaseNameRegex) {
		return "", nil, errors.New("missing or invalid database argument")
	}

	username, password, err := parseBasicAuth(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return "", nil, err
	}

	if username == "" || password == "" {
		return "", nil, errors.New("missing user or password")
	}

	db, err := r.registry.Get(database)
	if err != nil {
		return "", nil, err
	}

	if err := model.AuthenticateUser(db, username, password); err != nil {
		return "", nil, err
	}

	return username, db, nil
}

// basicAuthRequired rejects the request with a basic-auth challenge.
// The reason is logged, never returned to the client.
func (r *Router) basicAuthRequired(c *fiber.Ctx, database string, err error) error {
	r.metrics.totalFailedLogins.Inc()

	log.WithFields(log.Fields{
		"database": database,
		"path":     c.Path(),
		"ip":       c.IP(),
		"err":      err,
	}).Warn("Failed login attempt")

	c.Set(fiber.HeaderWWWAuthenticate, BasicAuthRealm)

	return c.Status(fiber.StatusUnauthorized).SendString(MsgLoginRequired)
}
