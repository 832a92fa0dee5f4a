// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package server

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func NotFoundHandler(c *fiber.Ctx) error {
	log.WithFields(log.Fields{
		"path": c.Path(),
		"ip":   c.IP(),
	}).Info("Requested path not found")

	return c.Status(fiber.StatusNotFound).SendString("")
}

// HTTPErrorHandler logs the full error server-side. The client only
// ever sees the framework status text, never internal detail.
func HTTPErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := ""

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	log.WithFields(log.Fields{
		"code": code,
		"path": c.Path(),
		"ip":   c.IP(),
	}).Error(err)

	if code >= fiber.StatusInternalServerError {
		message = "Internal server error: check the server log file for more details"
	}

	return c.Status(code).SendString(message)
}

func LimitReachedHandler(c *fiber.Ctx) error {
	log.WithFields(log.Fields{
		"ip": c.IP(),
	}).Warn("Limit reached")

	return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests")
}
