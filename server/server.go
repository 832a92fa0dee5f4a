// Copyright 2024 planx Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/planxhq/planx/model"
)

func init() {
	viper.SetDefault("listen", "0.0.0.0:8002")
	viper.SetDefault("rate_limit", false)
	viper.SetDefault("storage", "memory")
	viper.SetDefault("redis", "redis://localhost:6379")
	viper.SetDefault("storage_db", "/var/planx/storage.db")
	viper.SetDefault("max_requests", 15)
	viper.SetDefault("rate_limit_expire", 3600)
	// Export/import runs block the request for as long as the
	// collaborator takes, so both timeouts are generous.
	viper.SetDefault("read_timeout", 600)
	viper.SetDefault("write_timeout", 600)
}

type Server struct {
	ListenAddress string
	KeyFile       string
	CertFile      string

	app      *fiber.App
	router   *Router
	registry *model.Registry
}

func NewServer(address string, registry *model.Registry) (*Server, error) {
	s := &Server{
		ListenAddress: address,
		registry:      registry,
	}

	router, err := NewRouter(registry)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          HTTPErrorHandler,
		ReadTimeout:           time.Duration(viper.GetInt("read_timeout")) * time.Second,
		WriteTimeout:          time.Duration(viper.GetInt("write_timeout")) * time.Second,
		IdleTimeout:           120 * time.Second,
	})

	router.SetupRoutes(app)
	app.Use(NotFoundHandler)

	s.app = app
	s.router = router

	return s, nil
}

func (s *Server) Serve() error {
	if s.CertFile != "" && s.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(s.CertFile, s.KeyFile)
		if err != nil {
			return err
		}

		cfg := &tls.Config{
			MinVersion: tls.VersionTLS12,
			CurvePreferences: []tls.CurveID{
				tls.CurveP256,
				tls.X25519,
			},
			CipherSuites: []uint16{
				tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
				tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
				tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
				tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			},
			Certificates: []tls.Certificate{cert},
		}

		ln, err := tls.Listen("tcp", s.ListenAddress, cfg)
		if err != nil {
			return err
		}

		log.Printf("Listening on https://%s", s.ListenAddress)
		return s.app.Listener(ln)
	}

	ln, err := net.Listen("tcp", s.ListenAddress)
	if err != nil {
		return err
	}

	log.Warn("**WARNING*** SSL/TLS not enabled. HTTP communication will not be encrypted and vulnerable to snooping.")
	log.Printf("Listening on http://%s", s.ListenAddress)
	return s.app.Listener(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
