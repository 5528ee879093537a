// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/diagram-service/internal/config"
	"github.com/canonical/diagram-service/internal/db"
	"github.com/canonical/diagram-service/internal/logging"
	"github.com/canonical/diagram-service/internal/mail"
	"github.com/canonical/diagram-service/internal/monitoring/prometheus"
	"github.com/canonical/diagram-service/internal/storage"
	"github.com/canonical/diagram-service/internal/tracing"
	"github.com/canonical/diagram-service/pkg/authentication"
	"github.com/canonical/diagram-service/pkg/collaboration"
	"github.com/canonical/diagram-service/pkg/diagram"
	"github.com/canonical/diagram-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("diagram-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Warn("Authentication is disabled, tokens are trusted as <user-id>:<email>")
	}
	authMiddleware := authentication.NewMiddleware(verifier, tracer, monitor, logger)

	var mailer collaboration.MailerInterface
	if specs.MailEnabled {
		mailer = mail.NewMailer(mail.Config{
			Host:        specs.SMTPHost,
			Port:        specs.SMTPPort,
			Username:    specs.SMTPUsername,
			Password:    specs.SMTPPassword,
			From:        specs.MailFrom,
			FrontendURL: specs.FrontendURL,
		}, tracer, monitor, logger)
		logger.Info("Invitation email delivery is enabled")
	} else {
		mailer = mail.NewNoopMailer()
		logger.Info("Invitation email delivery is disabled")
	}

	registry := collaboration.NewRegistry(s, tracer, monitor, logger)
	workflow := collaboration.NewService(s, registry, mailer, tracer, monitor, logger)
	diagramService := diagram.NewService(s, registry, tracer, monitor, logger)

	diagramAPI := diagram.NewAPI(diagramService, tracer, monitor, logger)
	collaborationAPI := collaboration.NewAPI(registry, workflow, tracer, monitor, logger)

	router := web.NewRouter(
		diagramAPI,
		collaborationAPI,
		authMiddleware,
		dbClient,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
