// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/diagram-service/internal/db"
	"github.com/canonical/diagram-service/internal/logging"
	"github.com/canonical/diagram-service/internal/monitoring"
	"github.com/canonical/diagram-service/internal/tracing"
	"github.com/canonical/diagram-service/pkg/authentication"
	"github.com/canonical/diagram-service/pkg/collaboration"
	"github.com/canonical/diagram-service/pkg/diagram"
	"github.com/canonical/diagram-service/pkg/metrics"
	"github.com/canonical/diagram-service/pkg/status"
)

func NewRouter(
	diagramAPI *diagram.API,
	collaborationAPI *collaboration.API,
	authMiddleware *authentication.Middleware,
	dbClient db.DBClientInterface,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Every API route requires a caller; mutations additionally run inside
	// a request-scoped transaction.
	apiMux := chi.NewMux()
	apiMux.Use(
		authMiddleware.Authenticate(),
		db.TransactionMiddleware(dbClient, logger),
	)
	diagramAPI.RegisterEndpoints(apiMux)
	collaborationAPI.RegisterEndpoints(apiMux)

	router.Mount("/", apiMux)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
