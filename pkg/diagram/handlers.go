// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package diagram

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/diagram-service/internal/logging"
	"github.com/canonical/diagram-service/internal/monitoring"
	"github.com/canonical/diagram-service/internal/tracing"
	"github.com/canonical/diagram-service/internal/types"
	"github.com/canonical/diagram-service/pkg/authentication"
)

type CreateDiagramRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

type API struct {
	service ServiceInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/diagrams", a.createDiagram)
	mux.Get("/diagrams", a.listDiagrams)
	mux.Get("/diagrams/{id}", a.getDiagram)
	mux.Delete("/diagrams/{id}", a.deleteDiagram)
}

func (a *API) createDiagram(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "diagram.API.createDiagram")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateDiagramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	d, err := a.service.CreateDiagram(ctx, req.Name, req.Description, req.IsPublic, principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, d)
}

func (a *API) listDiagrams(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "diagram.API.listDiagrams")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	diagrams, err := a.service.ListMyDiagrams(ctx, principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	if diagrams == nil {
		diagrams = []*types.Diagram{}
	}
	a.writeJSON(w, http.StatusOK, diagrams)
}

func (a *API) getDiagram(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "diagram.API.getDiagram")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	d, err := a.service.GetDiagram(ctx, chi.URLParam(r, "id"), principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, d)
}

func (a *API) deleteDiagram(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "diagram.API.deleteDiagram")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := a.service.DeleteDiagram(ctx, chi.URLParam(r, "id"), principal); err != nil {
		a.domainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		a.writeError(w, http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrForbidden):
		a.writeError(w, http.StatusForbidden, ErrForbidden.Error())
	default:
		a.logger.Errorf("internal error: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, map[string]string{"error": message})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
