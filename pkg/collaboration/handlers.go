// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package collaboration

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

type InviteRequest struct {
	InvitedEmail    string `json:"invited_email" validate:"required,email"`
	PermissionLevel string `json:"permission_level" validate:"required,oneof=view edit admin"`
}

type UpdatePermissionRequest struct {
	NewPermission string `json:"new_permission" validate:"required,oneof=view edit admin"`
}

type API struct {
	registry RegistryInterface
	workflow WorkflowInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewAPI(
	registry RegistryInterface,
	workflow WorkflowInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		registry: registry,
		workflow: workflow,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/diagrams/{id}/collaborators", a.listCollaborators)
	mux.Post("/diagrams/{id}/invite", a.invite)
	mux.Delete("/diagrams/{id}/collaborators/{collabId}", a.removeCollaborator)
	mux.Put("/diagrams/{id}/collaborators/{collabId}/permission", a.updatePermission)
	mux.Get("/diagrams/{id}/invitations", a.listDiagramInvitations)
	mux.Get("/invitations", a.listMyInvitations)
	mux.Post("/invitations/{id}/accept", a.acceptInvitation)
	mux.Post("/invitations/{id}/reject", a.rejectInvitation)
}

func (a *API) listCollaborators(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "collaboration.API.listCollaborators")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	collaborators, err := a.registry.List(ctx, chi.URLParam(r, "id"), principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	if collaborators == nil {
		collaborators = []*types.Collaborator{}
	}
	a.writeJSON(w, http.StatusOK, collaborators)
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "collaboration.API.invite")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invited_email must be a valid email and permission_level one of view, edit, admin")
		return
	}

	level, err := types.ParsePermissionLevel(req.PermissionLevel)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	invitation, err := a.workflow.Invite(ctx, chi.URLParam(r, "id"), req.InvitedEmail, level, principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, invitation)
}

func (a *API) removeCollaborator(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "collaboration.API.removeCollaborator")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	err := a.registry.Revoke(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "collabId"), principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) updatePermission(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "collaboration.API.updatePermission")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req UpdatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "new_permission must be one of view, edit, admin")
		return
	}

	level, err := types.ParsePermissionLevel(req.NewPermission)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	collaborator, err := a.registry.SetLevel(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "collabId"), level, principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, collaborator)
}

func (a *API) listDiagramInvitations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "collaboration.API.listDiagramInvitations")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	invitations, err := a.workflow.ListForDiagram(ctx, chi.URLParam(r, "id"), principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	if invitations == nil {
		invitations = []*types.Invitation{}
	}
	a.writeJSON(w, http.StatusOK, invitations)
}

func (a *API) listMyInvitations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "collaboration.API.listMyInvitations")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	invitations, err := a.workflow.ListPendingFor(ctx, principal.Email)
	if err != nil {
		a.domainError(w, err)
		return
	}

	if invitations == nil {
		invitations = []*types.Invitation{}
	}
	a.writeJSON(w, http.StatusOK, invitations)
}

func (a *API) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "collaboration.API.acceptInvitation")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	invitation, err := a.workflow.Accept(ctx, chi.URLParam(r, "id"), principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, invitation)
}

func (a *API) rejectInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "collaboration.API.rejectInvitation")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	invitation, err := a.workflow.Reject(ctx, chi.URLParam(r, "id"), principal)
	if err != nil {
		a.domainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, invitation)
}

// domainError maps domain error kinds to response codes. Anything unknown is
// an internal error and is never echoed to the client.
func (a *API) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		a.writeError(w, http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrForbidden):
		a.writeError(w, http.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrConflict):
		a.writeError(w, http.StatusConflict, ErrConflict.Error())
	case errors.Is(err, ErrInvalidState):
		a.writeError(w, http.StatusConflict, ErrInvalidState.Error())
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
