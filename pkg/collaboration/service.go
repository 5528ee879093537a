// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package collaboration

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/diagram-service/internal/logging"
	"github.com/canonical/diagram-service/internal/monitoring"
	"github.com/canonical/diagram-service/internal/storage"
	"github.com/canonical/diagram-service/internal/tracing"
	"github.com/canonical/diagram-service/internal/types"
)

var _ WorkflowInterface = (*Service)(nil)

// Service runs the invitation workflow. Permission decisions are delegated
// to the registry; acceptance converts an invitation into a registry entry.
type Service struct {
	storage  StorageInterface
	registry RegistryInterface
	mailer   MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	registry RegistryInterface,
	mailer MailerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		registry: registry,
		mailer:   mailer,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) Invite(ctx context.Context, diagramID, invitedEmail string, level types.PermissionLevel, acting *types.Principal) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "collaboration.Service.Invite")
	defer span.End()

	diagram, err := s.storage.GetDiagramByID(ctx, diagramID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve diagram: %w", err)
	}

	actingLevel, err := s.registry.LevelOf(ctx, diagramID, acting.ID)
	if err != nil {
		return nil, err
	}
	if !actingLevel.AtLeast(types.PermissionAdmin) {
		s.logger.Security().AuthzFailure(acting.ID, "invite")
		return nil, ErrForbidden
	}

	if _, err := s.storage.GetCollaboratorByEmail(ctx, diagramID, invitedEmail); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing collaborator: %w", err)
	}

	// A fresh invite supersedes any pending one for the same address: the
	// old invitation is closed out as rejected so at most one stays pending.
	if err := s.storage.RejectPendingInvitations(ctx, diagramID, invitedEmail); err != nil {
		return nil, err
	}

	invitation, err := s.storage.CreateInvitation(ctx, &types.Invitation{
		DiagramID:    diagramID,
		InviterID:    acting.ID,
		InvitedEmail: invitedEmail,
		Level:        level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	if err := s.mailer.SendInvitation(ctx, invitedEmail, diagram.Name, acting.Email, invitation.ID); err != nil {
		// Delivery is best effort; the invitation stands either way.
		s.logger.Errorf("failed to send invitation email to %s: %v", invitedEmail, err)
	}

	return invitation, nil
}

func (s *Service) Accept(ctx context.Context, invitationID string, acting *types.Principal) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "collaboration.Service.Accept")
	defer span.End()

	invitation, err := s.transition(ctx, invitationID, acting, types.InvitationAccepted)
	if err != nil {
		return nil, err
	}

	// Both the status flip and the grant ride the request transaction, so a
	// failure here rolls the acceptance back.
	if _, err := s.registry.Grant(ctx, invitation.DiagramID, acting.ID, acting.Email, invitation.Level); err != nil {
		return nil, fmt.Errorf("failed to grant accepted permission: %w", err)
	}

	s.logger.Infof("user %s accepted invitation %s on diagram %s", acting.ID, invitation.ID, invitation.DiagramID)
	return invitation, nil
}

func (s *Service) Reject(ctx context.Context, invitationID string, acting *types.Principal) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "collaboration.Service.Reject")
	defer span.End()

	return s.transition(ctx, invitationID, acting, types.InvitationRejected)
}

// transition applies the shared accept/reject guards and moves the
// invitation out of pending.
func (s *Service) transition(ctx context.Context, invitationID string, acting *types.Principal, to types.InvitationStatus) (*types.Invitation, error) {
	invitation, err := s.storage.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	if invitation.InvitedEmail != acting.Email {
		s.logger.Security().AuthzFailure(acting.ID, "invitation_respond")
		return nil, ErrForbidden
	}

	if invitation.Status != types.InvitationPending {
		return nil, ErrInvalidState
	}

	// Guarded update: if a concurrent call already moved the invitation out
	// of pending, this observes zero rows and loses.
	moved, err := s.storage.TransitionInvitation(ctx, invitationID, types.InvitationPending, to)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrInvalidState
	}

	invitation.Status = to
	return invitation, nil
}

func (s *Service) ListPendingFor(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "collaboration.Service.ListPendingFor")
	defer span.End()

	invitations, err := s.storage.ListPendingInvitationsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return invitations, nil
}

func (s *Service) ListForDiagram(ctx context.Context, diagramID string, acting *types.Principal) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "collaboration.Service.ListForDiagram")
	defer span.End()

	actingLevel, err := s.registry.LevelOf(ctx, diagramID, acting.ID)
	if err != nil {
		return nil, err
	}
	if !actingLevel.AtLeast(types.PermissionAdmin) {
		s.logger.Security().AuthzFailure(acting.ID, "invitation_audit")
		return nil, ErrForbidden
	}

	invitations, err := s.storage.ListInvitationsByDiagramID(ctx, diagramID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return invitations, nil
}
