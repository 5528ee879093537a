// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package collaboration

import (
	"context"

	"github.com/canonical/diagram-service/internal/types"
)

// RegistryInterface is the permission registry: the single authority for who
// holds which level on a diagram. The owner's admin level is derived, never
// stored.
type RegistryInterface interface {
	// LevelOf resolves the effective permission of userID on the diagram.
	// The empty level means no access. Fails ErrNotFound if the diagram
	// does not exist.
	LevelOf(ctx context.Context, diagramID, userID string) (types.PermissionLevel, error)
	// List returns current collaborators in insertion order. The caller must
	// be able to see the diagram, otherwise ErrNotFound.
	List(ctx context.Context, diagramID string, acting *types.Principal) ([]*types.Collaborator, error)
	// Grant creates or overwrites the entry for (diagram, user). Idempotent
	// for the same level. Callers are responsible for authorization.
	Grant(ctx context.Context, diagramID, userID, email string, level types.PermissionLevel) (*types.Collaborator, error)
	// Revoke removes a collaborator. Requires acting to hold admin; the
	// owner's implicit entry cannot be revoked.
	Revoke(ctx context.Context, diagramID, userID string, acting *types.Principal) error
	// SetLevel changes a collaborator's level. Requires acting to hold admin.
	SetLevel(ctx context.Context, diagramID, userID string, level types.PermissionLevel, acting *types.Principal) (*types.Collaborator, error)
}

// WorkflowInterface is the invitation workflow: pending offers by email,
// convertible into registry entries on acceptance.
type WorkflowInterface interface {
	Invite(ctx context.Context, diagramID, invitedEmail string, level types.PermissionLevel, acting *types.Principal) (*types.Invitation, error)
	Accept(ctx context.Context, invitationID string, acting *types.Principal) (*types.Invitation, error)
	Reject(ctx context.Context, invitationID string, acting *types.Principal) (*types.Invitation, error)
	// ListPendingFor returns the pending invitations addressed to an email,
	// across all diagrams.
	ListPendingFor(ctx context.Context, email string) ([]*types.Invitation, error)
	// ListForDiagram returns all invitations for a diagram, any status,
	// ordered by creation time. Requires acting to hold admin.
	ListForDiagram(ctx context.Context, diagramID string, acting *types.Principal) ([]*types.Invitation, error)
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	GetDiagramByID(ctx context.Context, id string) (*types.Diagram, error)

	UpsertCollaborator(ctx context.Context, c *types.Collaborator) (*types.Collaborator, error)
	GetCollaborator(ctx context.Context, diagramID, userID string) (*types.Collaborator, error)
	GetCollaboratorByEmail(ctx context.Context, diagramID, email string) (*types.Collaborator, error)
	ListCollaboratorsByDiagramID(ctx context.Context, diagramID string) ([]*types.Collaborator, error)
	UpdateCollaboratorLevel(ctx context.Context, diagramID, userID string, level types.PermissionLevel) error
	DeleteCollaborator(ctx context.Context, diagramID, userID string) error

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	ListInvitationsByDiagramID(ctx context.Context, diagramID string) ([]*types.Invitation, error)
	TransitionInvitation(ctx context.Context, id string, from, to types.InvitationStatus) (bool, error)
	RejectPendingInvitations(ctx context.Context, diagramID, email string) error
}

// MailerInterface delivers invitation notifications, best effort.
type MailerInterface interface {
	SendInvitation(ctx context.Context, toEmail, diagramName, inviterEmail, invitationID string) error
}
