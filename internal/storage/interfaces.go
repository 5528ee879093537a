// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/diagram-service/internal/types"
)

type StorageInterface interface {
	CreateDiagram(ctx context.Context, d *types.Diagram) (*types.Diagram, error)
	GetDiagramByID(ctx context.Context, id string) (*types.Diagram, error)
	ListDiagramsByUserID(ctx context.Context, userID string) ([]*types.Diagram, error)
	DeleteDiagram(ctx context.Context, id string) error

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
