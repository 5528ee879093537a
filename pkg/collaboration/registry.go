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

var _ RegistryInterface = (*Registry)(nil)

type Registry struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewRegistry(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Registry {
	return &Registry{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (r *Registry) LevelOf(ctx context.Context, diagramID, userID string) (types.PermissionLevel, error) {
	ctx, span := r.tracer.Start(ctx, "collaboration.Registry.LevelOf")
	defer span.End()

	diagram, err := r.storage.GetDiagramByID(ctx, diagramID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to resolve diagram: %w", err)
	}

	// The owner holds admin by construction, not by a stored entry.
	if diagram.OwnerID == userID {
		return types.PermissionAdmin, nil
	}

	c, err := r.storage.GetCollaborator(ctx, diagramID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve collaborator: %w", err)
	}

	return c.Level, nil
}

func (r *Registry) List(ctx context.Context, diagramID string, acting *types.Principal) ([]*types.Collaborator, error) {
	ctx, span := r.tracer.Start(ctx, "collaboration.Registry.List")
	defer span.End()

	if err := r.requireAccess(ctx, diagramID, acting); err != nil {
		return nil, err
	}

	collaborators, err := r.storage.ListCollaboratorsByDiagramID(ctx, diagramID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	return collaborators, nil
}

func (r *Registry) Grant(ctx context.Context, diagramID, userID, email string, level types.PermissionLevel) (*types.Collaborator, error) {
	ctx, span := r.tracer.Start(ctx, "collaboration.Registry.Grant")
	defer span.End()

	diagram, err := r.storage.GetDiagramByID(ctx, diagramID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve diagram: %w", err)
	}

	// The owner never gets a stored entry; it would shadow the derived one.
	if diagram.OwnerID == userID {
		return nil, ErrForbidden
	}

	c, err := r.storage.UpsertCollaborator(ctx, &types.Collaborator{
		DiagramID: diagramID,
		UserID:    userID,
		Email:     email,
		Level:     level,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to grant permission: %w", err)
	}

	return c, nil
}

func (r *Registry) Revoke(ctx context.Context, diagramID, userID string, acting *types.Principal) error {
	ctx, span := r.tracer.Start(ctx, "collaboration.Registry.Revoke")
	defer span.End()

	diagram, err := r.requireAdmin(ctx, diagramID, acting, "collaborator_remove")
	if err != nil {
		return err
	}

	if diagram.OwnerID == userID {
		r.logger.Security().AuthzFailure(acting.ID, "owner_remove")
		return ErrForbidden
	}

	// Admins cannot remove their own entry; demotion and removal of an
	// admin is another admin's (or the owner's) call.
	if acting.ID == userID {
		return ErrForbidden
	}

	if err := r.storage.DeleteCollaborator(ctx, diagramID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to revoke permission: %w", err)
	}

	return nil
}

func (r *Registry) SetLevel(ctx context.Context, diagramID, userID string, level types.PermissionLevel, acting *types.Principal) (*types.Collaborator, error) {
	ctx, span := r.tracer.Start(ctx, "collaboration.Registry.SetLevel")
	defer span.End()

	diagram, err := r.requireAdmin(ctx, diagramID, acting, "collaborator_update")
	if err != nil {
		return nil, err
	}

	if diagram.OwnerID == userID {
		r.logger.Security().AuthzFailure(acting.ID, "owner_update")
		return nil, ErrForbidden
	}

	if acting.ID == userID {
		return nil, ErrForbidden
	}

	if err := r.storage.UpdateCollaboratorLevel(ctx, diagramID, userID, level); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update permission: %w", err)
	}

	c, err := r.storage.GetCollaborator(ctx, diagramID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated collaborator: %w", err)
	}

	return c, nil
}

// requireAdmin resolves the diagram and checks that acting holds admin on it.
func (r *Registry) requireAdmin(ctx context.Context, diagramID string, acting *types.Principal, permission string) (*types.Diagram, error) {
	diagram, err := r.storage.GetDiagramByID(ctx, diagramID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve diagram: %w", err)
	}

	level, err := r.levelOf(ctx, diagram, acting.ID)
	if err != nil {
		return nil, err
	}

	if !level.AtLeast(types.PermissionAdmin) {
		r.logger.Security().AuthzFailure(acting.ID, permission)
		return nil, ErrForbidden
	}

	return diagram, nil
}

// requireAccess hides diagrams the caller cannot see: a diagram that is not
// public and grants no level behaves as if it did not exist.
func (r *Registry) requireAccess(ctx context.Context, diagramID string, acting *types.Principal) error {
	diagram, err := r.storage.GetDiagramByID(ctx, diagramID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to resolve diagram: %w", err)
	}

	if diagram.IsPublic {
		return nil
	}

	level, err := r.levelOf(ctx, diagram, acting.ID)
	if err != nil {
		return err
	}
	if level == "" {
		return ErrNotFound
	}

	return nil
}

// levelOf is LevelOf for a diagram already in hand.
func (r *Registry) levelOf(ctx context.Context, diagram *types.Diagram, userID string) (types.PermissionLevel, error) {
	if diagram.OwnerID == userID {
		return types.PermissionAdmin, nil
	}

	c, err := r.storage.GetCollaborator(ctx, diagram.ID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve collaborator: %w", err)
	}

	return c.Level, nil
}
