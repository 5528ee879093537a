// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/diagram-service/internal/db"
	"github.com/canonical/diagram-service/internal/logging"
	"github.com/canonical/diagram-service/internal/monitoring"
	"github.com/canonical/diagram-service/internal/tracing"
	"github.com/canonical/diagram-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateDiagram(ctx context.Context, d *types.Diagram) (*types.Diagram, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDiagram")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate diagram ID: %w", err)
	}

	var created types.Diagram
	err = s.db.Statement(ctx).
		Insert("diagrams").
		Columns("id", "name", "description", "is_public", "owner_id").
		Values(id.String(), d.Name, d.Description, d.IsPublic, d.OwnerID).
		Suffix("RETURNING id, name, description, is_public, owner_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Description, &created.IsPublic, &created.OwnerID, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert diagram: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetDiagramByID(ctx context.Context, id string) (*types.Diagram, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDiagramByID")
	defer span.End()

	var d types.Diagram
	err := s.db.Statement(ctx).
		Select("id", "name", "description", "is_public", "owner_id", "created_at").
		From("diagrams").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&d.ID, &d.Name, &d.Description, &d.IsPublic, &d.OwnerID, &d.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get diagram: %w", err)
	}

	return &d, nil
}

// ListDiagramsByUserID returns diagrams the user owns or collaborates on.
func (s *Storage) ListDiagramsByUserID(ctx context.Context, userID string) ([]*types.Diagram, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDiagramsByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("d.id", "d.name", "d.description", "d.is_public", "d.owner_id", "d.created_at").
		From("diagrams d").
		LeftJoin("collaborators c ON d.id = c.diagram_id AND c.user_id = ?", userID).
		Where(sq.Or{
			sq.Eq{"d.owner_id": userID},
			sq.NotEq{"c.user_id": nil},
		}).
		OrderBy("d.created_at ASC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list diagrams: %w", err)
	}
	defer rows.Close()

	var diagrams []*types.Diagram
	for rows.Next() {
		var d types.Diagram
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.IsPublic, &d.OwnerID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan diagram: %w", err)
		}
		diagrams = append(diagrams, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return diagrams, nil
}

// DeleteDiagram removes the diagram row; collaborators and invitations go
// with it via ON DELETE CASCADE.
func (s *Storage) DeleteDiagram(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDiagram")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("diagrams").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete diagram: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// UpsertCollaborator creates the entry for (diagram, user) or overwrites its
// permission level if one exists.
func (s *Storage) UpsertCollaborator(ctx context.Context, c *types.Collaborator) (*types.Collaborator, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertCollaborator")
	defer span.End()

	var saved types.Collaborator
	err := s.db.Statement(ctx).
		Insert("collaborators").
		Columns("diagram_id", "user_id", "email", "permission_level").
		Values(c.DiagramID, c.UserID, c.Email, c.Level).
		Suffix("ON CONFLICT (diagram_id, user_id) DO UPDATE SET permission_level = EXCLUDED.permission_level").
		Suffix("RETURNING diagram_id, user_id, email, permission_level, created_at").
		QueryRowContext(ctx).
		Scan(&saved.DiagramID, &saved.UserID, &saved.Email, &saved.Level, &saved.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to upsert collaborator: %w", err)
	}

	return &saved, nil
}

func (s *Storage) GetCollaborator(ctx context.Context, diagramID, userID string) (*types.Collaborator, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCollaborator")
	defer span.End()

	return s.getCollaborator(ctx, sq.Eq{"diagram_id": diagramID, "user_id": userID})
}

func (s *Storage) GetCollaboratorByEmail(ctx context.Context, diagramID, email string) (*types.Collaborator, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCollaboratorByEmail")
	defer span.End()

	return s.getCollaborator(ctx, sq.Eq{"diagram_id": diagramID, "email": email})
}

func (s *Storage) getCollaborator(ctx context.Context, pred sq.Eq) (*types.Collaborator, error) {
	var c types.Collaborator
	err := s.db.Statement(ctx).
		Select("diagram_id", "user_id", "email", "permission_level", "created_at").
		From("collaborators").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&c.DiagramID, &c.UserID, &c.Email, &c.Level, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get collaborator: %w", err)
	}

	return &c, nil
}

func (s *Storage) ListCollaboratorsByDiagramID(ctx context.Context, diagramID string) ([]*types.Collaborator, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCollaboratorsByDiagramID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("diagram_id", "user_id", "email", "permission_level", "created_at").
		From("collaborators").
		Where(sq.Eq{"diagram_id": diagramID}).
		OrderBy("created_at ASC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	defer rows.Close()

	var collaborators []*types.Collaborator
	for rows.Next() {
		var c types.Collaborator
		if err := rows.Scan(&c.DiagramID, &c.UserID, &c.Email, &c.Level, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collaborator: %w", err)
		}
		collaborators = append(collaborators, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return collaborators, nil
}

func (s *Storage) UpdateCollaboratorLevel(ctx context.Context, diagramID, userID string, level types.PermissionLevel) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCollaboratorLevel")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("collaborators").
		Set("permission_level", level).
		Where(sq.Eq{
			"diagram_id": diagramID,
			"user_id":    userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update collaborator: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteCollaborator(ctx context.Context, diagramID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCollaborator")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("collaborators").
		Where(sq.Eq{
			"diagram_id": diagramID,
			"user_id":    userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete collaborator: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var created types.Invitation
	err = s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "diagram_id", "inviter_id", "invited_email", "permission_level", "status").
		Values(id.String(), inv.DiagramID, inv.InviterID, inv.InvitedEmail, inv.Level, types.InvitationPending).
		Suffix("RETURNING id, diagram_id, inviter_id, invited_email, permission_level, status, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.DiagramID, &created.InviterID, &created.InvitedEmail, &created.Level, &created.Status, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select("id", "diagram_id", "inviter_id", "invited_email", "permission_level", "status", "created_at").
		From("invitations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.DiagramID, &inv.InviterID, &inv.InvitedEmail, &inv.Level, &inv.Status, &inv.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &inv, nil
}

func (s *Storage) ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsByEmail")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"invited_email": email, "status": types.InvitationPending})
}

func (s *Storage) ListInvitationsByDiagramID(ctx context.Context, diagramID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByDiagramID")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"diagram_id": diagramID})
}

func (s *Storage) listInvitations(ctx context.Context, pred sq.Eq) ([]*types.Invitation, error) {
	query := s.db.Statement(ctx).
		Select("id", "diagram_id", "inviter_id", "invited_email", "permission_level", "status", "created_at").
		From("invitations").
		Where(pred).
		OrderBy("created_at ASC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		var inv types.Invitation
		if err := rows.Scan(&inv.ID, &inv.DiagramID, &inv.InviterID, &inv.InvitedEmail, &inv.Level, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// TransitionInvitation moves an invitation from one status to another. The
// update is guarded on the expected current status, so of two concurrent
// transitions only one observes a row to update; the loser gets false.
func (s *Storage) TransitionInvitation(ctx context.Context, id string, from, to types.InvitationStatus) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", to).
		Where(sq.Eq{
			"id":     id,
			"status": from,
		}).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to transition invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

// RejectPendingInvitations marks any pending invitation for (diagram, email)
// rejected. Zero affected rows is fine; this backs the supersede rule.
func (s *Storage) RejectPendingInvitations(ctx context.Context, diagramID, email string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RejectPendingInvitations")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", types.InvitationRejected).
		Where(sq.Eq{
			"diagram_id":    diagramID,
			"invited_email": email,
			"status":        types.InvitationPending,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to reject pending invitations: %w", err)
	}

	return nil
}
