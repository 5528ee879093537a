// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package diagram

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

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateDiagram(ctx context.Context, name, description string, isPublic bool, acting *types.Principal) (*types.Diagram, error) {
	ctx, span := s.tracer.Start(ctx, "diagram.Service.CreateDiagram")
	defer span.End()

	d, err := s.storage.CreateDiagram(ctx, &types.Diagram{
		Name:        name,
		Description: description,
		IsPublic:    isPublic,
		OwnerID:     acting.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create diagram: %w", err)
	}

	s.logger.Infof("user %s created diagram %s", acting.ID, d.ID)
	return d, nil
}

func (s *Service) GetDiagram(ctx context.Context, id string, acting *types.Principal) (*types.Diagram, error) {
	ctx, span := s.tracer.Start(ctx, "diagram.Service.GetDiagram")
	defer span.End()

	d, err := s.storage.GetDiagramByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get diagram: %w", err)
	}

	if d.IsPublic {
		return d, nil
	}

	level, err := s.authz.LevelOf(ctx, id, acting.ID)
	if err != nil {
		return nil, err
	}
	if level == "" {
		return nil, ErrForbidden
	}

	return d, nil
}

func (s *Service) ListMyDiagrams(ctx context.Context, acting *types.Principal) ([]*types.Diagram, error) {
	ctx, span := s.tracer.Start(ctx, "diagram.Service.ListMyDiagrams")
	defer span.End()

	diagrams, err := s.storage.ListDiagramsByUserID(ctx, acting.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list diagrams: %w", err)
	}

	return diagrams, nil
}

// DeleteDiagram removes the diagram and, through the schema's cascade, every
// collaborator entry and invitation hanging off it.
func (s *Service) DeleteDiagram(ctx context.Context, id string, acting *types.Principal) error {
	ctx, span := s.tracer.Start(ctx, "diagram.Service.DeleteDiagram")
	defer span.End()

	d, err := s.storage.GetDiagramByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get diagram: %w", err)
	}

	if d.OwnerID != acting.ID {
		s.logger.Security().AuthzFailure(acting.ID, "diagram_delete")
		return ErrForbidden
	}

	if err := s.storage.DeleteDiagram(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete diagram: %w", err)
	}

	s.logger.Infof("user %s deleted diagram %s", acting.ID, id)
	return nil
}
