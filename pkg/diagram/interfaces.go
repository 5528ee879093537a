// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package diagram

import (
	"context"

	"github.com/canonical/diagram-service/internal/types"
)

type ServiceInterface interface {
	CreateDiagram(ctx context.Context, name, description string, isPublic bool, acting *types.Principal) (*types.Diagram, error)
	GetDiagram(ctx context.Context, id string, acting *types.Principal) (*types.Diagram, error)
	ListMyDiagrams(ctx context.Context, acting *types.Principal) ([]*types.Diagram, error)
	DeleteDiagram(ctx context.Context, id string, acting *types.Principal) error
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateDiagram(ctx context.Context, d *types.Diagram) (*types.Diagram, error)
	GetDiagramByID(ctx context.Context, id string) (*types.Diagram, error)
	ListDiagramsByUserID(ctx context.Context, userID string) ([]*types.Diagram, error)
	DeleteDiagram(ctx context.Context, id string) error
}

// AuthzInterface resolves effective permission levels. Implemented by the
// collaboration registry so there is a single authority for access decisions.
type AuthzInterface interface {
	LevelOf(ctx context.Context, diagramID, userID string) (types.PermissionLevel, error)
}
