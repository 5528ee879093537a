// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package collaboration

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/diagram-service/internal/storage"
	"github.com/canonical/diagram-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package collaboration -destination ./mock_collaboration.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package collaboration -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package collaboration -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package collaboration -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestRegistry_LevelOf(t *testing.T) {
	diagramID := "diagram-1"
	ownerID := "owner-1"
	dbErr := errors.New("db error")

	testCases := []struct {
		name          string
		userID        string
		setupMocks    func(*MockStorageInterface)
		expectedLevel types.PermissionLevel
		expectedErr   error
	}{
		{
			name:   "owner holds admin without a stored entry",
			userID: ownerID,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(&types.Diagram{ID: diagramID, OwnerID: ownerID}, nil)
			},
			expectedLevel: types.PermissionAdmin,
			expectedErr:   nil,
		},
		{
			name:   "collaborator level comes from the registry entry",
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(&types.Diagram{ID: diagramID, OwnerID: ownerID}, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, "user-2").Return(&types.Collaborator{DiagramID: diagramID, UserID: "user-2", Level: types.PermissionEdit}, nil)
			},
			expectedLevel: types.PermissionEdit,
			expectedErr:   nil,
		},
		{
			name:   "no entry means no access, not an error",
			userID: "user-3",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(&types.Diagram{ID: diagramID, OwnerID: ownerID}, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, "user-3").Return(nil, storage.ErrNotFound)
			},
			expectedLevel: "",
			expectedErr:   nil,
		},
		{
			name:   "missing diagram",
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(nil, storage.ErrNotFound)
			},
			expectedLevel: "",
			expectedErr:   ErrNotFound,
		},
		{
			name:   "storage error",
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(nil, dbErr)
			},
			expectedLevel: "",
			expectedErr:   dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			r := NewRegistry(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Registry.LevelOf").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			level, err := r.LevelOf(context.Background(), diagramID, tc.userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if level != tc.expectedLevel {
				t.Errorf("expected level %q, got %q", tc.expectedLevel, level)
			}
		})
	}
}

func TestRegistry_Grant(t *testing.T) {
	diagramID := "diagram-1"
	ownerID := "owner-1"

	testCases := []struct {
		name        string
		userID      string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:   "success",
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(&types.Diagram{ID: diagramID, OwnerID: ownerID}, nil)
				mockStorage.EXPECT().UpsertCollaborator(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.Collaborator) (*types.Collaborator, error) {
						if c.DiagramID != diagramID || c.UserID != "user-2" || c.Level != types.PermissionEdit {
							t.Errorf("unexpected collaborator passed to storage: %+v", c)
						}
						return c, nil
					})
			},
			expectedErr: nil,
		},
		{
			name:   "owner cannot be granted a stored entry",
			userID: ownerID,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(&types.Diagram{ID: diagramID, OwnerID: ownerID}, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "missing diagram",
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name:   "diagram deleted underneath the upsert",
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(&types.Diagram{ID: diagramID, OwnerID: ownerID}, nil)
				mockStorage.EXPECT().UpsertCollaborator(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			r := NewRegistry(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Registry.Grant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			_, err := r.Grant(context.Background(), diagramID, tc.userID, "user@example.com", types.PermissionEdit)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRegistry_Revoke(t *testing.T) {
	diagramID := "diagram-1"
	ownerID := "owner-1"
	admin := &types.Principal{ID: "admin-1", Email: "admin@example.com"}
	viewer := &types.Principal{ID: "viewer-1", Email: "viewer@example.com"}

	diagram := &types.Diagram{ID: diagramID, OwnerID: ownerID}

	testCases := []struct {
		name        string
		acting      *types.Principal
		userID      string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:   "admin revokes a collaborator",
			acting: admin,
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, admin.ID).Return(&types.Collaborator{Level: types.PermissionAdmin}, nil)
				mockStorage.EXPECT().DeleteCollaborator(gomock.Any(), diagramID, "user-2").Return(nil)
			},
			expectedErr: nil,
		},
		{
			name:   "owner revokes a collaborator",
			acting: &types.Principal{ID: ownerID, Email: "owner@example.com"},
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().DeleteCollaborator(gomock.Any(), diagramID, "user-2").Return(nil)
			},
			expectedErr: nil,
		},
		{
			name:   "the owner cannot be revoked",
			acting: admin,
			userID: ownerID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, admin.ID).Return(&types.Collaborator{Level: types.PermissionAdmin}, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(admin.ID, "owner_remove")
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "admins cannot revoke themselves",
			acting: admin,
			userID: admin.ID,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, admin.ID).Return(&types.Collaborator{Level: types.PermissionAdmin}, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "viewers cannot revoke",
			acting: viewer,
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, viewer.ID).Return(&types.Collaborator{Level: types.PermissionView}, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(viewer.ID, "collaborator_remove")
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "revoking an absent collaborator",
			acting: admin,
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, admin.ID).Return(&types.Collaborator{Level: types.PermissionAdmin}, nil)
				mockStorage.EXPECT().DeleteCollaborator(gomock.Any(), diagramID, "user-2").Return(storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			r := NewRegistry(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Registry.Revoke").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			err := r.Revoke(context.Background(), diagramID, tc.userID, tc.acting)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRegistry_SetLevel(t *testing.T) {
	diagramID := "diagram-1"
	ownerID := "owner-1"
	admin := &types.Principal{ID: "admin-1", Email: "admin@example.com"}
	editor := &types.Principal{ID: "editor-1", Email: "editor@example.com"}

	diagram := &types.Diagram{ID: diagramID, OwnerID: ownerID}
	updated := &types.Collaborator{DiagramID: diagramID, UserID: "user-2", Level: types.PermissionAdmin}

	testCases := []struct {
		name        string
		acting      *types.Principal
		userID      string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:   "admin promotes a collaborator",
			acting: admin,
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, admin.ID).Return(&types.Collaborator{Level: types.PermissionAdmin}, nil)
				mockStorage.EXPECT().UpdateCollaboratorLevel(gomock.Any(), diagramID, "user-2", types.PermissionAdmin).Return(nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, "user-2").Return(updated, nil)
			},
			expectedErr: nil,
		},
		{
			name:   "the owner's level cannot be changed",
			acting: admin,
			userID: ownerID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, admin.ID).Return(&types.Collaborator{Level: types.PermissionAdmin}, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(admin.ID, "owner_update")
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "admins cannot change their own level",
			acting: admin,
			userID: admin.ID,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, admin.ID).Return(&types.Collaborator{Level: types.PermissionAdmin}, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "editors cannot change levels",
			acting: editor,
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, editor.ID).Return(&types.Collaborator{Level: types.PermissionEdit}, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(editor.ID, "collaborator_update")
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "updating an absent collaborator",
			acting: admin,
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, admin.ID).Return(&types.Collaborator{Level: types.PermissionAdmin}, nil)
				mockStorage.EXPECT().UpdateCollaboratorLevel(gomock.Any(), diagramID, "user-2", types.PermissionAdmin).Return(storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			r := NewRegistry(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Registry.SetLevel").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			c, err := r.SetLevel(context.Background(), diagramID, tc.userID, types.PermissionAdmin, tc.acting)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Level != types.PermissionAdmin {
				t.Errorf("expected level %q, got %q", types.PermissionAdmin, c.Level)
			}
		})
	}
}

func TestRegistry_List(t *testing.T) {
	diagramID := "diagram-1"
	ownerID := "owner-1"
	viewer := &types.Principal{ID: "viewer-1", Email: "viewer@example.com"}
	stranger := &types.Principal{ID: "stranger-1", Email: "stranger@example.com"}

	collaborators := []*types.Collaborator{
		{DiagramID: diagramID, UserID: "user-2", Level: types.PermissionView},
		{DiagramID: diagramID, UserID: "user-3", Level: types.PermissionEdit},
	}

	testCases := []struct {
		name          string
		acting        *types.Principal
		setupMocks    func(*MockStorageInterface)
		expectedCount int
		expectedErr   error
	}{
		{
			name:   "any collaborator can list",
			acting: viewer,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(&types.Diagram{ID: diagramID, OwnerID: ownerID}, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, viewer.ID).Return(&types.Collaborator{Level: types.PermissionView}, nil)
				mockStorage.EXPECT().ListCollaboratorsByDiagramID(gomock.Any(), diagramID).Return(collaborators, nil)
			},
			expectedCount: 2,
			expectedErr:   nil,
		},
		{
			name:   "public diagrams list without an entry",
			acting: stranger,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(&types.Diagram{ID: diagramID, OwnerID: ownerID, IsPublic: true}, nil)
				mockStorage.EXPECT().ListCollaboratorsByDiagramID(gomock.Any(), diagramID).Return(collaborators, nil)
			},
			expectedCount: 2,
			expectedErr:   nil,
		},
		{
			name:   "a private diagram is hidden from outsiders",
			acting: stranger,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(&types.Diagram{ID: diagramID, OwnerID: ownerID}, nil)
				mockStorage.EXPECT().GetCollaborator(gomock.Any(), diagramID, stranger.ID).Return(nil, storage.ErrNotFound)
			},
			expectedCount: 0,
			expectedErr:   ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			r := NewRegistry(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Registry.List").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			got, err := r.List(context.Background(), diagramID, tc.acting)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(got) != tc.expectedCount {
				t.Errorf("expected %d collaborators, got %d", tc.expectedCount, len(got))
			}
		})
	}
}
