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

func TestService_Invite(t *testing.T) {
	diagramID := "diagram-1"
	invitedEmail := "invitee@example.com"
	admin := &types.Principal{ID: "admin-1", Email: "admin@example.com"}
	editor := &types.Principal{ID: "editor-1", Email: "editor@example.com"}

	diagram := &types.Diagram{ID: diagramID, Name: "Orders schema", OwnerID: "owner-1"}

	testCases := []struct {
		name        string
		acting      *types.Principal
		setupMocks  func(*MockStorageInterface, *MockRegistryInterface, *MockMailerInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:   "success",
			acting: admin,
			setupMocks: func(mockStorage *MockStorageInterface, mockRegistry *MockRegistryInterface, mockMailer *MockMailerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockRegistry.EXPECT().LevelOf(gomock.Any(), diagramID, admin.ID).Return(types.PermissionAdmin, nil)
				mockStorage.EXPECT().GetCollaboratorByEmail(gomock.Any(), diagramID, invitedEmail).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().RejectPendingInvitations(gomock.Any(), diagramID, invitedEmail).Return(nil)
				mockStorage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.DiagramID != diagramID || inv.InvitedEmail != invitedEmail || inv.InviterID != admin.ID {
							t.Errorf("unexpected invitation passed to storage: %+v", inv)
						}
						inv.ID = "inv-1"
						inv.Status = types.InvitationPending
						return inv, nil
					})
				mockMailer.EXPECT().SendInvitation(gomock.Any(), invitedEmail, diagram.Name, admin.Email, "inv-1").Return(nil)
			},
			expectedErr: nil,
		},
		{
			name:   "invitation stands when email delivery fails",
			acting: admin,
			setupMocks: func(mockStorage *MockStorageInterface, mockRegistry *MockRegistryInterface, mockMailer *MockMailerInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockRegistry.EXPECT().LevelOf(gomock.Any(), diagramID, admin.ID).Return(types.PermissionAdmin, nil)
				mockStorage.EXPECT().GetCollaboratorByEmail(gomock.Any(), diagramID, invitedEmail).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().RejectPendingInvitations(gomock.Any(), diagramID, invitedEmail).Return(nil)
				mockStorage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						inv.ID = "inv-1"
						inv.Status = types.InvitationPending
						return inv, nil
					})
				mockMailer.EXPECT().SendInvitation(gomock.Any(), invitedEmail, diagram.Name, admin.Email, "inv-1").Return(errors.New("smtp unavailable"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: nil,
		},
		{
			name:   "non-admins cannot invite",
			acting: editor,
			setupMocks: func(mockStorage *MockStorageInterface, mockRegistry *MockRegistryInterface, _ *MockMailerInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockRegistry.EXPECT().LevelOf(gomock.Any(), diagramID, editor.ID).Return(types.PermissionEdit, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(editor.ID, "invite")
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "inviting an existing collaborator",
			acting: admin,
			setupMocks: func(mockStorage *MockStorageInterface, mockRegistry *MockRegistryInterface, _ *MockMailerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(diagram, nil)
				mockRegistry.EXPECT().LevelOf(gomock.Any(), diagramID, admin.ID).Return(types.PermissionAdmin, nil)
				mockStorage.EXPECT().GetCollaboratorByEmail(gomock.Any(), diagramID, invitedEmail).Return(&types.Collaborator{DiagramID: diagramID, Email: invitedEmail}, nil)
			},
			expectedErr: ErrConflict,
		},
		{
			name:   "missing diagram",
			acting: admin,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockRegistryInterface, _ *MockMailerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetDiagramByID(gomock.Any(), diagramID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockRegistry := NewMockRegistryInterface(ctrl)
			mockMailer := NewMockMailerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockRegistry, mockMailer, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Service.Invite").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockRegistry, mockMailer, mockLogger, mockSecurity)

			invitation, err := s.Invite(context.Background(), diagramID, invitedEmail, types.PermissionEdit, tc.acting)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invitation.Status != types.InvitationPending {
				t.Errorf("expected pending invitation, got %q", invitation.Status)
			}
		})
	}
}

func TestService_Accept(t *testing.T) {
	invitationID := "inv-1"
	diagramID := "diagram-1"
	invitee := &types.Principal{ID: "user-2", Email: "invitee@example.com"}

	pending := func() *types.Invitation {
		return &types.Invitation{
			ID:           invitationID,
			DiagramID:    diagramID,
			InviterID:    "admin-1",
			InvitedEmail: invitee.Email,
			Level:        types.PermissionEdit,
			Status:       types.InvitationPending,
		}
	}

	testCases := []struct {
		name        string
		acting      *types.Principal
		setupMocks  func(*MockStorageInterface, *MockRegistryInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:   "acceptance grants the offered level",
			acting: invitee,
			setupMocks: func(mockStorage *MockStorageInterface, mockRegistry *MockRegistryInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(pending(), nil)
				mockStorage.EXPECT().TransitionInvitation(gomock.Any(), invitationID, types.InvitationPending, types.InvitationAccepted).Return(true, nil)
				mockRegistry.EXPECT().Grant(gomock.Any(), diagramID, invitee.ID, invitee.Email, types.PermissionEdit).Return(&types.Collaborator{}, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: nil,
		},
		{
			name:   "only the invited address can accept",
			acting: &types.Principal{ID: "user-3", Email: "other@example.com"},
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockRegistryInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(pending(), nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("user-3", "invitation_respond")
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "accepting an already accepted invitation",
			acting: invitee,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockRegistryInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				inv := pending()
				inv.Status = types.InvitationAccepted
				mockStorage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(inv, nil)
			},
			expectedErr: ErrInvalidState,
		},
		{
			name:   "a concurrent response wins the pending row",
			acting: invitee,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockRegistryInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(pending(), nil)
				mockStorage.EXPECT().TransitionInvitation(gomock.Any(), invitationID, types.InvitationPending, types.InvitationAccepted).Return(false, nil)
			},
			expectedErr: ErrInvalidState,
		},
		{
			name:   "missing invitation",
			acting: invitee,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockRegistryInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockRegistry := NewMockRegistryInterface(ctrl)
			mockMailer := NewMockMailerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockRegistry, mockMailer, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Service.Accept").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockRegistry, mockLogger, mockSecurity)

			invitation, err := s.Accept(context.Background(), invitationID, tc.acting)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invitation.Status != types.InvitationAccepted {
				t.Errorf("expected accepted invitation, got %q", invitation.Status)
			}
		})
	}
}

func TestService_Reject(t *testing.T) {
	invitationID := "inv-1"
	invitee := &types.Principal{ID: "user-2", Email: "invitee@example.com"}

	pending := func() *types.Invitation {
		return &types.Invitation{
			ID:           invitationID,
			DiagramID:    "diagram-1",
			InvitedEmail: invitee.Email,
			Level:        types.PermissionView,
			Status:       types.InvitationPending,
		}
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "rejection closes the invitation and grants nothing",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(pending(), nil)
				mockStorage.EXPECT().TransitionInvitation(gomock.Any(), invitationID, types.InvitationPending, types.InvitationRejected).Return(true, nil)
			},
			expectedErr: nil,
		},
		{
			name: "rejecting twice",
			setupMocks: func(mockStorage *MockStorageInterface) {
				inv := pending()
				inv.Status = types.InvitationRejected
				mockStorage.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(inv, nil)
			},
			expectedErr: ErrInvalidState,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockRegistry := NewMockRegistryInterface(ctrl)
			mockMailer := NewMockMailerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockRegistry, mockMailer, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Service.Reject").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			invitation, err := s.Reject(context.Background(), invitationID, invitee)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invitation.Status != types.InvitationRejected {
				t.Errorf("expected rejected invitation, got %q", invitation.Status)
			}
		})
	}
}

func TestService_ListPendingFor(t *testing.T) {
	email := "invitee@example.com"
	expected := []*types.Invitation{
		{ID: "inv-1", Status: types.InvitationPending},
		{ID: "inv-2", Status: types.InvitationPending},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockRegistry := NewMockRegistryInterface(ctrl)
	mockMailer := NewMockMailerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockRegistry, mockMailer, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Service.ListPendingFor").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), email).Return(expected, nil)

	invitations, err := s.ListPendingFor(context.Background(), email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invitations) != len(expected) {
		t.Errorf("expected %d invitations, got %d", len(expected), len(invitations))
	}
}

func TestService_ListForDiagram(t *testing.T) {
	diagramID := "diagram-1"
	admin := &types.Principal{ID: "admin-1", Email: "admin@example.com"}
	viewer := &types.Principal{ID: "viewer-1", Email: "viewer@example.com"}

	expected := []*types.Invitation{
		{ID: "inv-1", DiagramID: diagramID, Status: types.InvitationAccepted},
		{ID: "inv-2", DiagramID: diagramID, Status: types.InvitationPending},
	}

	testCases := []struct {
		name          string
		acting        *types.Principal
		setupMocks    func(*MockStorageInterface, *MockRegistryInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedCount int
		expectedErr   error
	}{
		{
			name:   "admin sees the full history",
			acting: admin,
			setupMocks: func(mockStorage *MockStorageInterface, mockRegistry *MockRegistryInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockRegistry.EXPECT().LevelOf(gomock.Any(), diagramID, admin.ID).Return(types.PermissionAdmin, nil)
				mockStorage.EXPECT().ListInvitationsByDiagramID(gomock.Any(), diagramID).Return(expected, nil)
			},
			expectedCount: 2,
			expectedErr:   nil,
		},
		{
			name:   "viewers cannot audit invitations",
			acting: viewer,
			setupMocks: func(_ *MockStorageInterface, mockRegistry *MockRegistryInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockRegistry.EXPECT().LevelOf(gomock.Any(), diagramID, viewer.ID).Return(types.PermissionView, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(viewer.ID, "invitation_audit")
			},
			expectedCount: 0,
			expectedErr:   ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockRegistry := NewMockRegistryInterface(ctrl)
			mockMailer := NewMockMailerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockRegistry, mockMailer, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "collaboration.Service.ListForDiagram").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockRegistry, mockLogger, mockSecurity)

			invitations, err := s.ListForDiagram(context.Background(), diagramID, tc.acting)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(invitations) != tc.expectedCount {
				t.Errorf("expected %d invitations, got %d", tc.expectedCount, len(invitations))
			}
		})
	}
}
