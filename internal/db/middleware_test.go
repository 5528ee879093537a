// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sq "github.com/Masterminds/squirrel"
	gomock "go.uber.org/mock/gomock"
)

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		commitErr    error
		handler      func(d *DBClient) http.HandlerFunc
		setupLogger  func(logger *MockLoggerInterface)
		wantedStatus int
		wantedExecs  int
	}{
		{
			name:   "mutation is committed",
			method: http.MethodPost,
			handler: func(d *DBClient) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					if _, err := d.Statement(r.Context()).Insert("diagrams").Columns("id").Values("d-1").ExecContext(r.Context()); err != nil {
						w.WriteHeader(http.StatusInternalServerError)
						return
					}
					w.WriteHeader(http.StatusCreated)
				}
			},
			setupLogger:  func(logger *MockLoggerInterface) {},
			wantedStatus: http.StatusCreated,
			wantedExecs:  1,
		},
		{
			name:   "failure status rolls back",
			method: http.MethodPost,
			handler: func(d *DBClient) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					_, _ = d.Statement(r.Context()).Insert("diagrams").Columns("id").Values("d-1").ExecContext(r.Context())
					w.WriteHeader(http.StatusConflict)
				}
			},
			setupLogger: func(logger *MockLoggerInterface) {
				logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).Times(1)
			},
			wantedStatus: http.StatusConflict,
			wantedExecs:  1,
		},
		{
			name:      "commit failure behind a success status is logged as an error",
			method:    http.MethodPost,
			commitErr: errors.New("commit failed"),
			handler: func(d *DBClient) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					_, _ = d.Statement(r.Context()).Update("invitations").Set("status", "accepted").Where(sq.Eq{"id": "inv-1"}).ExecContext(r.Context())
					w.WriteHeader(http.StatusOK)
				}
			},
			setupLogger: func(logger *MockLoggerInterface) {
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
			},
			wantedStatus: http.StatusOK,
			wantedExecs:  1,
		},
		{
			name:   "reads skip the transaction scope",
			method: http.MethodGet,
			handler: func(d *DBClient) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}
			},
			setupLogger:  func(logger *MockLoggerInterface) {},
			wantedStatus: http.StatusOK,
			wantedExecs:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupLogger(mockLogger)

			conn := &fakeConn{commitErr: tt.commitErr}
			d := newFakeClient(conn)

			handler := TransactionMiddleware(d, mockLogger)(tt.handler(d))

			req := httptest.NewRequest(tt.method, "/api/v0/diagrams", nil)
			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if res.Code != tt.wantedStatus {
				t.Fatalf("expected status %d, got %d", tt.wantedStatus, res.Code)
			}

			if len(conn.execs) != tt.wantedExecs {
				t.Fatalf("expected %d statement(s), got %v", tt.wantedExecs, conn.execs)
			}
		})
	}
}
