// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/canonical/diagram-service/internal/logging"
)

// TransactionMiddleware wraps every mutating request in a transaction scope.
// A handler response of 400 or above rolls the transaction back, so a
// multi-step mutation (accept invitation, then grant the permission) is
// all-or-nothing without the handlers managing transactions themselves.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			rw := &txResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				next.ServeHTTP(rw, r.WithContext(txCtx))

				if rw.statusCode >= 400 {
					return fmt.Errorf("request failed with status %d", rw.statusCode)
				}

				return nil
			})
			if err != nil {
				// The response is already on the wire, so a commit failure
				// behind a success status cannot be reported to the client.
				if rw.statusCode < 400 {
					logger.Errorf("transaction commit failed after %d response: %v", rw.statusCode, err)
					return
				}
				logger.Debugf("transaction rolled back: %v", err)
			}
		})
	}
}

type txResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *txResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
