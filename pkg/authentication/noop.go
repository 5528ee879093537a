// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/diagram-service/internal/types"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a token verifier for development that trusts the
// raw token as an identity of the form "<user-id>:<email>".
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error) {
	id, email, ok := strings.Cut(rawToken, ":")
	if !ok || id == "" || email == "" {
		return nil, fmt.Errorf("development token must be of the form <user-id>:<email>")
	}

	return &types.Principal{ID: id, Email: email}, nil
}
