// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package collaboration

import (
	"errors"
)

// Domain error kinds. The API surface translates these to response codes;
// nothing below the handlers knows about HTTP.
var (
	// ErrNotFound covers a missing diagram, collaborator or invitation, and
	// also a diagram the caller is not allowed to know exists.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is an authenticated caller without the required permission,
	// or an attempt to touch the owner's implicit entry.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is an invite for an email that already collaborates on the
	// diagram.
	ErrConflict = errors.New("already a collaborator")
	// ErrInvalidState is an accept or reject on an invitation that is no
	// longer pending.
	ErrInvalidState = errors.New("invitation is not pending")
)
