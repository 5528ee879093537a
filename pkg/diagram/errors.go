// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package diagram

import (
	"errors"
)

var (
	ErrNotFound  = errors.New("diagram not found")
	ErrForbidden = errors.New("forbidden")
)
