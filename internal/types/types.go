// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Diagram struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsPublic    bool      `db:"is_public" json:"is_public"`
	OwnerID     string    `db:"owner_id" json:"owner_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Collaborator struct {
	DiagramID string          `db:"diagram_id" json:"diagram_id"`
	UserID    string          `db:"user_id" json:"user_id"`
	Email     string          `db:"email" json:"email"`
	Level     PermissionLevel `db:"permission_level" json:"permission_level"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

type Invitation struct {
	ID           string           `db:"id" json:"id"`
	DiagramID    string           `db:"diagram_id" json:"diagram_id"`
	InviterID    string           `db:"inviter_id" json:"inviter_id"`
	InvitedEmail string           `db:"invited_email" json:"invited_email"`
	Level        PermissionLevel  `db:"permission_level" json:"permission_level"`
	Status       InvitationStatus `db:"status" json:"status"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// Principal is the authenticated caller as resolved from the bearer token.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
