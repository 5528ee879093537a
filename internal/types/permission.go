// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
)

// PermissionLevel is the capability tier a user holds on a diagram.
// Levels are totally ordered: view < edit < admin.
type PermissionLevel string

const (
	PermissionView  PermissionLevel = "view"
	PermissionEdit  PermissionLevel = "edit"
	PermissionAdmin PermissionLevel = "admin"
)

var permissionRank = map[PermissionLevel]int{
	PermissionView:  1,
	PermissionEdit:  2,
	PermissionAdmin: 3,
}

// ParsePermissionLevel validates a permission literal from the wire.
func ParsePermissionLevel(s string) (PermissionLevel, error) {
	l := PermissionLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown permission level %q", s)
	}
	return l, nil
}

func (l PermissionLevel) Valid() bool {
	_, ok := permissionRank[l]
	return ok
}

// AtLeast reports whether l grants every capability of other.
func (l PermissionLevel) AtLeast(other PermissionLevel) bool {
	return permissionRank[l] >= permissionRank[other]
}

// InvitationStatus is the lifecycle state of an invitation.
// pending is the only non-terminal state.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

func (s InvitationStatus) Terminal() bool {
	return s == InvitationAccepted || s == InvitationRejected
}
