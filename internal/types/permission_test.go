// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
)

func TestParsePermissionLevel(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  PermissionLevel
		expectErr bool
	}{
		{name: "view", input: "view", expected: PermissionView},
		{name: "edit", input: "edit", expected: PermissionEdit},
		{name: "admin", input: "admin", expected: PermissionAdmin},
		{name: "empty", input: "", expectErr: true},
		{name: "unknown literal", input: "owner", expectErr: true},
		{name: "case sensitive", input: "Admin", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := ParsePermissionLevel(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Errorf("expected error for %q, got none", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, l)
			}
		})
	}
}

func TestPermissionLevel_AtLeast(t *testing.T) {
	testCases := []struct {
		name     string
		l        PermissionLevel
		other    PermissionLevel
		expected bool
	}{
		{name: "admin covers view", l: PermissionAdmin, other: PermissionView, expected: true},
		{name: "admin covers edit", l: PermissionAdmin, other: PermissionEdit, expected: true},
		{name: "admin covers admin", l: PermissionAdmin, other: PermissionAdmin, expected: true},
		{name: "edit covers view", l: PermissionEdit, other: PermissionView, expected: true},
		{name: "edit does not cover admin", l: PermissionEdit, other: PermissionAdmin, expected: false},
		{name: "view does not cover edit", l: PermissionView, other: PermissionEdit, expected: false},
		{name: "no access covers nothing", l: PermissionLevel(""), other: PermissionView, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.l.AtLeast(tc.other); got != tc.expected {
				t.Errorf("%q.AtLeast(%q) = %v, expected %v", tc.l, tc.other, got, tc.expected)
			}
		})
	}
}

func TestInvitationStatus_Terminal(t *testing.T) {
	if InvitationPending.Terminal() {
		t.Error("pending must not be terminal")
	}
	if !InvitationAccepted.Terminal() {
		t.Error("accepted must be terminal")
	}
	if !InvitationRejected.Terminal() {
		t.Error("rejected must be terminal")
	}
}
