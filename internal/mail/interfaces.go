// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

// MailerInterface delivers invitation notifications. Delivery is best effort;
// callers log failures and carry on.
type MailerInterface interface {
	SendInvitation(ctx context.Context, toEmail, diagramName, inviterEmail, invitationID string) error
}
