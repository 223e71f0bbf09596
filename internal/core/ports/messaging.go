package ports

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

// MessageSender delivers one templated alert to a phone number.
// Implementations return a nil error only when the provider confirmed acceptance;
// the returned string is the provider's raw response, kept for logging and relay replies.
type MessageSender interface {
	Send(ctx context.Context, msg domain.Message) (string, error)
}
