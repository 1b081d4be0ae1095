package http

import (
	"context"
	"strings"

	"orderadmin/internal/core/ports"
)

// ConfirmHeader carries the operator's answer to the confirmation a
// request may trigger: "yes" approves, anything else declines.
const ConfirmHeader = "X-Confirm"

type confirmationKey struct{}

// WithConfirmation stores the answer of the current request in ctx.
func WithConfirmation(ctx context.Context, answer string) context.Context {
	return context.WithValue(ctx, confirmationKey{}, answer)
}

// HeaderConfirmer answers confirmations from the X-Confirm header of the
// request being served. A request without the header declines.
type HeaderConfirmer struct{}

var _ ports.Confirmer = HeaderConfirmer{}

func (HeaderConfirmer) Confirm(ctx context.Context, _ string) (bool, error) {
	answer, _ := ctx.Value(confirmationKey{}).(string)
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}
