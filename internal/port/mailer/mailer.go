package mailer

import "context"

// Mailer delivers transactional mail. Delivery is best-effort; callers log
// failures rather than surfacing them to the user.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}
