package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTestBuffer is the buffer time subtracted from the test
// deadline to allow for cleanup before the test times out.
const DefaultTestBuffer = 5 * time.Second

// ContextWithTestDeadline creates a context that respects the test's
// deadline, minus DefaultTestBuffer for cleanup. If the test has no
// deadline, or the adjusted deadline has already passed, it falls back
// to the provided duration.
func ContextWithTestDeadline(t *testing.T, fallback time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		adjusted := deadline.Add(-DefaultTestBuffer)
		if time.Until(adjusted) > 0 {
			return context.WithDeadline(context.Background(), adjusted)
		}
	}
	return context.WithTimeout(context.Background(), fallback)
}
