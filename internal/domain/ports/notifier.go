package ports

import "context"

// Notifier delivers the aggregated release notes to a messaging channel.
type Notifier interface {
	// PostReleaseNotes renders message into a structured chat payload and
	// posts it, returning the delivery timestamp. dateRange is an optional
	// label appended to the overall title.
	PostReleaseNotes(ctx context.Context, message, dateRange string) (string, error)

	// CheckAuth verifies the messaging credentials.
	CheckAuth(ctx context.Context) error
}
