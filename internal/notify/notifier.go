// Package notify carries user-visible messages out of the orchestration
// layer. Delivery is fire-and-forget: at most one message is produced per
// mutation attempt, and nothing in the core waits on it.
package notify

import (
	"context"
	"sync"

	"organisation-dashboard-backend/internal/logger"
)

// Notifier delivers a user-visible success or error message.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// LogNotifier writes notifications to the structured log. The dashboard
// front end renders its own toasts from HTTP responses, so the server-side
// channel is an audit trail.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Success logs a success notification.
func (n *LogNotifier) Success(ctx context.Context, message string) {
	logger.WithContext(ctx).WithField("notification", "success").Info(message)
}

// Error logs an error notification.
func (n *LogNotifier) Error(ctx context.Context, message string) {
	logger.WithContext(ctx).WithField("notification", "error").Warn(message)
}

// Recorder collects notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

// NewRecorder creates an empty recording notifier.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Success records a success notification.
func (r *Recorder) Success(ctx context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, message)
}

// Error records an error notification.
func (r *Recorder) Error(ctx context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, message)
}

// Successes returns the recorded success messages.
func (r *Recorder) Successes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.successes...)
}

// Errors returns the recorded error messages.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}
