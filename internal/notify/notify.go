// Package notify delivers user-facing notifications (the "toast" stream)
// for cart and order events. Notifications are best-effort: a session
// with no listener simply misses them.
package notify

// Notification types.
const (
	TypeSuccess = "success"
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeError   = "error"
)

// DefaultDurationMS is how long a notification is shown, in milliseconds.
const DefaultDurationMS = 3000

// Notification is a single message pushed to a session.
type Notification struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Duration    int    `json:"duration"`
}

// Notifier pushes notifications to a session.
type Notifier interface {
	Push(sessionID string, n Notification)
}

// Noop discards everything. Used where no listener is wired.
type Noop struct{}

func (Noop) Push(string, Notification) {}

// Recorder keeps pushed notifications in order. Test double.
type Recorder struct {
	Pushed []Notification
}

func (r *Recorder) Push(_ string, n Notification) {
	r.Pushed = append(r.Pushed, n)
}
