package port

import "context"

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationFailure NotificationLevel = "failure"
)

type Notification struct {
	Level   NotificationLevel
	Message string
}

// Notifier surfaces user-facing outcomes of cart actions.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Messenger hands a composed order message off to an external channel and returns the link used.
type Messenger interface {
	HandOff(ctx context.Context, message string) (string, error)
}
