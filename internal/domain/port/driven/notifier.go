package driven

import "github.com/ericfisherdev/grocerylist/internal/domain/model"

// Notifier defines the driven port for short-lived user notifications.
// Notify must not block; dismissal is scheduled by the implementation.
type Notifier interface {
	Notify(message string, kind model.NoticeKind)
}
