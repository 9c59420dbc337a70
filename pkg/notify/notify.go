// Package notify carries fire-and-forget shopper notifications ("Cart cleared")
// from the cart store to whatever surface displays them.
package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(message string, severity models.Severity)
}

// Success and Info are shorthands for the two severities the storefront uses.
func Success(n Notifier, message string) { n.Notify(message, models.SeveritySuccess) }

// Info sends an informational notification.
func Info(n Notifier, message string) { n.Notify(message, models.SeverityInfo) }

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier returns a notifier that logs through logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification at info level.
func (l *LogNotifier) Notify(message string, severity models.Severity) {
	l.logger.Info("notification", zap.String("message", message), zap.String("severity", string(severity)))
}

// Recorder keeps notifications in memory so a request handler can return them.
type Recorder struct {
	mu    sync.Mutex
	items []models.Notification
}

// Notify records the notification.
func (r *Recorder) Notify(message string, severity models.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, models.Notification{Message: message, Severity: severity})
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return nil
	}
	out := make([]models.Notification, len(r.items))
	copy(out, r.items)
	return out
}

type multi []Notifier

func (m multi) Notify(message string, severity models.Severity) {
	for _, n := range m {
		n.Notify(message, severity)
	}
}

// Multi fans a notification out to every non-nil notifier.
func Multi(notifiers ...Notifier) Notifier {
	var m multi
	for _, n := range notifiers {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

type discard struct{}

func (discard) Notify(string, models.Severity) {}

// Discard drops every notification.
var Discard Notifier = discard{}
