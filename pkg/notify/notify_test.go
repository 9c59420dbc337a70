package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	assert.Nil(t, r.Notifications())

	Success(r, "Royal Banarasi Silk Saree added to cart")
	Info(r, "Cart cleared")

	got := r.Notifications()
	require.Len(t, got, 2)
	assert.Equal(t, models.Notification{Message: "Royal Banarasi Silk Saree added to cart", Severity: models.SeveritySuccess}, got[0])
	assert.Equal(t, models.SeverityInfo, got[1].Severity)

	got[0].Message = "changed"
	assert.Equal(t, "Royal Banarasi Silk Saree added to cart", r.Notifications()[0].Message)
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	Info(n, "Item removed from cart")

	entries := logs.FilterMessage("notification").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Item removed from cart", fields["message"])
	assert.Equal(t, "info", fields["severity"])
}

func TestMulti(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	n := Multi(a, nil, b)

	Success(n, "added")

	assert.Len(t, a.Notifications(), 1)
	assert.Len(t, b.Notifications(), 1)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Info(Discard, "ignored") })
}
