package tui

import (
	"time"

	"github.com/hay-kot/txtpad/internal/core/notify"
)

const (
	infoToastTTL      = 3 * time.Second
	errorToastTTL     = 8 * time.Second
	maxToasts         = 3
	toastTickInterval = 100 * time.Millisecond
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

func ttlFor(level notify.Level) time.Duration {
	if level == notify.LevelInfo {
		return infoToastTTL
	}
	return errorToastTTL
}

// ToastController keeps the status messages shown in the footer. Only the
// newest is rendered; older ones wait behind it until it expires.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a notification. Past maxToasts the oldest is dropped.
func (c *ToastController) Push(n notify.Notification) {
	c.toasts = append(c.toasts, toast{notification: n, remaining: ttlFor(n.Level)})
	if len(c.toasts) > maxToasts {
		c.toasts = c.toasts[len(c.toasts)-maxToasts:]
	}
}

// Tick counts down the newest toast and removes it once expired.
func (c *ToastController) Tick(d time.Duration) {
	if len(c.toasts) == 0 {
		return
	}
	last := len(c.toasts) - 1
	c.toasts[last].remaining -= d
	if c.toasts[last].remaining <= 0 {
		c.toasts = c.toasts[:last]
	}
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Current returns the toast on display.
func (c *ToastController) Current() (notify.Notification, bool) {
	if len(c.toasts) == 0 {
		return notify.Notification{}, false
	}
	return c.toasts[len(c.toasts)-1].notification, true
}

func (c *ToastController) Ticking() bool {
	return c.ticking
}

func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
