package tray

import (
	"io"

	"go.uber.org/zap"
)

// Calendar is the part of the application the tray menu drives.
type Calendar interface {
	WriteCurrentMonth(w io.Writer) error
}

// Controller reacts to tray menu clicks.
type Controller struct {
	calendar Calendar
	out      io.Writer
	logger   *zap.Logger
	limiter  rateLimiter
}

// ControllerOption configures Controller behaviour.
type ControllerOption func(*Controller)

// WithClickRate limits how often "Show calendar" clicks render. A zero
// rate or burst disables limiting.
func WithClickRate(ratePerSecond float64, burst int) ControllerOption {
	return func(c *Controller) {
		if ratePerSecond <= 0 || burst <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = newTokenBucketLimiter(ratePerSecond, burst)
	}
}

// WithRateLimiter overrides the click limiter (primarily for tests).
func WithRateLimiter(limiter rateLimiter) ControllerOption {
	return func(c *Controller) {
		c.limiter = limiter
	}
}

// NewController constructs a Controller writing calendars to out.
func NewController(cal Calendar, out io.Writer, logger *zap.Logger, opts ...ControllerOption) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		calendar: cal,
		out:      out,
		logger:   logger,
		limiter:  newTokenBucketLimiter(2, 3),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShowCalendar writes the current month to the console sink. It reports
// false when the click was dropped by the rate limiter. Every error is
// logged before it is returned.
func (c *Controller) ShowCalendar() (bool, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		c.logger.Debug("show calendar click throttled")
		return false, nil
	}

	err := c.calendar.WriteCurrentMonth(c.out)
	if err == nil {
		_, err = io.WriteString(c.out, "\n")
	}
	if err != nil {
		c.logger.Error("failed to show calendar", zap.Error(err))
		return true, err
	}
	return true, nil
}
