package application

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/krcalendar/internal/calendar"
	"github.com/eugenenazirov/krcalendar/internal/config"
	"github.com/eugenenazirov/krcalendar/internal/holiday"
)

// App encapsulates the application dependencies.
type App struct {
	provider holiday.Provider
	renderer *calendar.Renderer
	logger   *zap.Logger
	clock    func() time.Time
	color    bool
}

// Option configures App behaviour.
type Option func(*App)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(a *App) {
		a.clock = clock
	}
}

// WithProvider overrides the holiday provider.
func WithProvider(p holiday.Provider) Option {
	return func(a *App) {
		a.provider = p
	}
}

// WithColor enables ANSI colour output.
func WithColor(enabled bool) Option {
	return func(a *App) {
		a.color = enabled
	}
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	a := &App{
		provider: holiday.New(),
		logger:   logger,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}

	renderOpts := []calendar.Option{
		calendar.WithWeekStart(cfg.WeekStart),
		calendar.WithTitle(cfg.ShowTitle),
		calendar.WithLegend(cfg.ShowLegend),
	}
	if cfg.HighlightToday {
		renderOpts = append(renderOpts, calendar.WithToday(a.clock))
	}
	if a.color {
		renderOpts = append(renderOpts, calendar.WithStyle(calendar.ANSIStyle))
	}
	a.renderer = calendar.New(renderOpts...)

	return a
}

// Now returns the current host-local time.
func (a *App) Now() time.Time {
	return a.clock()
}

// RenderCurrentMonth renders the month containing the host's local date.
func (a *App) RenderCurrentMonth() (string, error) {
	now := a.clock()
	return a.RenderMonth(now.Year(), int(now.Month()))
}

// RenderMonth renders year/month with that year's holidays marked.
// holiday.ErrDataUnavailable is returned wrapped when the year has no data.
func (a *App) RenderMonth(year, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", calendar.ErrInvalidMonth
	}

	holidays, err := a.provider.HolidaysFor(year)
	if err != nil {
		return "", fmt.Errorf("holidays for %d: %w", year, err)
	}

	return a.render(year, month, holidays)
}

// RenderMonthWithoutHolidays renders year/month marking weekends only.
func (a *App) RenderMonthWithoutHolidays(year, month int) (string, error) {
	return a.render(year, month, holiday.NewSet())
}

// Holidays returns the holidays of the requested years.
func (a *App) Holidays(years ...int) (holiday.Set, error) {
	set, err := a.provider.HolidaysFor(years...)
	if err != nil {
		return holiday.Set{}, fmt.Errorf("holidays for %v: %w", years, err)
	}
	return set, nil
}

func (a *App) render(year, month int, holidays holiday.Set) (string, error) {
	out, err := a.renderer.Render(year, month, holidays)
	if err != nil {
		return "", fmt.Errorf("render %04d-%02d: %w", year, month, err)
	}

	a.logger.Debug("calendar rendered",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("holidays", len(holidays.InMonth(year, time.Month(month)))),
	)
	return out, nil
}
