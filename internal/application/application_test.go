package application

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/krcalendar/internal/calendar"
	"github.com/eugenenazirov/krcalendar/internal/config"
	"github.com/eugenenazirov/krcalendar/internal/holiday"
)

type stubProvider struct {
	set   holiday.Set
	err   error
	years [][]int
}

func (s *stubProvider) HolidaysFor(years ...int) (holiday.Set, error) {
	s.years = append(s.years, years)
	if s.err != nil {
		return holiday.Set{}, s.err
	}
	return s.set, nil
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 23, 59, 0, 0, time.Local)
	}
}

func baseTestConfig() config.Config {
	return config.Config{
		WeekStart: time.Sunday,
		ColorMode: config.ColorNever,
	}
}

func TestRenderCurrentMonthUsesClock(t *testing.T) {
	stub := &stubProvider{set: holiday.NewSet()}
	app := New(baseTestConfig(), zaptest.NewLogger(t),
		WithProvider(stub),
		WithClock(fixedClock(2024, time.February, 29)),
	)

	out, err := app.RenderCurrentMonth()
	if err != nil {
		t.Fatalf("RenderCurrentMonth returned error: %v", err)
	}

	want, err := calendar.New().Render(2024, 2, holiday.NewSet())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, out)
	}
	if len(stub.years) != 1 || len(stub.years[0]) != 1 || stub.years[0][0] != 2024 {
		t.Fatalf("expected a single lookup for 2024, got %v", stub.years)
	}
}

func TestRenderCurrentMonthWithKoreanHolidays(t *testing.T) {
	app := New(baseTestConfig(), zaptest.NewLogger(t), WithClock(fixedClock(2025, time.October, 14)))

	out, err := app.RenderCurrentMonth()
	if err != nil {
		t.Fatalf("RenderCurrentMonth returned error: %v", err)
	}
	// Oct 3 (Fri) and Oct 6..9 are holidays in 2025.
	lines := strings.Split(out, "\n")
	if got, want := lines[1], "              1   2   3*  4+"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := lines[2], "  5*  6*  7*  8*  9* 10  11+"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderMonthPropagatesDataUnavailable(t *testing.T) {
	app := New(baseTestConfig(), zaptest.NewLogger(t), WithClock(fixedClock(2031, time.March, 1)))

	if _, err := app.RenderCurrentMonth(); !errors.Is(err, holiday.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	if _, err := app.Holidays(2031); !errors.Is(err, holiday.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable from Holidays, got %v", err)
	}

	out, err := app.RenderMonthWithoutHolidays(2031, 3)
	if err != nil {
		t.Fatalf("RenderMonthWithoutHolidays returned error: %v", err)
	}
	if strings.Contains(out, "*") {
		t.Fatalf("expected no holiday markers, got:\n%s", out)
	}
}

func TestRenderMonthRejectsInvalidMonth(t *testing.T) {
	stub := &stubProvider{set: holiday.NewSet()}
	app := New(baseTestConfig(), zaptest.NewLogger(t), WithProvider(stub))

	if _, err := app.RenderMonth(2024, 0); !errors.Is(err, calendar.ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
	if len(stub.years) != 0 {
		t.Fatalf("expected no holiday lookup for an invalid month")
	}
}

func TestNewAppliesConfig(t *testing.T) {
	cfg := baseTestConfig()
	cfg.WeekStart = time.Monday
	cfg.ShowTitle = true
	cfg.ShowLegend = true
	cfg.HighlightToday = true

	app := New(cfg, nil, WithColor(true), WithClock(fixedClock(2025, time.May, 6)))

	out, err := app.RenderMonth(2025, 5)
	if err != nil {
		t.Fatalf("RenderMonth returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if strings.TrimSpace(lines[0]) != "May 2025" {
		t.Fatalf("expected title line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Mo") || strings.Index(lines[1], "Mo") > strings.Index(lines[1], "Tu") {
		t.Fatalf("expected Monday-first header, got %q", lines[1])
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI colour codes in output")
	}
	if !strings.Contains(lines[len(lines)-1], "05-06") {
		t.Fatalf("expected legend for the substitute holiday, got %q", lines[len(lines)-1])
	}
	if app.Now().Day() != 6 {
		t.Fatalf("expected Now to use the injected clock")
	}
}
