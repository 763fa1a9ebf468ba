package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/krcalendar/internal/application"
	"github.com/eugenenazirov/krcalendar/internal/config"
	"github.com/eugenenazirov/krcalendar/internal/tray"
)

func newApp(t *testing.T, yaml string, now time.Time) (*application.App, config.Config) {
	t.Helper()

	for _, key := range []string{"KRCAL_WEEK_START", "KRCAL_COLOR", "KRCAL_LOG_LEVEL", "KRCAL_TRAY_CLICK_RPS", "KRCAL_TRAY_CLICK_BURST"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), "krcalendar.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(&config.CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	clock := func() time.Time { return now }
	app := application.New(cfg, zaptest.NewLogger(t), application.WithClock(clock))
	return app, cfg
}

func TestIntegrationTrayClickRendersChuseok(t *testing.T) {
	app, cfg := newApp(t, `
week_start: monday
color: never
title: false
highlight_today: false
`, time.Date(2025, time.October, 14, 10, 0, 0, 0, time.Local))

	var buf bytes.Buffer
	controller := tray.NewController(app, &buf, zaptest.NewLogger(t),
		tray.WithClickRate(cfg.TrayClickRPS, cfg.TrayClickBurst),
	)

	shown, err := controller.ShowCalendar()
	if err != nil || !shown {
		t.Fatalf("expected calendar to be shown, got %v/%v", shown, err)
	}

	out := buf.String()
	for _, want := range []string{
		" Mo  Tu  We  Th  Fr  Sa  Su\n",
		"          1   2   3*  4+  5*\n",
		"  6*  7*  8*  9* 10  11+ 12+\n",
		"10-03  National Foundation Day\n",
		"10-05  The day preceding Chuseok\n",
		"10-06  Chuseok\n",
		"10-08  Alternative holiday for The day preceding Chuseok\n",
		"10-09  Hangul Day\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.ContainsRune(out, '\x1b') {
		t.Fatalf("expected plain output")
	}
}

func TestIntegrationUnavailableYearFallsBack(t *testing.T) {
	app, _ := newApp(t, "color: never\n", time.Date(2030, time.June, 12, 12, 0, 0, 0, time.Local))

	var buf bytes.Buffer
	if err := app.WriteCurrentMonth(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "holiday data unavailable") {
		t.Fatalf("expected notice line first, got %q", lines[0])
	}
	if strings.Contains(buf.String(), "*") {
		t.Fatalf("expected no holiday marks, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "  1+") {
		t.Fatalf("expected weekend marks to survive, got:\n%s", buf.String())
	}
}

func TestIntegrationHolidayListing(t *testing.T) {
	app, _ := newApp(t, "log_level: warn\n", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))

	var buf bytes.Buffer
	if err := app.WriteHolidays(&buf, 2024, 2025); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 38 {
		t.Fatalf("expected 38 holiday lines, got %d", len(lines))
	}
	if lines[0] != "2024-01-01  New Year's Day" || lines[len(lines)-1] != "2025-12-25  Christmas Day" {
		t.Fatalf("unexpected first/last lines %q / %q", lines[0], lines[len(lines)-1])
	}
}
