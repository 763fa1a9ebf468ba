//go:build !notray

package main

import (
	"io"

	"github.com/getlantern/systray"
	"go.uber.org/zap"

	"github.com/eugenenazirov/krcalendar/internal/application"
	"github.com/eugenenazirov/krcalendar/internal/config"
	"github.com/eugenenazirov/krcalendar/internal/tray"
)

func runTray(app *application.App, cfg config.Config, out io.Writer, logger *zap.Logger) error {
	controller := tray.NewController(app, out, logger,
		tray.WithClickRate(cfg.TrayClickRPS, cfg.TrayClickBurst),
	)

	icon, err := tray.Icon()
	if err != nil {
		return err
	}

	stop := tray.WatchSignals(systray.Quit, logger)
	defer stop()

	onReady := func() {
		systray.SetIcon(icon)
		systray.SetTitle("krCalendar")
		systray.SetTooltip("krCalendar")

		show := systray.AddMenuItem("Show calendar", "Print this month to the console")
		systray.AddSeparator()
		quit := systray.AddMenuItem("Quit", "Quit krCalendar")

		logger.Info("tray ready")
		// ShowCalendar logs its own failures.
		_, _ = controller.ShowCalendar()

		go func() {
			for {
				select {
				case <-show.ClickedCh:
					_, _ = controller.ShowCalendar()
				case <-quit.ClickedCh:
					systray.Quit()
					return
				}
			}
		}()
	}
	onExit := func() {
		logger.Info("tray stopped")
	}

	systray.Run(onReady, onExit)
	return nil
}
