//go:build notray

package main

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/krcalendar/internal/application"
	"github.com/eugenenazirov/krcalendar/internal/config"
)

var errTrayUnsupported = errors.New("tray support not built in (rebuild without the notray tag)")

func runTray(*application.App, config.Config, io.Writer, *zap.Logger) error {
	return errTrayUnsupported
}
