// Package application provides application initialization and dependency wiring.
// It combines the holiday provider, the calendar renderer and the clock so the
// CLI and the tray only ever ask for rendered text.
package application
