// Package tray holds the platform-neutral half of the system-tray
// integration: the menu click controller, its rate limiter, the generated
// icon and signal-driven shutdown. The systray event loop itself lives in
// the krcalendar command.
package tray
