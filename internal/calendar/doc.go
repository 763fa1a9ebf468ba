// Package calendar lays out a month as a grid of weeks and renders it as
// fixed-width text, marking weekends and holidays.
package calendar
