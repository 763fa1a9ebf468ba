package calendar

import (
	"fmt"
	"time"
)

// cellWidth is the visible width of every header and day cell.
const cellWidth = 4

// Style turns header labels and cells into fixed-width strings of
// cellWidth visible columns.
type Style interface {
	Header(wd time.Weekday) string
	Cell(c Cell) string
}

var (
	// PlainStyle marks holidays with '*' and weekends with '+'. Today opens with
	// '[' and closes with its kind marker, or ']' on a plain weekday.
	PlainStyle Style = plainStyle{}
	// ANSIStyle colours Sundays and holidays red, Saturdays blue and reverses today.
	ANSIStyle Style = ansiStyle{}
)

var weekdayLabels = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

type plainStyle struct{}

func (plainStyle) Header(wd time.Weekday) string {
	return " " + weekdayLabels[wd] + " "
}

func (plainStyle) Cell(c Cell) string {
	if c.Blank() {
		return "    "
	}
	pre, post := " ", " "
	switch c.Kind {
	case KindHoliday:
		post = "*"
	case KindWeekend:
		post = "+"
	}
	if c.Today {
		// Today keeps its kind marker: "[10]", "[10*", "[10+".
		pre = "["
		if post == " " {
			post = "]"
		}
	}
	return fmt.Sprintf("%s%2d%s", pre, c.Date.Day, post)
}

const (
	ansiReset   = "\x1b[0m"
	ansiRed     = "\x1b[31m"
	ansiBlue    = "\x1b[34m"
	ansiReverse = "\x1b[7m"
)

type ansiStyle struct{}

func (ansiStyle) Header(wd time.Weekday) string {
	return " " + colorize(weekdayColor(wd), weekdayLabels[wd]) + " "
}

func (ansiStyle) Cell(c Cell) string {
	if c.Blank() {
		return "    "
	}
	code := ""
	switch {
	case c.Kind == KindHoliday:
		code = ansiRed
	case c.Kind == KindWeekend:
		code = weekdayColor(c.Date.Weekday())
	}
	if c.Today {
		code += ansiReverse
	}
	return " " + colorize(code, fmt.Sprintf("%2d", c.Date.Day)) + " "
}

func weekdayColor(wd time.Weekday) string {
	switch wd {
	case time.Sunday:
		return ansiRed
	case time.Saturday:
		return ansiBlue
	default:
		return ""
	}
}

func colorize(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + ansiReset
}
