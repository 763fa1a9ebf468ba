package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/eugenenazirov/krcalendar/internal/holiday"
)

// Renderer renders month grids as text.
type Renderer struct {
	weekStart time.Weekday
	style     Style
	today     func() time.Time
	title     bool
	legend    bool
}

// Option configures Renderer behaviour.
type Option func(*Renderer)

// WithWeekStart sets the first column of every week.
func WithWeekStart(wd time.Weekday) Option {
	return func(r *Renderer) {
		r.weekStart = wd
	}
}

// WithStyle overrides the cell style.
func WithStyle(style Style) Option {
	return func(r *Renderer) {
		if style != nil {
			r.style = style
		}
	}
}

// WithToday highlights the cell matching the date returned by clock.
func WithToday(clock func() time.Time) Option {
	return func(r *Renderer) {
		r.today = clock
	}
}

// WithTitle prints a centred "<Month> <Year>" line above the grid.
func WithTitle(enabled bool) Option {
	return func(r *Renderer) {
		r.title = enabled
	}
}

// WithLegend lists the month's holidays below the grid.
func WithLegend(enabled bool) Option {
	return func(r *Renderer) {
		r.legend = enabled
	}
}

// New constructs a Renderer. Without options it renders Sunday-first plain
// text consisting of the weekday header followed by one line per week.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		weekStart: time.Sunday,
		style:     PlainStyle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays out year/month and renders it with the configured options.
func (r *Renderer) Render(year, month int, holidays holiday.Set) (string, error) {
	grid, err := BuildGrid(year, month, holidays, r.weekStart)
	if err != nil {
		return "", err
	}
	if r.today != nil {
		markToday(&grid, holiday.DateOf(r.today()))
	}

	var b strings.Builder
	if r.title {
		writeLine(&b, centre(fmt.Sprintf("%s %d", grid.Month, grid.Year), 7*cellWidth))
	}

	var header strings.Builder
	for _, wd := range grid.Weekdays() {
		header.WriteString(r.style.Header(wd))
	}
	writeLine(&b, header.String())

	for _, week := range grid.Weeks {
		var line strings.Builder
		for _, c := range week {
			line.WriteString(r.style.Cell(c))
		}
		writeLine(&b, line.String())
	}

	if r.legend {
		for _, d := range holidays.InMonth(grid.Year, grid.Month) {
			writeLine(&b, fmt.Sprintf("%02d-%02d  %s", int(d.Month), d.Day, strings.Join(holidays.Names(d), ", ")))
		}
	}

	return b.String(), nil
}

func markToday(grid *Grid, today holiday.Date) {
	for w := range grid.Weeks {
		for i := range grid.Weeks[w] {
			c := &grid.Weeks[w][i]
			if !c.Blank() && c.Date == today {
				c.Today = true
			}
		}
	}
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}

func centre(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}
