package application

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/krcalendar/internal/holiday"
)

// unavailableNotice precedes a calendar printed without holiday marks.
const unavailableNotice = "(holiday data unavailable; showing weekends only)"

// WriteCurrentMonth writes the current month to w, see WriteMonth.
func (a *App) WriteCurrentMonth(w io.Writer) error {
	now := a.clock()
	return a.WriteMonth(w, now.Year(), int(now.Month()))
}

// WriteMonth writes year/month to w. When holiday data is unavailable the
// calendar is written without holiday marks after a notice line.
func (a *App) WriteMonth(w io.Writer, year, month int) error {
	out, err := a.RenderMonth(year, month)
	if errors.Is(err, holiday.ErrDataUnavailable) {
		a.logger.Warn("holiday data unavailable, rendering without holidays",
			zap.Int("year", year),
			zap.Error(err),
		)
		out, err = a.RenderMonthWithoutHolidays(year, month)
		if err == nil {
			out = unavailableNotice + "\n" + out
		}
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

// WriteHolidays writes one "YYYY-MM-DD  Name" line per holiday of the given years.
func (a *App) WriteHolidays(w io.Writer, years ...int) error {
	set, err := a.Holidays(years...)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, d := range set.Dates() {
		fmt.Fprintf(&b, "%s  %s\n", d, strings.Join(set.Names(d), ", "))
	}
	_, err = io.WriteString(w, b.String())
	return err
}
