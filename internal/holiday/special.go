package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
)

// SpecialHolidays are one-off public holidays (election days and days
// designated by the government) in the supported years. They never earn a
// substitute day.
var SpecialHolidays = []*cal.Holiday{
	special("Temporary Public Holiday", 2015, time.August, 14),
	special("Temporary Public Holiday", 2016, time.May, 6),
	special("Presidential Election Day", 2017, time.May, 9),
	special("Temporary Public Holiday", 2017, time.October, 2),
	special("Local Election Day", 2018, time.June, 13),
	special("National Assembly Election Day", 2020, time.April, 15),
	special("Temporary Public Holiday", 2020, time.August, 17),
	special("Presidential Election Day", 2022, time.March, 9),
	special("Local Election Day", 2022, time.June, 1),
	special("Temporary Public Holiday", 2023, time.October, 2),
	special("National Assembly Election Day", 2024, time.April, 10),
	special("Armed Forces Day", 2024, time.October, 1),
	special("Temporary Public Holiday", 2025, time.January, 27),
	special("Presidential Election Day", 2025, time.June, 3),
	special("Local Election Day", 2026, time.June, 3),
}

func special(name string, year int, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:      name,
		Type:      cal.ObservancePublic,
		StartYear: year,
		EndYear:   year,
		Month:     month,
		Day:       day,
		Func:      cal.CalcDayOfMonth,
	}
}
