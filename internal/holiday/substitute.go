package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
)

// substituteRule describes when a holiday earns a substitute day off.
type substituteRule struct {
	// saturday extends the trigger from Sunday to the whole weekend.
	saturday bool
	// since is the first date the rule applies to.
	since Date
}

var (
	lunarRule    = substituteRule{since: Date{2014, time.January, 1}}
	childrenRule = substituteRule{saturday: true, since: Date{2014, time.January, 1}}
	nationalRule = substituteRule{saturday: true, since: Date{2021, time.August, 4}}
	lateRule     = substituteRule{saturday: true, since: Date{2023, time.May, 4}}
)

var substituteRules = map[*cal.Holiday]substituteRule{
	SeollalEve:              lunarRule,
	Seollal:                 lunarRule,
	SeollalAfter:            lunarRule,
	ChuseokEve:              lunarRule,
	Chuseok:                 lunarRule,
	ChuseokAfter:            lunarRule,
	ChildrensDay:            childrenRule,
	IndependenceMovementDay: nationalRule,
	LiberationDay:           nationalRule,
	NationalFoundationDay:   nationalRule,
	HangulDay:               nationalRule,
	BuddhasBirthday:         lateRule,
	ChristmasDay:            lateRule,
}

const substitutePrefix = "Alternative holiday for "

// addSubstitutes grants substitute days for the actual holidays in byDate.
// Dates are visited in order so that a later substitute skips the ones
// already granted.
func addSubstitutes(set *Set, byDate map[Date][]*cal.Holiday) {
	dates := make([]Date, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sortDates(dates)

	for _, d := range dates {
		h := substituteTrigger(d, byDate[d])
		if h == nil {
			continue
		}
		set.Add(nextFreeDay(*set, d), substitutePrefix+h.Name)
	}
}

// substituteTrigger returns the holiday on d whose rule earns a substitute,
// or nil when none does.
func substituteTrigger(d Date, observed []*cal.Holiday) *cal.Holiday {
	wd := d.Weekday()
	for _, h := range observed {
		rule, ok := substituteRules[h]
		if !ok || d.Before(rule.since) {
			continue
		}
		if wd == time.Sunday || (rule.saturday && wd == time.Saturday) || len(observed) > 1 {
			return h
		}
	}
	return nil
}

// nextFreeDay returns the first weekday after d that is not yet a holiday.
func nextFreeDay(set Set, d Date) Date {
	next := d.AddDays(1)
	for next.IsWeekend() || set.Contains(next) {
		next = next.AddDays(1)
	}
	return next
}
