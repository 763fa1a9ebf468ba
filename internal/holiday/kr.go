package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Korean public holidays.
var (
	NewYear = &cal.Holiday{
		Name:  "New Year's Day",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}

	SeollalEve = &cal.Holiday{
		Name: "The day preceding Korean New Year",
		Type: cal.ObservancePublic,
		Func: calcLunar(seollalDates, -1),
	}

	Seollal = &cal.Holiday{
		Name: "Korean New Year",
		Type: cal.ObservancePublic,
		Func: calcLunar(seollalDates, 0),
	}

	SeollalAfter = &cal.Holiday{
		Name: "The second day of Korean New Year",
		Type: cal.ObservancePublic,
		Func: calcLunar(seollalDates, 1),
	}

	IndependenceMovementDay = &cal.Holiday{
		Name:  "Independence Movement Day",
		Type:  cal.ObservancePublic,
		Month: time.March,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}

	ChildrensDay = &cal.Holiday{
		Name:  "Children's Day",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   5,
		Func:  cal.CalcDayOfMonth,
	}

	BuddhasBirthday = &cal.Holiday{
		Name: "Buddha's Birthday",
		Type: cal.ObservancePublic,
		Func: calcLunar(buddhasBirthdayDates, 0),
	}

	MemorialDay = &cal.Holiday{
		Name:  "Memorial Day",
		Type:  cal.ObservancePublic,
		Month: time.June,
		Day:   6,
		Func:  cal.CalcDayOfMonth,
	}

	LiberationDay = &cal.Holiday{
		Name:  "Liberation Day",
		Type:  cal.ObservancePublic,
		Month: time.August,
		Day:   15,
		Func:  cal.CalcDayOfMonth,
	}

	ChuseokEve = &cal.Holiday{
		Name: "The day preceding Chuseok",
		Type: cal.ObservancePublic,
		Func: calcLunar(chuseokDates, -1),
	}

	Chuseok = &cal.Holiday{
		Name: "Chuseok",
		Type: cal.ObservancePublic,
		Func: calcLunar(chuseokDates, 0),
	}

	ChuseokAfter = &cal.Holiday{
		Name: "The second day of Chuseok",
		Type: cal.ObservancePublic,
		Func: calcLunar(chuseokDates, 1),
	}

	NationalFoundationDay = &cal.Holiday{
		Name:  "National Foundation Day",
		Type:  cal.ObservancePublic,
		Month: time.October,
		Day:   3,
		Func:  cal.CalcDayOfMonth,
	}

	HangulDay = &cal.Holiday{
		Name:  "Hangul Day",
		Type:  cal.ObservancePublic,
		Month: time.October,
		Day:   9,
		Func:  cal.CalcDayOfMonth,
	}

	ChristmasDay = &cal.Holiday{
		Name:  "Christmas Day",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}

	// Holidays lists every Korean public holiday in calendar order.
	Holidays = []*cal.Holiday{
		NewYear,
		SeollalEve,
		Seollal,
		SeollalAfter,
		IndependenceMovementDay,
		ChildrensDay,
		BuddhasBirthday,
		MemorialDay,
		LiberationDay,
		ChuseokEve,
		Chuseok,
		ChuseokAfter,
		NationalFoundationDay,
		HangulDay,
		ChristmasDay,
	}
)
