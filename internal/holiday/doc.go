// Package holiday answers which calendar dates are Korean public holidays.
// Fixed-date holidays are defined with github.com/rickar/cal/v2, lunar
// holidays come from a maintained table of Gregorian dates, and substitute
// holidays are derived once every actual holiday of a year is known.
package holiday
