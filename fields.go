// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

import "fmt"

// Field is an immutable descriptor of a date-time field such as
// month-of-year or hour-of-am-pm. Fields are compared by identity; the
// catalog of standard fields below is initialized once at startup and
// never mutated. Additional fields may be registered at init time via
// RegisterField.
type Field struct {
	name      string
	baseUnit  Unit
	rangeUnit Unit
	rng       Range
	resolve   ResolveFunc
}

func (f *Field) Name() string { return f.name }
func (f *Field) BaseUnit() Unit { return f.baseUnit }
func (f *Field) RangeUnit() Unit { return f.rangeUnit }
func (f *Field) Range() Range { return f.rng }

func (f *Field) String() string { return f.name }

// The standard field catalog. Ranges follow ISO conventions; day-of-month
// and day-of-year report their context-sensitive maximum once a year and
// month are known (see Resolver).
var (
	NanoOfSecond  = &Field{name: "nano-of-second", baseUnit: Nanos, rangeUnit: Seconds, rng: NewRange(0, 999_999_999)}
	NanoOfDay     = &Field{name: "nano-of-day", baseUnit: Nanos, rangeUnit: Days, rng: NewRange(0, 86_400_000_000_000-1)}
	MicroOfSecond = &Field{name: "micro-of-second", baseUnit: Micros, rangeUnit: Seconds, rng: NewRange(0, 999_999)}
	MicroOfDay    = &Field{name: "micro-of-day", baseUnit: Micros, rangeUnit: Days, rng: NewRange(0, 86_400_000_000-1)}
	MilliOfSecond = &Field{name: "milli-of-second", baseUnit: Millis, rangeUnit: Seconds, rng: NewRange(0, 999)}
	MilliOfDay    = &Field{name: "milli-of-day", baseUnit: Millis, rangeUnit: Days, rng: NewRange(0, 86_400_000-1)}

	SecondOfMinute = &Field{name: "second-of-minute", baseUnit: Seconds, rangeUnit: Minutes, rng: NewRange(0, 59)}
	SecondOfDay    = &Field{name: "second-of-day", baseUnit: Seconds, rangeUnit: Days, rng: NewRange(0, 86_400-1)}
	MinuteOfHour   = &Field{name: "minute-of-hour", baseUnit: Minutes, rangeUnit: Hours, rng: NewRange(0, 59)}
	MinuteOfDay    = &Field{name: "minute-of-day", baseUnit: Minutes, rangeUnit: Days, rng: NewRange(0, 1440-1)}

	HourOfAMPM      = &Field{name: "hour-of-am-pm", baseUnit: Hours, rangeUnit: HalfDays, rng: NewRange(0, 11)}
	ClockHourOfAMPM = &Field{name: "clock-hour-of-am-pm", baseUnit: Hours, rangeUnit: HalfDays, rng: NewRange(1, 12)}
	HourOfDay       = &Field{name: "hour-of-day", baseUnit: Hours, rangeUnit: Days, rng: NewRange(0, 23)}
	ClockHourOfDay  = &Field{name: "clock-hour-of-day", baseUnit: Hours, rangeUnit: Days, rng: NewRange(1, 24)}
	AMPMOfDay       = &Field{name: "am-pm-of-day", baseUnit: HalfDays, rangeUnit: Days, rng: NewRange(0, 1)}

	DayOfWeek               = &Field{name: "day-of-week", baseUnit: Days, rangeUnit: Weeks, rng: NewRange(1, 7)}
	AlignedDayOfWeekInMonth = &Field{name: "aligned-day-of-week-in-month", baseUnit: Days, rangeUnit: Weeks, rng: NewRange(1, 7)}
	AlignedDayOfWeekInYear  = &Field{name: "aligned-day-of-week-in-year", baseUnit: Days, rangeUnit: Weeks, rng: NewRange(1, 7)}
	DayOfMonth              = &Field{name: "day-of-month", baseUnit: Days, rangeUnit: Months, rng: NewVariableRange(1, 28, 31)}
	DayOfYear               = &Field{name: "day-of-year", baseUnit: Days, rangeUnit: Years, rng: NewVariableRange(1, 365, 366)}
	EpochDay                = &Field{name: "epoch-day", baseUnit: Days, rangeUnit: Forever, rng: NewRange(-365_243_219_162, 365_241_780_471)}

	AlignedWeekOfMonth = &Field{name: "aligned-week-of-month", baseUnit: Weeks, rangeUnit: Months, rng: NewVariableRange(1, 4, 5)}
	AlignedWeekOfYear  = &Field{name: "aligned-week-of-year", baseUnit: Weeks, rangeUnit: Years, rng: NewRange(1, 53)}

	MonthOfYear    = &Field{name: "month-of-year", baseUnit: Months, rangeUnit: Years, rng: NewRange(1, 12)}
	ProlepticMonth = &Field{name: "proleptic-month", baseUnit: Months, rangeUnit: Forever, rng: NewRange(-11_999_999_988, 11_999_999_999)}
	YearOfEra      = &Field{name: "year-of-era", baseUnit: Years, rangeUnit: Eras, rng: NewVariableRange(1, 999_999_999, 1_000_000_000)}
	Year           = &Field{name: "year", baseUnit: Years, rangeUnit: Forever, rng: NewRange(-999_999_999, 999_999_999)}
	Era            = &Field{name: "era", baseUnit: Eras, rangeUnit: Forever, rng: NewRange(0, 1)}

	OffsetSeconds = &Field{name: "offset-seconds", baseUnit: Seconds, rangeUnit: Forever, rng: NewRange(-18*3600, 18*3600)}
)

var catalog []*Field
var fieldsByName map[string]*Field

// Resolution rules are attached here rather than in the Field literals to
// keep the initialization order acyclic: the rules refer back to the
// fields they combine with.
func init() {
	NanoOfDay.resolve = resolveNanoOfDay
	MicroOfSecond.resolve = resolveMicroOfSecond
	MicroOfDay.resolve = resolveMicroOfDay
	MilliOfSecond.resolve = resolveMilliOfSecond
	MilliOfDay.resolve = resolveMilliOfDay
	SecondOfDay.resolve = resolveSecondOfDay
	MinuteOfDay.resolve = resolveMinuteOfDay
	ClockHourOfAMPM.resolve = resolveClockHourOfAMPM
	ClockHourOfDay.resolve = resolveClockHourOfDay
	HourOfAMPM.resolve = resolveAMPM
	AMPMOfDay.resolve = resolveAMPM
	EpochDay.resolve = resolveEpochDay
	ProlepticMonth.resolve = resolveProlepticMonth
	Era.resolve = resolveYearOfEra
	YearOfEra.resolve = resolveYearOfEra
	for _, f := range []*Field{
		Year, MonthOfYear, DayOfMonth, DayOfYear, DayOfWeek,
		AlignedWeekOfYear, AlignedDayOfWeekInYear,
		AlignedWeekOfMonth, AlignedDayOfWeekInMonth,
	} {
		f.resolve = resolveDateCombinations
	}
	OffsetSeconds.resolve = resolveOffsetSeconds

	catalog = []*Field{
		NanoOfSecond, NanoOfDay, MicroOfSecond, MicroOfDay,
		MilliOfSecond, MilliOfDay, SecondOfMinute, SecondOfDay,
		MinuteOfHour, MinuteOfDay, HourOfAMPM, ClockHourOfAMPM,
		HourOfDay, ClockHourOfDay, AMPMOfDay, DayOfWeek,
		AlignedDayOfWeekInMonth, AlignedDayOfWeekInYear, DayOfMonth,
		DayOfYear, EpochDay, AlignedWeekOfMonth, AlignedWeekOfYear,
		MonthOfYear, ProlepticMonth, YearOfEra, Year, Era, OffsetSeconds,
	}
	fieldsByName = make(map[string]*Field, len(catalog))
	for _, f := range catalog {
		fieldsByName[f.name] = f
	}
}

// Fields returns the current catalog of fields.
func Fields() []*Field {
	r := make([]*Field, len(catalog))
	copy(r, catalog)
	return r
}

// LookupField returns the field with the given name, or nil.
func LookupField(name string) *Field {
	return fieldsByName[name]
}

// RegisterField adds an externally defined field (for example a
// locale-specific week-of-week-based-year) to the catalog. resolve may be
// nil for fields with no resolution rule. Registration must complete
// before any Resolver runs, typically from an init function; the catalog
// is read-only thereafter and RegisterField is not safe for concurrent
// use.
func RegisterField(name string, base, rangeUnit Unit, rng Range, resolve ResolveFunc) (*Field, error) {
	if _, ok := fieldsByName[name]; ok {
		return nil, fmt.Errorf("field %q is already registered", name)
	}
	f := &Field{name: name, baseUnit: base, rangeUnit: rangeUnit, rng: rng, resolve: resolve}
	catalog = append(catalog, f)
	fieldsByName[name] = f
	return f, nil
}
