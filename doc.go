// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chronology provides calendar-neutral date and time field
// resolution. A Store accumulates loosely typed field values (year,
// day-of-year, hour-of-am-pm, offset-seconds and so on, possibly
// redundant or conflicting) and a Resolver reduces them to a canonical
// date, time of day and offset for a given calendar system. The four
// calendar systems in the calendar package (ISO, Hijrah, Minguo and
// Thai Buddhist) implement the Chronology interface defined here.
//
// Resolution is a fixed-point computation: each field in the catalog
// carries a resolution rule describing how it combines with other
// fields to produce more fundamental ones (for example year and
// day-of-year combine to month-of-year and day-of-month). Rules are
// re-examined via a work list as new fields appear, until no further
// rule can fire. Conflicting values for the same logical field are
// reported as errors rather than silently overwritten.
package chronology
