// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datecalc resolves date-time fields, converts dates between
// calendar systems and computes the period between dates.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/chronology"
	"cloudeng.io/chronology/calendar"
	"cloudeng.io/chronology/period"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

type resolveFlags struct {
	Calendar   string `subcmd:"calendar,iso,calendar system to resolve against"`
	Deviations string `subcmd:"hijrah-deviations,,file containing hijrah deviation entries"`
}

type convertFlags struct {
	From       string `subcmd:"from,iso,calendar system to convert from"`
	To         string `subcmd:"to,iso,calendar system to convert to"`
	Deviations string `subcmd:"hijrah-deviations,,file containing hijrah deviation entries"`
}

type betweenFlags struct {
	Calendar string `subcmd:"calendar,iso,calendar system for both dates"`
}

func init() {
	resolveFlagSet := subcmd.NewFlagSet()
	resolveFlagSet.MustRegisterFlagStruct(&resolveFlags{}, nil, nil)
	convertFlagSet := subcmd.NewFlagSet()
	convertFlagSet.MustRegisterFlagStruct(&convertFlags{}, nil, nil)
	betweenFlagSet := subcmd.NewFlagSet()
	betweenFlagSet.MustRegisterFlagStruct(&betweenFlags{}, nil, nil)

	resolveCmd := subcmd.NewCommand("resolve", resolveFlagSet, resolveFields)
	resolveCmd.Document("resolve field=value assignments to a date and time", "<field=value>+")

	convertCmd := subcmd.NewCommand("convert", convertFlagSet, convertDate, subcmd.ExactlyNumArguments(1))
	convertCmd.Document("convert a date between calendar systems", "<date>")

	betweenCmd := subcmd.NewCommand("between", betweenFlagSet, betweenDates, subcmd.ExactlyNumArguments(2))
	betweenCmd.Document("compute the period between two dates", "<start> <end>")

	cmdSet = subcmd.NewCommandSet(resolveCmd, convertCmd, betweenCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func chronologyFor(name, deviations string) (chronology.Chronology, error) {
	switch name {
	case "iso":
		return calendar.ISO(), nil
	case "minguo":
		return calendar.Minguo(), nil
	case "thaibuddhist":
		return calendar.ThaiBuddhist(), nil
	case "hijrah":
		if len(deviations) == 0 {
			return calendar.NewHijrah(), nil
		}
		data, err := os.ReadFile(deviations)
		if err != nil {
			return nil, err
		}
		table, err := calendar.ParseDeviations(data)
		if err != nil {
			return nil, err
		}
		return calendar.NewHijrah(calendar.WithDeviations(table)), nil
	}
	return nil, fmt.Errorf("unknown calendar system: %q", name)
}

func resolveFields(_ context.Context, values interface{}, args []string) error {
	fv := values.(*resolveFlags)
	chrono, err := chronologyFor(fv.Calendar, fv.Deviations)
	if err != nil {
		return err
	}
	store := chronology.NewStore()
	for _, arg := range args {
		name, val, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%q: expected field=value", arg)
		}
		field := chronology.LookupField(name)
		if field == nil {
			return fmt.Errorf("unknown field %q", name)
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("%q: invalid value: %v", arg, err)
		}
		if err := store.Add(field, n); err != nil {
			return err
		}
	}
	resolved, err := chronology.Resolve(store, chrono)
	if err != nil {
		return err
	}
	if resolved.HasDate {
		fmt.Printf("date: %v (%v)\n", resolved.Date, resolved.Date.Weekday())
	}
	fmt.Printf("time: %v\n", resolved.Time)
	if resolved.HasOffset {
		fmt.Printf("offset: %v\n", resolved.Offset)
	}
	if resolved.Remaining.Len() > 0 {
		fmt.Printf("unresolved: %v\n", resolved.Remaining)
	}
	return nil
}

func convertDate(_ context.Context, values interface{}, args []string) error {
	fv := values.(*convertFlags)
	from, err := chronologyFor(fv.From, fv.Deviations)
	if err != nil {
		return err
	}
	to, err := chronologyFor(fv.To, fv.Deviations)
	if err != nil {
		return err
	}
	var date chronology.Date
	if err := date.Parse(from, args[0]); err != nil {
		return err
	}
	converted, err := date.Convert(to)
	if err != nil {
		return err
	}
	fmt.Printf("%v (epoch day %d)\n", converted, converted.EpochDay())
	return nil
}

func betweenDates(_ context.Context, values interface{}, args []string) error {
	fv := values.(*betweenFlags)
	chrono, err := chronologyFor(fv.Calendar, "")
	if err != nil {
		return err
	}
	var start, end chronology.Date
	if err := start.Parse(chrono, args[0]); err != nil {
		return err
	}
	if err := end.Parse(chrono, args[1]); err != nil {
		return err
	}
	p, err := period.Between(start, end)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", p)
	return nil
}
