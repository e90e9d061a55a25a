package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/arnavshah/duty-planner-go/internal/app"
	apperrors "github.com/arnavshah/duty-planner-go/internal/errors"
	"github.com/arnavshah/duty-planner-go/pkg/models"
	"github.com/arnavshah/duty-planner-go/pkg/service"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const usage = `Usage: dutyctl <command> [flags]

Commands:
  generate   fill the open slots of a date
  confirm    confirm every assignment of a date
  show       print the schedule of a date
  coverage   report which slots of a date can be staffed

Flags:
`

// Opener builds the application from an optional config file path and
// returns the function releasing it
type Opener func(configPath string) (*app.App, func() error, error)

// exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitPartial = 3
)

func run(ctx context.Context, args []string, stdout, stderr io.Writer, open Opener) int {
	flags := pflag.NewFlagSet("dutyctl", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	date := flags.StringP("date", "d", models.FormatDate(time.Now().AddDate(0, 0, 1)), "schedule date (YYYY-MM-DD), tomorrow by default")
	output := flags.StringP("output", "o", "table", "output format: table, json or yaml")
	configPath := flags.StringP("config", "c", "", "config file (defaults to ./config.yaml)")
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}

	if len(args) == 0 {
		flags.Usage()
		return exitUsage
	}
	command := args[0]
	if err := flags.Parse(args[1:]); err != nil {
		return exitUsage
	}
	switch *output {
	case "table", "json", "yaml":
	default:
		fmt.Fprintf(stderr, "unknown output format %q\n", *output)
		return exitUsage
	}
	if _, err := models.ParseDate(*date); err != nil {
		fmt.Fprintln(stderr, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err))
		return exitUsage
	}

	var handler func(ctx context.Context, a *app.App) (interface{}, func(io.Writer), int, error)
	switch command {
	case "generate":
		handler = func(ctx context.Context, a *app.App) (interface{}, func(io.Writer), int, error) {
			result, err := a.Schedule.Generate(ctx, *date)
			if err != nil {
				return nil, nil, exitFailure, err
			}
			code := exitOK
			if !result.Complete() {
				code = exitPartial
			}
			return result, func(w io.Writer) { printOutcomes(w, result) }, code, nil
		}
	case "confirm":
		handler = func(ctx context.Context, a *app.App) (interface{}, func(io.Writer), int, error) {
			n, err := a.Schedule.Confirm(ctx, *date)
			if err != nil {
				return nil, nil, exitFailure, err
			}
			out := map[string]interface{}{"date": *date, "confirmed": n}
			return out, func(w io.Writer) { fmt.Fprintf(w, "%s: %d assignments confirmed\n", *date, n) }, exitOK, nil
		}
	case "show":
		handler = func(ctx context.Context, a *app.App) (interface{}, func(io.Writer), int, error) {
			view, err := a.Schedule.View(ctx, *date)
			if err != nil {
				return nil, nil, exitFailure, err
			}
			return view, func(w io.Writer) { printSchedule(w, view.Date, view.Confirmed, view.Assignments) }, exitOK, nil
		}
	case "coverage":
		handler = func(ctx context.Context, a *app.App) (interface{}, func(io.Writer), int, error) {
			coverage, err := a.Schedule.Coverage(ctx, *date)
			if err != nil {
				return nil, nil, exitFailure, err
			}
			return coverage, func(w io.Writer) { printCoverage(w, coverage) }, exitOK, nil
		}
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", command)
		flags.Usage()
		return exitUsage
	}

	a, closeApp, err := open(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}
	defer closeApp()

	value, table, code, err := handler(ctx, a)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		if apperrors.IsValidation(err) {
			return exitUsage
		}
		return exitFailure
	}

	if err := render(stdout, *output, value, table); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}
	return code
}

func render(w io.Writer, format string, value interface{}, table func(io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		table(w)
		return nil
	}
}

func printOutcomes(w io.Writer, result *models.GenerateResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SLOT\tROLE\tSTATUS\tPERSON\tDETAILS\n")
	for _, o := range result.Outcomes {
		person := "-"
		if o.PersonID != 0 {
			person = fmt.Sprint(o.PersonID)
		}
		details := o.Error
		if len(o.Reasons) > 0 {
			details = fmt.Sprint(o.Reasons)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", o.Slot, o.RequiredRole, o.Status, person, details)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%s: %d filled, %d already filled, %d unfilled, %d failed\n",
		result.Date, result.Filled(), result.AlreadyFilled(), result.Unfilled(), result.Failed())
}

func printSchedule(w io.Writer, date string, confirmed bool, rows []service.AssignmentView) {
	state := "draft"
	if confirmed {
		state = "confirmed"
	}
	fmt.Fprintf(w, "%s (%s)\n", date, state)
	if len(rows) == 0 {
		fmt.Fprintln(w, "no assignments")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SLOT\tTIME\tNAME\tRANK\tCONFIRMED\n")
	for _, a := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", a.Slot, a.TimeRange, a.PersonName, a.PersonRank, a.Confirmed)
	}
	tw.Flush()
}

func printCoverage(w io.Writer, coverage []models.SlotCoverage) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SLOT\tROLE\tFILLED\tELIGIBLE\n")
	for _, c := range coverage {
		eligible := fmt.Sprint(c.Eligible)
		if c.Filled {
			eligible = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", c.Slot, c.RequiredRole, c.Filled, eligible)
	}
	tw.Flush()
}
