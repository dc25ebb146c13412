package main

import (
	"context"
	"io"
	"time"

	"github.com/justyn/myfitnesspal"
	"github.com/justyn/myfitnesspal/diary"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Format string
	Diary  *diary.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Pages       string `short:"d" env:"MFPDIARY_PAGES" default:"." help:"Directory of saved diary pages named YYYY-MM-DD.html"`
	Format      string `short:"o" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
	Concurrency int    `short:"c" default:"4" help:"Dates to extract at once"`
	Verbose     bool   `short:"v" help:"Log every page read"`

	Show  ShowCmd  `cmd:"" help:"Show the diary for a date"`
	Range RangeCmd `cmd:"" help:"Show the diaries for a range of dates"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Date string `arg:"" help:"Diary date (YYYY-MM-DD)"`
}

// RangeCmd is the "range" subcommand.
type RangeCmd struct {
	From string `arg:"" help:"First date (YYYY-MM-DD)"`
	To   string `arg:"" help:"Last date, inclusive (YYYY-MM-DD)"`
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(myfitnesspal.DateLayout, s)
	if err != nil {
		return time.Time{}, myfitnesspal.Errorf(myfitnesspal.EINVALID, "invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
