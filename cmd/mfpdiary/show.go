package main

import (
	"fmt"

	"github.com/justyn/myfitnesspal"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	date, err := parseDate(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", myfitnesspal.ErrorMessage(err))
		return err
	}

	day, err := deps.Diary.Day(deps.Ctx, date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", myfitnesspal.ErrorMessage(err))
		return err
	}

	return writeDay(deps.Stdout, deps.Format, day)
}
