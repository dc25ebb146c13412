package main

import (
	"fmt"

	"github.com/justyn/myfitnesspal"
)

// Run executes the range command.
func (c *RangeCmd) Run(deps *Dependencies) error {
	from, err := parseDate(c.From)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", myfitnesspal.ErrorMessage(err))
		return err
	}
	to, err := parseDate(c.To)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", myfitnesspal.ErrorMessage(err))
		return err
	}

	days, err := deps.Diary.Days(deps.Ctx, from, to)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", myfitnesspal.ErrorMessage(err))
		return err
	}

	return writeDays(deps.Stdout, deps.Format, days)
}
