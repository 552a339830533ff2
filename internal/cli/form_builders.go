package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/charmbracelet/huh"
)

// runCreateForm collects the manual entry fields interactively and fills
// in the request. Flag values already present are used as form defaults.
func runCreateForm(req *contract.CreateEntryRequest) error {
	var minutes string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project").
				Placeholder("ABC").
				Value(&req.Project).
				Validate(validateRequired("project")),
			huh.NewInput().
				Title("Minutes").
				Placeholder("30").
				Value(&minutes).
				Validate(validateMinutes),
			huh.NewInput().
				Title("Description").
				Value(&req.Description).
				Validate(validateRequired("description")),
			huh.NewInput().
				Title("Ticket (blank for none)").
				Placeholder("ABC-123").
				Value(&req.Ticket),
			huh.NewInput().
				Title("Day (YYYY-MM-DD, blank for today)").
				Value(&req.Day).
				Validate(validateOptionalDate),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	parsed, err := strconv.ParseFloat(minutes, 64)
	if err != nil {
		return fmt.Errorf("parsing minutes %q: %w", minutes, err)
	}
	req.Minutes = parsed
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateMinutes(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("must be YYYY-MM-DD")
	}
	return nil
}
