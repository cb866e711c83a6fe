package simulation

import (
	"fmt"
	"time"

	"github.com/urbanclimate/uwgo/pkg/errors"
)

// RunPeriod describes the span of the year over which the simulation runs.
// Leap days are not simulated; February is always 28 days.
type RunPeriod struct {
	StartMonth int `json:"start_month" yaml:"start_month"`
	StartDay   int `json:"start_day" yaml:"start_day"`
	EndMonth   int `json:"end_month" yaml:"end_month"`
	EndDay     int `json:"end_day" yaml:"end_day"`
}

// WholeYear returns a run period covering 1 Jan through 31 Dec.
func WholeYear() RunPeriod {
	return RunPeriod{StartMonth: 1, StartDay: 1, EndMonth: 12, EndDay: 31}
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// dayOfYear returns the 1-based day of a non-leap year.
func dayOfYear(month, day int) int {
	doy := day
	for m := 0; m < month-1; m++ {
		doy += daysPerMonth[m]
	}
	return doy
}

// Validate checks that both dates exist and that the start is not after
// the end.
func (r RunPeriod) Validate() error {
	if err := checkDate(r.StartMonth, r.StartDay, "start"); err != nil {
		return err
	}
	if err := checkDate(r.EndMonth, r.EndDay, "end"); err != nil {
		return err
	}
	if dayOfYear(r.StartMonth, r.StartDay) > dayOfYear(r.EndMonth, r.EndDay) {
		return errors.NewValidationError(
			"run_period", r.String(), "start date must not be after end date")
	}
	return nil
}

func checkDate(month, day int, name string) error {
	if month < 1 || month > 12 {
		return errors.NewValidationError(
			name+"_month", month, "must be between 1 and 12")
	}
	if day < 1 || day > daysPerMonth[month-1] {
		return errors.NewValidationError(
			name+"_day", day,
			fmt.Sprintf("must be between 1 and %d for %s",
				daysPerMonth[month-1], time.Month(month)))
	}
	return nil
}

// DayCount returns the number of days in the run period, inclusive of
// both endpoints.
func (r RunPeriod) DayCount() int {
	return dayOfYear(r.EndMonth, r.EndDay) - dayOfYear(r.StartMonth, r.StartDay) + 1
}

// String formats the run period like "1 Jan - 31 Dec".
func (r RunPeriod) String() string {
	return fmt.Sprintf("%d %s - %d %s",
		r.StartDay, time.Month(r.StartMonth).String()[:3],
		r.EndDay, time.Month(r.EndMonth).String()[:3])
}
