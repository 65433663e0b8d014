package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/breath"
	"github.com/ayoisaiah/breathe/internal/apperr"
	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/internal/ui"
)

const (
	planStep      = time.Millisecond
	maxPlanBreath = 100
	maxPlanInhale = 5 * time.Minute
)

var (
	errInvalidInhale = &apperr.Error{
		Message: "inhale must be between 0 and %v, got %v",
	}

	errInvalidBreaths = &apperr.Error{
		Message: "breaths must be between 1 and %d, got %d",
	}
)

// Step is one phase of a simulated session.
type Step struct {
	Phase    string        `json:"phase"`
	Breath   int           `json:"breath"`
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
}

// Plan simulates a session whose breaths are locked to inhale until the
// given number of breaths has been completed. The clock jumps one step past
// each phase deadline, the first instant a frame clock ticking every
// planStep would observe the transition.
func Plan(inhale time.Duration, breaths int) ([]Step, error) {
	if inhale <= 0 || inhale > maxPlanInhale {
		return nil, errInvalidInhale.Fmt(maxPlanInhale, inhale)
	}

	if breaths < 1 || breaths > maxPlanBreath {
		return nil, errInvalidBreaths.Fmt(maxPlanBreath, breaths)
	}

	c := breath.New(breath.WithLock(inhale))

	c.Activate(0)
	c.Activate(0)

	steps := []Step{{Phase: breath.Breathing.String(), Breath: 1}}

	for c.Breaths() < breaths {
		deadline, ok := c.Deadline()
		if !ok {
			break
		}

		now := deadline + planStep
		f := c.Tick(now)

		last := &steps[len(steps)-1]
		if f.State.String() == last.Phase {
			continue
		}

		last.Duration = now - last.Start

		if f.Breaths == breaths {
			break
		}

		steps = append(steps, Step{
			Phase:  f.State.String(),
			Breath: f.Breaths + 1,
			Start:  now,
		})
	}

	return steps, nil
}

func planRows(steps []Step) [][]string {
	rows := [][]string{{"BREATH", "PHASE", "START", "DURATION"}}

	for _, s := range steps {
		rows = append(rows, []string{
			fmt.Sprint(s.Breath),
			s.Phase,
			timeutil.FormatSeconds(s.Start) + "s",
			timeutil.FormatSeconds(s.Duration) + "s",
		})
	}

	return rows
}

func writePlan(w io.Writer, steps []Step, asJSON bool) error {
	if !asJSON {
		ui.PrintTable(planRows(steps), w)

		var total time.Duration
		for _, s := range steps {
			total += s.Duration
		}

		_, err := fmt.Fprintf(
			w,
			"%s %s\n",
			ui.Yellow("Total:"),
			ui.Green(timeutil.FormatSeconds(total)+"s"),
		)

		return err
	}

	b, err := json.Marshal(steps)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// planAction prints the phases of a simulated session.
func planAction(ctx *cli.Context) error {
	steps, err := Plan(ctx.Duration("inhale"), ctx.Int("breaths"))
	if err != nil {
		return err
	}

	return writePlan(config.Stdout, steps, ctx.Bool("json"))
}
