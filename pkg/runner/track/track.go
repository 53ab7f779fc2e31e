package track

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/form/forms"
	"tableflip.dev/workout/pkg/printers"
)

// NewGoal creates a goal from raw field input.
type NewGoal struct {
	Service *app.Service
	Name    string
	Target  string
	Count   string
	Units   string

	JSON bool
}

func (n *NewGoal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not track goal, no persistence")
	}

	f := forms.NewGoal()
	f.Change(forms.GoalName, n.Name)
	f.Change(forms.GoalTarget, n.Target)
	f.Change(forms.GoalCount, n.Count)
	f.Change(forms.GoalUnits, n.Units)
	draft, err := f.Draft()
	if err != nil {
		return err
	}

	if _, err := n.Service.CreateGoal(ctx, draft); err != nil {
		return err
	}
	return goals(ctx, n.Service, true, n.JSON)
}

// StepGoal moves the count of a goal up by By, or down when Down is set.
type StepGoal struct {
	Service *app.Service
	ID      int64
	By      int
	Down    bool

	JSON bool
}

func (n *StepGoal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not track goal, no persistence")
	}

	by := n.By
	if by <= 0 {
		by = 1
	}
	step := n.Service.IncrementGoal
	if n.Down {
		step = n.Service.DecrementGoal
	}
	g, err := step(ctx, n.ID, by)
	if err != nil {
		return err
	}
	if g.Done() && !n.Down && !n.JSON {
		_, _ = color.New(color.FgGreen, color.Bold).Fprintf(color.Output, "\n%s reached!\n", g.Name)
	}
	return goals(ctx, n.Service, false, n.JSON)
}

// Goals lists every goal.
type Goals struct {
	Service *app.Service

	ShowID bool
	JSON   bool
}

func (n *Goals) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list goals, no persistence")
	}
	return goals(ctx, n.Service, n.ShowID, n.JSON)
}

// RemoveGoal deletes a goal.
type RemoveGoal struct {
	Service *app.Service
	ID      int64
}

func (n *RemoveGoal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove goal, no persistence")
	}
	if err := n.Service.DeleteGoal(ctx, n.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "removed goal %d\n", n.ID)
	return nil
}

func goals(ctx context.Context, svc *app.Service, showID, asJSON bool) error {
	all, err := svc.Goals(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	if asJSON {
		return pp.JSON(all)
	}
	pp.NewLine()
	pp.Goals(all...)
	return nil
}

// NewRecord logs a personal record. Units default to those of the last
// record with the same name.
type NewRecord struct {
	Service *app.Service
	Name    string
	Count   string
	Units   string

	JSON bool
}

func (n *NewRecord) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not track record, no persistence")
	}

	f := forms.NewRecord()
	if n.Units == "" {
		f.Seed(forms.RecordSeed{Name: n.Name, Units: n.lastUnits(ctx)})
	}
	f.Change(forms.RecordName, n.Name)
	f.Change(forms.RecordCount, n.Count)
	if n.Units != "" {
		f.Change(forms.RecordUnits, n.Units)
	}
	draft, err := f.Draft()
	if err != nil {
		return err
	}

	if _, err := n.Service.AddRecord(ctx, draft); err != nil {
		return err
	}
	return records(ctx, n.Service, false, n.JSON)
}

func (n *NewRecord) lastUnits(ctx context.Context) string {
	groups, err := n.Service.RecordsByName(ctx)
	if err != nil {
		return ""
	}
	for _, g := range groups {
		if g.Name == n.Name && len(g.Entries) > 0 {
			return g.Entries[0].Units
		}
	}
	return ""
}

// Records lists personal records grouped by name.
type Records struct {
	Service *app.Service

	ShowID bool
	JSON   bool
}

func (n *Records) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list records, no persistence")
	}
	return records(ctx, n.Service, n.ShowID, n.JSON)
}

func records(ctx context.Context, svc *app.Service, showID, asJSON bool) error {
	groups, err := svc.RecordsByName(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: showID}
	if asJSON {
		return pp.JSON(groups)
	}
	pp.NewLine()
	pp.Records(groups...)
	return nil
}
