package migrate

import (
	"context"
	"errors"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/printers"
	"tableflip.dev/workout/pkg/runner/get"
	"tableflip.dev/workout/pkg/timeutil"
)

// Candidates lists the failed days between Since and Until that still hold
// unfinished exercises.
type Candidates struct {
	Service *app.Service
	Since   timeutil.Date
	Until   timeutil.Date

	ShowID bool
	JSON   bool
}

func (n *Candidates) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not migrate, no persistence")
	}

	candidates, err := n.Service.MigrationCandidates(ctx, n.Since, n.Until)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.JSON {
		return pp.JSON(candidates)
	}
	pp.NewLine()
	pp.Migration(candidates...)
	return nil
}

// Migrate copies the unfinished exercises of From onto To and prints To.
type Migrate struct {
	Service *app.Service
	From    timeutil.Date
	To      timeutil.Date

	ShowID bool
	JSON   bool
}

func (n *Migrate) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not migrate, no persistence")
	}
	if _, err := n.Service.Migrate(ctx, n.From, n.To); err != nil {
		return err
	}
	g := get.Get{Service: n.Service, Date: n.To, ShowID: n.ShowID, JSON: n.JSON}
	return g.Do(ctx)
}
