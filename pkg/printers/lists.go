package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/glyph"
	"tableflip.dev/workout/pkg/workout"
)

const barWidth = 20

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	return tbl
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) id(id int64) string {
	return color.New(color.FgHiYellow, color.Italic, color.Faint).Sprint(id)
}

// Presets prints every preset followed by its exercises.
func (pp *PrettyPrint) Presets(presets ...workout.Preset) {
	pp.TitleWithCount("Presets", len(presets), "preset", "presets")
	if len(presets) == 0 {
		pp.none()
		return
	}
	for _, p := range presets {
		name := color.New(color.Bold).Sprint(p.Name)
		if pp.ShowID {
			name = pp.id(p.ID) + strings.Repeat(" ", max(1, len(spacing)-len(fmt.Sprint(p.ID)))) + name
		}
		_, _ = fmt.Fprintln(pp.out(), name)
		if len(p.Exercises) == 0 {
			pp.none()
			continue
		}
		tbl := pp.table()
		for _, e := range p.Exercises {
			row := []interface{}{glyph.Type(e.Type), e.Name, amount(e.Type, e.Reps, e.Sets), rest(e.Rest)}
			if pp.ShowID {
				row = append([]interface{}{pp.id(e.ID)}, row...)
			}
			tbl.AddRow(row...)
		}
		pp.flush(tbl)
	}
}

func bar(progress float64) string {
	filled := int(progress * barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func units(u string) string {
	if u == "" {
		return ""
	}
	return " " + u
}

// Goals prints each goal with a progress bar.
func (pp *PrettyPrint) Goals(goals ...workout.Goal) {
	pp.TitleWithCount("Goals", len(goals), "goal", "goals")
	if len(goals) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, g := range goals {
		c := color.New(color.FgYellow)
		if g.Done() {
			c = color.New(color.FgGreen)
		}
		row := []interface{}{g.Name, c.Sprint(bar(g.Progress())), fmt.Sprintf("%d/%d%s", g.Count, g.Target, units(g.Units))}
		if pp.ShowID {
			row = append([]interface{}{pp.id(g.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	pp.flush(tbl)
}

// Records prints the best value of each record name and its history.
func (pp *PrettyPrint) Records(groups ...app.RecordGroup) {
	pp.TitleWithCount("Records", len(groups), "record", "records")
	if len(groups) == 0 {
		pp.none()
		return
	}
	best := color.New(color.Bold, color.FgGreen)
	faint := color.New(color.Faint)
	tbl := pp.table()
	for _, g := range groups {
		tbl.AddRow(color.New(color.Bold).Sprint(g.Name), best.Sprintf("%d%s", g.Best.Count, units(g.Best.Units)), g.Best.CreatedAt.Format("2006-01-02"))
		for _, r := range g.Entries {
			if r.ID == g.Best.ID {
				continue
			}
			row := []interface{}{"", faint.Sprintf("%d%s", r.Count, units(r.Units)), faint.Sprint(r.CreatedAt.Format("2006-01-02"))}
			if pp.ShowID {
				row = append(row, pp.id(r.ID))
			}
			tbl.AddRow(row...)
		}
	}
	pp.flush(tbl)
}

// Report prints the status totals of a report followed by one line per day.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	pp.Title(fmt.Sprintf("Report %s to %s", r.Since, r.Until))
	tbl := pp.table()
	for _, s := range workout.AllStatuses() {
		c := statusColor(s)
		tbl.AddRow(c.Sprint(glyph.Status(s)), c.Sprint(s), r.Counts[s])
	}
	tbl.AddRow("", "sets", fmt.Sprintf("%d/%d", r.Completed, r.Target))
	pp.flush(tbl)

	if len(r.Days) == 0 {
		pp.none()
		return
	}
	tbl = pp.table()
	for _, d := range r.Days {
		c := statusColor(d.Status)
		tbl.AddRow(c.Sprint(glyph.Status(d.Status)), d.Day.Date.Format(dayLayout), fmt.Sprintf("%d/%d sets", d.Completed, d.Target))
	}
	pp.flush(tbl)
}

// Migration prints the failed days that still have unfinished exercises.
func (pp *PrettyPrint) Migration(candidates ...app.MigrationCandidate) {
	pp.TitleWithCount("Unfinished", len(candidates), "day", "days")
	if len(candidates) == 0 {
		pp.none()
		return
	}
	for _, c := range candidates {
		_, _ = color.New(color.Bold).Fprintln(pp.out(), c.Day.Date.Format(dayLayout))
		pp.Exercises(c.Remaining...)
	}
}
