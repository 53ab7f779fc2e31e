package workout

import (
	"sort"
	"time"
)

// Goal tracks progress towards a numeric target.
type Goal struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Target    int       `json:"target"`
	Count     int       `json:"count"`
	Units     string    `json:"units,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Done reports whether the target was reached.
func (g Goal) Done() bool {
	return g.Target > 0 && g.Count >= g.Target
}

// Progress returns Count/Target capped to [0, 1].
func (g Goal) Progress() float64 {
	if g.Target <= 0 || g.Count <= 0 {
		return 0
	}
	if g.Count >= g.Target {
		return 1
	}
	return float64(g.Count) / float64(g.Target)
}

// Record is an append-only personal record entry.
type Record struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	Units     string    `json:"units,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SortGoals orders goals oldest first.
func SortGoals(goals []Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		if !goals[i].CreatedAt.Equal(goals[j].CreatedAt) {
			return goals[i].CreatedAt.Before(goals[j].CreatedAt)
		}
		return goals[i].ID < goals[j].ID
	})
}

// SortRecords orders records newest first.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID > records[j].ID
	})
}

// Best returns the highest record per name. Ties keep the earliest entry.
func Best(records []Record) map[string]Record {
	best := make(map[string]Record, len(records))
	for _, r := range records {
		current, ok := best[r.Name]
		if !ok || r.Count > current.Count || (r.Count == current.Count && r.CreatedAt.Before(current.CreatedAt)) {
			best[r.Name] = r
		}
	}
	return best
}
