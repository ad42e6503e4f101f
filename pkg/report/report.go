// Package report accumulates (variant, best time) rows and renders them as
// a terminal table.
//
// A best time is a tagged value, Present or Absent, never a NaN: variants
// that could not run (missing toolchain, interpreter failure) are recorded
// as Absent and sort after every present entry, on every platform, by
// definition rather than by accident of NaN comparison semantics.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Best is a tagged best-time value: either a measured duration or absent.
type Best struct {
	d  time.Duration
	ok bool
}

// Present returns a Best holding a measured duration.
func Present(d time.Duration) Best {
	return Best{d: d, ok: true}
}

// Absent returns the Best for a variant that was not executed.
func Absent() Best {
	return Best{}
}

// IsPresent reports whether the value holds a measurement.
func (b Best) IsPresent() bool { return b.ok }

// Duration returns the measurement; only meaningful when IsPresent.
func (b Best) Duration() time.Duration { return b.d }

// String formats the value for display; absent values render as "n/a".
func (b Best) String() string {
	if !b.ok {
		return "n/a"
	}
	ms := float64(b.d) / float64(time.Millisecond)
	return fmt.Sprintf("%.3f ms", ms)
}

// Row is one table entry.
type Row struct {
	Label string
	Best  Best
}

// Table is an insertion-ordered sequence of rows. SortByBest returns a new
// Table; no operation mutates an existing one after construction.
type Table struct {
	rows []Row
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Add appends a row, preserving insertion order.
func (t *Table) Add(label string, best Best) {
	t.rows = append(t.rows, Row{Label: label, Best: best})
}

// Rows returns a copy of the rows in insertion order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// SortByBest returns a new table sorted ascending by best time, with all
// absent rows after all present rows. The sort is stable, so rows with
// equal times (and the absent rows among themselves) keep their insertion
// order. The receiver is unchanged.
func (t *Table) SortByBest() *Table {
	sorted := &Table{rows: t.Rows()}
	sort.SliceStable(sorted.rows, func(i, j int) bool {
		a, b := sorted.rows[i].Best, sorted.rows[j].Best
		if a.IsPresent() != b.IsPresent() {
			return a.IsPresent()
		}
		if !a.IsPresent() {
			return false
		}
		return a.Duration() < b.Duration()
	})
	return sorted
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	absentStyle = lipgloss.NewStyle().Padding(0, 1).Faint(true)
)

// Render draws the table with its rows in their current order.
func (t *Table) Render() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if !t.rows[row].Best.IsPresent() {
				return absentStyle
			}
			return cellStyle
		}).
		Headers("VARIANT", "BEST TIME")
	for _, r := range t.rows {
		tbl.Row(r.Label, r.Best.String())
	}
	return tbl.Render()
}
