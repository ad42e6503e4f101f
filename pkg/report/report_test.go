package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertionOrderPreserved(t *testing.T) {
	tbl := New()
	tbl.Add("c", Present(3*time.Millisecond))
	tbl.Add("a", Present(1*time.Millisecond))
	tbl.Add("b", Present(2*time.Millisecond))

	labels := make([]string, 0, tbl.Len())
	for _, r := range tbl.Rows() {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"c", "a", "b"}, labels)
}

func TestSortByBestAscendingAbsentLast(t *testing.T) {
	tbl := New()
	tbl.Add("slow", Present(30*time.Millisecond))
	tbl.Add("missing-1", Absent())
	tbl.Add("fast", Present(1*time.Millisecond))
	tbl.Add("missing-2", Absent())
	tbl.Add("mid", Present(10*time.Millisecond))

	sorted := tbl.SortByBest()
	rows := sorted.Rows()
	require.Len(t, rows, 5)

	assert.Equal(t, "fast", rows[0].Label)
	assert.Equal(t, "mid", rows[1].Label)
	assert.Equal(t, "slow", rows[2].Label)
	// Absent rows after every present row, insertion order kept.
	assert.Equal(t, "missing-1", rows[3].Label)
	assert.Equal(t, "missing-2", rows[4].Label)

	// Present rows are pairwise non-decreasing.
	for i := 0; i+1 < len(rows); i++ {
		if rows[i].Best.IsPresent() && rows[i+1].Best.IsPresent() {
			assert.LessOrEqual(t, rows[i].Best.Duration(), rows[i+1].Best.Duration())
		}
	}
}

func TestSortByBestDoesNotMutate(t *testing.T) {
	tbl := New()
	tbl.Add("b", Present(2*time.Millisecond))
	tbl.Add("a", Present(1*time.Millisecond))

	_ = tbl.SortByBest()

	rows := tbl.Rows()
	assert.Equal(t, "b", rows[0].Label)
	assert.Equal(t, "a", rows[1].Label)
}

func TestSortByBestStableForTies(t *testing.T) {
	tbl := New()
	tbl.Add("first", Present(5*time.Millisecond))
	tbl.Add("second", Present(5*time.Millisecond))

	rows := tbl.SortByBest().Rows()
	assert.Equal(t, "first", rows[0].Label)
	assert.Equal(t, "second", rows[1].Label)
}

func TestSortAllAbsent(t *testing.T) {
	tbl := New()
	tbl.Add("x", Absent())
	tbl.Add("y", Absent())
	rows := tbl.SortByBest().Rows()
	assert.Equal(t, "x", rows[0].Label)
	assert.Equal(t, "y", rows[1].Label)
}

func TestBestString(t *testing.T) {
	assert.Equal(t, "n/a", Absent().String())
	assert.Equal(t, "1.500 ms", Present(1500*time.Microsecond).String())
}

func TestRenderContainsRows(t *testing.T) {
	tbl := New()
	tbl.Add("go/sum", Present(12*time.Millisecond))
	tbl.Add("c/ffi", Absent())

	out := tbl.Render()
	assert.True(t, strings.Contains(out, "go/sum"))
	assert.True(t, strings.Contains(out, "c/ffi"))
	assert.True(t, strings.Contains(out, "n/a"))
	assert.True(t, strings.Contains(out, "VARIANT"))
}
