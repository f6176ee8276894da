package pagination

import (
	"math/rand"
	"testing"

	"github.com/gompdf/danfe/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateExamples(t *testing.T) {
	tests := []struct {
		name  string
		rows  []int
		first int
		cont  int
		want  Plan
	}{
		{
			name:  "empty input keeps a header only page",
			rows:  nil,
			first: 23, cont: 70,
			want: Plan{{Start: 0, End: 0, Rows: 0, Capacity: 23}},
		},
		{
			name:  "single oversized item stays on the first page",
			rows:  []int{28},
			first: 23, cont: 70,
			want: Plan{{Start: 0, End: 1, Rows: 28, Capacity: 23}},
		},
		{
			name:  "exact fit stays on the current page",
			rows:  []int{3, 3, 4},
			first: 10, cont: 20,
			want: Plan{{Start: 0, End: 3, Rows: 10, Capacity: 10}},
		},
		{
			name:  "overflow opens a continuation page",
			rows:  []int{3, 3, 5},
			first: 10, cont: 20,
			want: Plan{
				{Start: 0, End: 2, Rows: 6, Capacity: 10},
				{Start: 2, End: 3, Rows: 5, Capacity: 20},
			},
		},
		{
			name:  "oversized item in the middle gets its own page",
			rows:  []int{2, 9, 1},
			first: 5, cont: 5,
			want: Plan{
				{Start: 0, End: 1, Rows: 2, Capacity: 5},
				{Start: 1, End: 2, Rows: 9, Capacity: 5},
				{Start: 2, End: 3, Rows: 1, Capacity: 5},
			},
		},
		{
			name:  "landscape capacities",
			rows:  []int{1, 1, 1, 1, 1, 1, 1},
			first: 6, cont: 45,
			want: Plan{
				{Start: 0, End: 6, Rows: 6, Capacity: 6},
				{Start: 6, End: 7, Rows: 1, Capacity: 45},
			},
		},
		{
			name:  "zero row items always fit",
			rows:  []int{2, 0, 0},
			first: 2, cont: 2,
			want: Plan{{Start: 0, End: 3, Rows: 2, Capacity: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.rows, tt.first, tt.cont)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate(tt.rows))
		})
	}
}

func TestPaginateTwentyFourSingleRowItems(t *testing.T) {
	rows := make([]int, 24)
	for i := range rows {
		rows[i] = 1
	}
	plan := Paginate(rows, 23, 70)
	require.Equal(t, 2, plan.PageCount())
	assert.Equal(t, Assignment{Start: 0, End: 23, Rows: 23, Capacity: 23}, plan[0])
	assert.Equal(t, Assignment{Start: 23, End: 24, Rows: 1, Capacity: 70}, plan[1])
	assert.Equal(t, 1, plan.PageOf(22))
	assert.Equal(t, 2, plan.PageOf(23))
	assert.Equal(t, 0, plan.PageOf(24))
}

func TestPaginateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 500; run++ {
		n := rng.Intn(60)
		rows := make([]int, n)
		for i := range rows {
			rows[i] = 1 + rng.Intn(12)
		}
		first := 1 + rng.Intn(25)
		cont := 1 + rng.Intn(70)

		plan := Paginate(rows, first, cont)
		require.NoError(t, plan.Validate(rows), "rows=%v first=%d cont=%d", rows, first, cont)

		// partition and order
		next := 0
		for i, a := range plan {
			assert.Equal(t, next, a.Start)
			if n > 0 {
				assert.Greater(t, a.End, a.Start)
			}
			if i == 0 {
				assert.Equal(t, first, a.Capacity)
			} else {
				assert.Equal(t, cont, a.Capacity)
				assert.Greater(t, a.Start, plan[i-1].Start)
				assert.Greater(t, a.End, plan[i-1].End)
			}
			if a.Len() > 1 {
				assert.LessOrEqual(t, a.Rows, a.Capacity)
			}
			next = a.End
		}
		assert.Equal(t, n, next)

		// every item lands on exactly one page, pages non decreasing
		prev := 1
		for i := 0; i < n; i++ {
			count := 0
			for _, a := range plan {
				if a.Contains(i) {
					count++
				}
			}
			assert.Equal(t, 1, count)
			page := plan.PageOf(i)
			assert.GreaterOrEqual(t, page, prev)
			prev = page
		}

		// greedy: the first item of a page did not fit on the previous one
		for i := 1; i < len(plan); i++ {
			assert.Greater(t, plan[i-1].Rows+rows[plan[i].Start], plan[i-1].Capacity)
		}

		assert.Equal(t, plan, Paginate(rows, first, cont), "deterministic")
	}
}

func TestValidateRejectsBrokenPlans(t *testing.T) {
	rows := []int{3, 3, 5}

	assert.ErrorIs(t, Plan{}.Validate(rows), ErrEmpty)
	assert.ErrorIs(t, Plan{{0, 2, 6, 10}}.Validate(rows), ErrGap)
	assert.ErrorIs(t, Plan{{0, 2, 6, 10}, {3, 3, 0, 20}}.Validate(rows), ErrGap)
	assert.ErrorIs(t, Plan{{0, 2, 7, 10}, {2, 3, 5, 20}}.Validate(rows), ErrRows)
	assert.ErrorIs(t, Plan{{0, 3, 11, 10}}.Validate(rows), ErrCapacity)
	assert.ErrorIs(t, Plan{{0, 0, 0, 10}, {0, 3, 11, 20}}.Validate(rows), ErrEmpty)
	assert.ErrorIs(t, Plan{{0, 4, 11, 20}}.Validate(rows), ErrGap)
}

func TestAssignment(t *testing.T) {
	a := Assignment{Start: 2, End: 5, Rows: 12, Capacity: 10}
	assert.Equal(t, 3, a.Len())
	assert.True(t, a.Overflows())
	assert.True(t, a.Contains(2))
	assert.False(t, a.Contains(5))
}

func TestEngine(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, Options{FirstPageCapacity: 23, ContinuationCapacity: 70}, e.Options())

	e.SetOptions(OptionsFor(layout.NewGeometry(layout.OrientationLandscape, layout.ReceiptTop)))
	assert.Equal(t, Options{FirstPageCapacity: 6, ContinuationCapacity: 45}, e.Options())

	items := []layout.LineItem{
		{Lines: []string{"a", "b"}},
		{Lines: []string{"c", "d", "e"}},
		{},
		{Lines: []string{"f", "g"}},
	}
	plan := e.Paginate(items)
	assert.Equal(t, Plan{
		{Start: 0, End: 3, Rows: 6, Capacity: 6},
		{Start: 3, End: 4, Rows: 2, Capacity: 45},
	}, plan)
	assert.Equal(t, 2, plan.PageCount())

	e.SetOptions(Options{FirstPageCapacity: 1, ContinuationCapacity: 1})
	assert.Equal(t, 4, e.Paginate(items).PageCount())
	assert.Equal(t, 1, e.Paginate(nil).PageCount())
}
