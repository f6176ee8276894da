package pagination

import (
	"errors"
	"fmt"
)

// Assignment is one page's share of the products table: the half open item
// range [Start, End), the rows it consumes and the capacity that applied.
type Assignment struct {
	Start    int
	End      int
	Rows     int
	Capacity int
}

// Len returns the number of items on the page.
func (a Assignment) Len() int { return a.End - a.Start }

// Overflows reports whether the page holds more rows than its capacity,
// which only happens for a single oversized item.
func (a Assignment) Overflows() bool { return a.Rows > a.Capacity }

// Contains reports whether item i is placed on this page.
func (a Assignment) Contains(i int) bool { return i >= a.Start && i < a.End }

// Plan is the ordered list of page assignments of one document
type Plan []Assignment

// PageCount returns the number of physical pages of the document.
func (p Plan) PageCount() int { return len(p) }

// PageOf returns the 1 based page holding item i, or 0 when no page does.
func (p Plan) PageOf(i int) int {
	for n, a := range p {
		if a.Contains(i) {
			return n + 1
		}
	}
	return 0
}

// Paginate packs items into pages in a single forward pass. rows[i] is the
// row count of item i. The first page holds up to first rows and every
// following page up to continuation rows. Items are never split or
// reordered. A page that has no items yet accepts the next item whatever its
// size, so an item taller than a page sits alone on it. An empty input still
// yields one page with no items.
func Paginate(rows []int, first, continuation int) Plan {
	plan := Plan{{Capacity: first}}
	cur := &plan[0]

	for i, r := range rows {
		if cur.Len() > 0 && cur.Rows+r > cur.Capacity {
			plan = append(plan, Assignment{
				Start:    i,
				End:      i + 1,
				Rows:     r,
				Capacity: continuation,
			})
			cur = &plan[len(plan)-1]
			continue
		}
		cur.End = i + 1
		cur.Rows += r
	}

	return plan
}

// Errors reported by Validate
var (
	ErrGap      = errors.New("pagination: ranges are not contiguous")
	ErrCapacity = errors.New("pagination: page exceeds its capacity")
	ErrRows     = errors.New("pagination: row total mismatch")
	ErrEmpty    = errors.New("pagination: page holds no items")
)

// Validate checks that the plan partitions rows into contiguous ordered
// ranges whose totals match and respect capacity, except for pages holding a
// single item. It is meant for tests and debug builds.
func (p Plan) Validate(rows []int) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: plan has no pages", ErrEmpty)
	}
	next := 0
	for n, a := range p {
		if a.Start != next || a.End < a.Start {
			return fmt.Errorf("%w: page %d is [%d,%d), expected start %d", ErrGap, n+1, a.Start, a.End, next)
		}
		if a.Len() == 0 && len(rows) > 0 {
			return fmt.Errorf("%w: page %d", ErrEmpty, n+1)
		}
		if a.End > len(rows) {
			return fmt.Errorf("%w: page %d ends at %d past %d items", ErrGap, n+1, a.End, len(rows))
		}
		sum := 0
		for _, r := range rows[a.Start:a.End] {
			sum += r
		}
		if sum != a.Rows {
			return fmt.Errorf("%w: page %d has %d rows, items sum %d", ErrRows, n+1, a.Rows, sum)
		}
		if a.Len() > 1 && a.Overflows() {
			return fmt.Errorf("%w: page %d has %d rows for capacity %d", ErrCapacity, n+1, a.Rows, a.Capacity)
		}
		next = a.End
	}
	if next != len(rows) {
		return fmt.Errorf("%w: plan covers %d of %d items", ErrGap, next, len(rows))
	}
	return nil
}
