package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"orderadmin/internal/pkg/errs"

	"golang.org/x/text/cases"
)

// Direction is the order a column was last sorted in.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// Column describes one column of a sortable table.
type Column struct {
	Name    string
	Numeric bool
}

// Row is one rendered table row. Key identifies the row for the presenter.
type Row struct {
	Key   string
	Cells []string
}

// SortResult is the outcome of one sort activation.
type SortResult struct {
	Column    int
	Direction Direction
	Rows      []Row
}

var leadingFloat = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// TableSorter sorts table rows by one column with adjacent-pair bubble passes.
//
// Every activation starts ascending. When the first full pass of an
// activation swaps nothing, the rows were already ascending and the
// activation flips to descending instead, so activating the same column
// twice alternates the direction. Numeric columns compare the leading number
// of each cell; other columns compare case-folded text. Cells without a
// leading number never move relative to their neighbours.
type TableSorter struct {
	columns []Column

	mu         sync.Mutex
	directions map[int]Direction
}

// NewTableSorter creates a sorter for a table with the given columns.
func NewTableSorter(columns []Column) *TableSorter {
	return &TableSorter{
		columns:    append([]Column(nil), columns...),
		directions: make(map[int]Direction),
	}
}

// Direction returns the direction column was last sorted in.
func (s *TableSorter) Direction(column int) Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directions[column]
}

// Sort sorts a copy of rows by column.
func (s *TableSorter) Sort(column int, rows []Row) (SortResult, error) {
	if column < 0 || column >= len(s.columns) {
		return SortResult{}, errs.NewValueIsInvalidErrorWithCause(
			"column",
			fmt.Errorf("%d is outside 0..%d", column, len(s.columns)-1),
		)
	}
	for _, row := range rows {
		if len(row.Cells) <= column {
			return SortResult{}, errs.NewValueIsInvalidErrorWithCause(
				"row",
				fmt.Errorf("row %q has no cell %d", row.Key, column),
			)
		}
	}

	fold := cases.Fold()
	keys := make([]sortKey, len(rows))
	sorted := make([]Row, len(rows))
	for i, row := range rows {
		sorted[i] = row
		keys[i] = keyOf(fold, row.Cells[column], s.columns[column].Numeric)
	}

	dir := Ascending
	swaps := 0
	for {
		passSwaps := 0
		for i := 0; i < len(sorted)-1; i++ {
			if keys[i].outOfOrder(keys[i+1], dir) {
				keys[i], keys[i+1] = keys[i+1], keys[i]
				sorted[i], sorted[i+1] = sorted[i+1], sorted[i]
				passSwaps++
			}
		}
		swaps += passSwaps

		if passSwaps > 0 {
			continue
		}
		if swaps == 0 && dir == Ascending {
			dir = Descending
			continue
		}
		break
	}

	s.mu.Lock()
	s.directions[column] = dir
	s.mu.Unlock()

	return SortResult{Column: column, Direction: dir, Rows: sorted}, nil
}

type sortKey struct {
	numeric bool
	text    string
	number  float64
}

func keyOf(fold cases.Caser, cell string, numeric bool) sortKey {
	if !numeric {
		return sortKey{text: fold.String(cell)}
	}
	return sortKey{numeric: true, number: parseLeadingFloat(cell)}
}

// outOfOrder reports whether k must move after next under dir.
func (k sortKey) outOfOrder(next sortKey, dir Direction) bool {
	if k.numeric {
		if dir == Ascending {
			return k.number > next.number
		}
		return k.number < next.number
	}
	if dir == Ascending {
		return k.text > next.text
	}
	return k.text < next.text
}

// parseLeadingFloat reads the number at the start of s, so "10.5 usd" is
// 10.5. It returns NaN when s does not start with a number; NaN compares
// false against everything.
func parseLeadingFloat(s string) float64 {
	match := leadingFloat.FindString(s)
	if match == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(match), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
