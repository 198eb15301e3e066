package bitmat

import (
	"github.com/bits-and-blooms/bitset"
)

// Option configures a Matrix at construction time.
type Option func(*Matrix)

// WithMaxBits caps the number of columns a row may grow to. Zero (the
// default from NewMatrix) means unlimited. Exceeding the cap turns
// GrowColumns into ErrOutOfMemory instead of panicking or silently
// truncating, matching spec §4.1's fatal-on-exhaustion contract.
func WithMaxBits(n uint) Option {
	return func(m *Matrix) { m.maxBits = n }
}

// Matrix is a growable collection of packed bit rows, all sharing the same
// column count. Rows are added and removed independently of columns; use
// GrowColumns to extend every row's column capacity together, and
// CompressColumns/CompressRows to shrink and renumber after tombstoning.
type Matrix struct {
	rows    []*bitset.BitSet
	tomb    []bool // true if rows[i] is a tombstoned (logically removed) row
	cols    uint
	maxBits uint
}

// NewMatrix returns an empty Matrix (zero rows, zero columns).
func NewMatrix(opts ...Option) *Matrix {
	m := &Matrix{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NumRows returns the number of rows, including tombstoned ones. Use
// LiveRows for a count that excludes tombstones.
func (m *Matrix) NumRows() int { return len(m.rows) }

// LiveRows returns the number of non-tombstoned rows.
func (m *Matrix) LiveRows() int {
	n := 0
	for _, dead := range m.tomb {
		if !dead {
			n++
		}
	}
	return n
}

// NumCols returns the current column capacity shared by every row.
func (m *Matrix) NumCols() uint { return m.cols }

// AddRow appends a new, all-zero row sized to the current column count and
// returns its index.
func (m *Matrix) AddRow() int {
	m.rows = append(m.rows, bitset.New(m.cols))
	m.tomb = append(m.tomb, false)
	return len(m.rows) - 1
}

// Tombstone marks a row as logically removed without renumbering anything.
// A later CompressRows call reclaims the slot.
func (m *Matrix) Tombstone(row int) error {
	if row < 0 || row >= len(m.rows) {
		return ErrRowOutOfRange
	}
	m.tomb[row] = true
	return nil
}

// IsTombstoned reports whether row has been marked removed.
func (m *Matrix) IsTombstoned(row int) (bool, error) {
	if row < 0 || row >= len(m.rows) {
		return false, ErrRowOutOfRange
	}
	return m.tomb[row], nil
}

// GrowColumns extends every row (tombstoned or not) by one bit, initialised
// to zero, and returns the new column count. Amortised O(1) per row: it
// forces bitset.BitSet's own geometric (doubling) word-array growth by
// setting and immediately clearing the new high bit.
func (m *Matrix) GrowColumns() (uint, error) {
	if m.maxBits != 0 && m.cols+1 > m.maxBits {
		return m.cols, ErrOutOfMemory
	}
	newCol := m.cols
	for _, row := range m.rows {
		row.Set(newCol)
		row.Clear(newCol)
	}
	m.cols++
	return m.cols, nil
}

func (m *Matrix) checkRow(row int) error {
	if row < 0 || row >= len(m.rows) {
		return ErrRowOutOfRange
	}
	return nil
}

func (m *Matrix) checkCol(col uint) error {
	if col >= m.cols {
		return ErrColOutOfRange
	}
	return nil
}

// Set sets bit (row, col).
func (m *Matrix) Set(row int, col uint) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	if err := m.checkCol(col); err != nil {
		return err
	}
	m.rows[row].Set(col)
	return nil
}

// Clear clears bit (row, col).
func (m *Matrix) Clear(row int, col uint) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	if err := m.checkCol(col); err != nil {
		return err
	}
	m.rows[row].Clear(col)
	return nil
}

// Test reports whether bit (row, col) is set.
func (m *Matrix) Test(row int, col uint) (bool, error) {
	if err := m.checkRow(row); err != nil {
		return false, err
	}
	if err := m.checkCol(col); err != nil {
		return false, err
	}
	return m.rows[row].Test(col), nil
}

// PopCount returns the number of set bits in row.
func (m *Matrix) PopCount(row int) (uint, error) {
	if err := m.checkRow(row); err != nil {
		return 0, err
	}
	return m.rows[row].Count(), nil
}

// SetBits returns the indices of set bits in row, in ascending order.
func (m *Matrix) SetBits(row int) ([]uint, error) {
	if err := m.checkRow(row); err != nil {
		return nil, err
	}
	bs := m.rows[row]
	out := make([]uint, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		out = append(out, i)
	}
	return out, nil
}

// UnionInto sets dst's row to the bitwise union of rows a and b.
func (m *Matrix) UnionInto(dst, a, b int) error {
	for _, r := range []int{dst, a, b} {
		if err := m.checkRow(r); err != nil {
			return err
		}
	}
	if a == dst {
		m.rows[dst].InPlaceUnion(m.rows[b])
		return nil
	}
	if b == dst {
		m.rows[dst].InPlaceUnion(m.rows[a])
		return nil
	}
	m.rows[dst] = m.rows[a].Union(m.rows[b])
	return nil
}

// IntersectInto sets dst's row to the bitwise intersection of rows a and b.
func (m *Matrix) IntersectInto(dst, a, b int) error {
	for _, r := range []int{dst, a, b} {
		if err := m.checkRow(r); err != nil {
			return err
		}
	}
	if a == dst {
		m.rows[dst].InPlaceIntersection(m.rows[b])
		return nil
	}
	if b == dst {
		m.rows[dst].InPlaceIntersection(m.rows[a])
		return nil
	}
	m.rows[dst] = m.rows[a].Intersection(m.rows[b])
	return nil
}

// IntersectionCount returns |rows[a] ∩ rows[b]| without allocating a
// destination row.
func (m *Matrix) IntersectionCount(a, b int) (uint, error) {
	if err := m.checkRow(a); err != nil {
		return 0, err
	}
	if err := m.checkRow(b); err != nil {
		return 0, err
	}
	return m.rows[a].IntersectionCardinality(m.rows[b]), nil
}

// IntersectionBits returns the set-bit indices of rows[a] ∩ rows[b], in
// ascending order, without allocating a destination row. Used by the ridge
// test to materialise the shared-vertex set of two facets before running
// Chvátal's subset check against every other live facet.
func (m *Matrix) IntersectionBits(a, b int) ([]uint, error) {
	if err := m.checkRow(a); err != nil {
		return nil, err
	}
	if err := m.checkRow(b); err != nil {
		return nil, err
	}
	inter := m.rows[a].Intersection(m.rows[b])
	out := make([]uint, 0, inter.Count())
	for i, ok := inter.NextSet(0); ok; i, ok = inter.NextSet(i + 1) {
		out = append(out, i)
	}
	return out, nil
}

// IsSubsetOf reports whether every set bit of rows[a] is also set in rows[b].
func (m *Matrix) IsSubsetOf(a, b int) (bool, error) {
	if err := m.checkRow(a); err != nil {
		return false, err
	}
	if err := m.checkRow(b); err != nil {
		return false, err
	}
	return m.rows[a].IsSubsetOf(m.rows[b]), nil
}

// CompressColumns drops every column c for which keep[c] is false, packing
// the remaining columns in order, and returns old→new column index mapping
// (length NumCols(); -1 for dropped columns).
func (m *Matrix) CompressColumns(keep []bool) ([]int, error) {
	if uint(len(keep)) != m.cols {
		return nil, ErrDimensionMismatch
	}
	oldToNew := make([]int, len(keep))
	newCols := uint(0)
	for c, k := range keep {
		if k {
			oldToNew[c] = int(newCols)
			newCols++
		} else {
			oldToNew[c] = -1
		}
	}
	for ri, row := range m.rows {
		nr := bitset.New(newCols)
		for i, ok := row.NextSet(0); ok; i, ok = row.NextSet(i + 1) {
			if nc := oldToNew[i]; nc >= 0 {
				nr.Set(uint(nc))
			}
		}
		m.rows[ri] = nr
	}
	m.cols = newCols
	return oldToNew, nil
}

// CompressRows drops every row r for which keep[r] is false (typically the
// tombstoned ones), packing the remaining rows in order and preserving
// relative order among survivors. Returns the old→new row index mapping
// (length NumRows(); -1 for dropped rows).
func (m *Matrix) CompressRows(keep []bool) ([]int, error) {
	if len(keep) != len(m.rows) {
		return nil, ErrDimensionMismatch
	}
	oldToNew := make([]int, len(keep))
	newRows := make([]*bitset.BitSet, 0, len(m.rows))
	newTomb := make([]bool, 0, len(m.rows))
	for r, k := range keep {
		if k {
			oldToNew[r] = len(newRows)
			newRows = append(newRows, m.rows[r])
			newTomb = append(newTomb, m.tomb[r])
		} else {
			oldToNew[r] = -1
		}
	}
	m.rows = newRows
	m.tomb = newTomb
	return oldToNew, nil
}
