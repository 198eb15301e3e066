package vlp

// Direction is the optimization sense declared on the program line.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// BoundKind is the letter following a row (`i`) or column (`j`) line's
// index, selecting which of Lo/Hi apply.
type BoundKind int

const (
	// Free imposes no bound in either direction.
	Free BoundKind = iota
	// Lower imposes only a lower bound (Lo).
	Lower
	// Upper imposes only an upper bound (Hi).
	Upper
	// Double imposes both a lower and an upper bound (Lo, Hi).
	Double
	// Fixed pins the row/column at exactly Lo (Hi is unused).
	Fixed
)

// Bound is a row or column bound declaration.
type Bound struct {
	Kind BoundKind
	Lo   float64
	Hi   float64
}

// Problem is the fully parsed contents of a VLP file: a sparse
// constraint matrix A (ROWS x COLS), row and column bounds, and a
// sparse objective matrix (OBJS x COLS).
type Problem struct {
	Direction Direction
	Rows      int
	Cols      int
	Objs      int

	// A[row][col] = value, 1-indexed keys as declared by `a` lines,
	// omitted entries are zero.
	A map[[2]int]float64

	// Obj[obj][col] = value, 1-indexed keys as declared by `o` lines.
	Obj map[[2]int]float64

	// RowBounds and ColBounds are 1-indexed; index 0 is unused. Rows or
	// columns with no explicit `i`/`j` line take the declared default
	// (Free for rows, Fixed at 0 for columns, per the format
	// description).
	RowBounds []Bound
	ColBounds []Bound
}

// At returns A[row][col], or zero if the entry was omitted.
func (p *Problem) At(row, col int) float64 {
	return p.A[[2]int{row, col}]
}

// ObjAt returns Obj[obj][col], or zero if the entry was omitted.
func (p *Problem) ObjAt(obj, col int) float64 {
	return p.Obj[[2]int{obj, col}]
}
