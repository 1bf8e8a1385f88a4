// Package gotreesitter implements the core of an incremental,
// error-recovering LR parser: a table-driven shift/reduce driver extended
// with extra tokens, error recovery, and incremental restart from a prior
// parse stack given an edit.
package gotreesitter

// Point is a row/column position in source text.
type Point struct {
	Row    uint32
	Column uint32
}

// addPoint advances a to b's extent, treating b as a span measured from a's
// row. If b spans any newline (Row > 0) the result's row is a.Row+b.Row and
// the column resets to b.Column; otherwise the column accumulates.
func addPoint(a, b Point) Point {
	if b.Row > 0 {
		return Point{Row: a.Row + b.Row, Column: b.Column}
	}
	return Point{Row: a.Row, Column: a.Column + b.Column}
}

func subPoint(a, b Point) Point {
	if a.Row > b.Row {
		return Point{Row: a.Row - b.Row, Column: a.Column}
	}
	col := a.Column
	if col < b.Column {
		col = 0
	} else {
		col -= b.Column
	}
	return Point{Row: 0, Column: col}
}

// Length is a two-dimensional text extent: a byte count paired with the
// row/column it spans. Every node size, padding, and lexer position in this
// package is expressed as a Length so that arithmetic on extents never loses
// the structured position tree-sitter style consumers expect.
type Length struct {
	Bytes uint32
	Point Point
}

// ZeroLength is the additive identity.
var ZeroLength = Length{}

// Add returns a+b, treating b as a span that begins where a ends.
func (a Length) Add(b Length) Length {
	return Length{Bytes: a.Bytes + b.Bytes, Point: addPoint(a.Point, b.Point)}
}

// Sub returns a-b. Callers must ensure b <= a; this mirrors the teacher
// lexer's unsigned-offset arithmetic and saturates at zero rather than
// wrapping, since negative extents have no meaning here.
func (a Length) Sub(b Length) Length {
	bytes := uint32(0)
	if a.Bytes > b.Bytes {
		bytes = a.Bytes - b.Bytes
	}
	return Length{Bytes: bytes, Point: subPoint(a.Point, b.Point)}
}

// Eq reports whether two Lengths denote the same extent.
func (a Length) Eq(b Length) bool {
	return a.Bytes == b.Bytes && a.Point == b.Point
}

// Less orders Lengths by byte count, which is the only ordering
// breakdownStack needs (§4.3 compares a running right-position against an
// edit's position).
func (a Length) Less(b Length) bool {
	return a.Bytes < b.Bytes
}

// lengthOfText computes the Length spanned by s as a span measured from its
// own start (row deltas always start their column count from zero, matching
// the lexer's own row/column bookkeeping in lexer.go).
func lengthOfText(s []byte) Length {
	var rows uint32
	var lastNewline = -1
	for i, b := range s {
		if b == '\n' {
			rows++
			lastNewline = i
		}
	}
	col := uint32(len(s) - lastNewline - 1)
	return Length{Bytes: uint32(len(s)), Point: Point{Row: rows, Column: col}}
}
