package features

import (
	"github.com/paulmach/orb"
)

// MarchingSquares calculates the contour lines of the grid at given height.
// Cells with a missing corner are skipped.
func MarchingSquares(grid Grid, height float64) []orb.LineString {
	lines := []orb.LineString{}
	cols, rows := grid.Dims()

	for col := 0; col < cols-1; col++ {
		for row := 0; row < rows-1; row++ {
			for _, newLine := range calcLinesForColRow(grid, col, row, height) {
				// find all lines which can be combined with newLine
				combinable := []int{}
				for j := 0; j < len(lines); j++ {
					if ok, _ := canCombineLines(newLine, lines[j]); ok {
						combinable = append(combinable, j)

						if len(combinable) == 2 {
							break
						}
					}
				}

				if len(combinable) == 0 {
					lines = append(lines, newLine)
					continue
				}

				combinedLine := newLine
				for _, index := range combinable {
					_, combinedLine = combineLines(combinedLine, lines[index])
				}
				lines[combinable[0]] = combinedLine

				if len(combinable) == 2 {
					last := len(lines) - 1
					lines[combinable[1]] = lines[last]
					lines[last] = nil
					lines = lines[:last]
				}
			}
		}
	}

	return lines
}

func calcLinesForColRow(grid Grid, col, row int, height float64) []orb.LineString {
	tlHeight, ok1 := grid.Z(col, row+1)
	trHeight, ok2 := grid.Z(col+1, row+1)
	brHeight, ok3 := grid.Z(col+1, row)
	blHeight, ok4 := grid.Z(col, row)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}

	leftX := grid.X(col)
	rightX := grid.X(col + 1)
	bottomY := grid.Y(row)
	topY := grid.Y(row + 1)

	index := 0
	if tlHeight > height {
		index |= 8
	}
	if trHeight > height {
		index |= 4
	}
	if brHeight > height {
		index |= 2
	}
	if blHeight > height {
		index |= 1
	}

	top := func() orb.Point {
		return orb.Point{interpolate(leftX, tlHeight, rightX, trHeight, height), topY}
	}
	left := func() orb.Point {
		return orb.Point{leftX, interpolate(bottomY, blHeight, topY, tlHeight, height)}
	}
	bottom := func() orb.Point {
		return orb.Point{interpolate(leftX, blHeight, rightX, brHeight, height), bottomY}
	}
	right := func() orb.Point {
		return orb.Point{rightX, interpolate(bottomY, brHeight, topY, trHeight, height)}
	}

	switch index {
	case 1, 14:
		return []orb.LineString{{bottom(), left()}}
	case 2, 13:
		return []orb.LineString{{right(), bottom()}}
	case 3, 12:
		return []orb.LineString{{right(), left()}}
	case 4, 11:
		return []orb.LineString{{top(), right()}}
	case 5:
		// saddle
		return []orb.LineString{{left(), top()}, {bottom(), right()}}
	case 6, 9:
		return []orb.LineString{{top(), bottom()}}
	case 7, 8:
		return []orb.LineString{{left(), top()}}
	case 10:
		// saddle
		return []orb.LineString{{left(), bottom()}, {top(), right()}}
	}

	return nil
}

func interpolate(c0, h0, c1, h1, height float64) float64 {
	return (c0*(h1-height) + c1*(height-h0)) / (h1 - h0)
}

// canCombineLines checks whether two lines share an end point. The second
// result is true if l2 has to come first. l2 may be reversed in place.
func canCombineLines(l1 orb.LineString, l2 orb.LineString) (bool, bool) {
	len1 := len(l1) - 1
	len2 := len(l2) - 1

	if l1[len1].Equal(l2[0]) {
		return true, false
	}
	if l2[len2].Equal(l1[0]) {
		return true, true
	}

	l2.Reverse()

	if l1[len1].Equal(l2[0]) {
		return true, false
	}
	if l2[len2].Equal(l1[0]) {
		return true, true
	}

	// undo, l2 is still stored in the caller's slice
	l2.Reverse()

	return false, false
}

func combineLines(l1 orb.LineString, l2 orb.LineString) (bool, orb.LineString) {
	canCombine, reversed := canCombineLines(l1, l2)
	if !canCombine {
		return false, nil
	}

	if reversed {
		return true, stitchLines(l2, l1)
	}

	return true, stitchLines(l1, l2)
}

// stitchLines appends all points of line2 except the first one to line1
func stitchLines(line1 orb.LineString, line2 orb.LineString) orb.LineString {
	out := make(orb.LineString, 0, len(line1)+len(line2)-1)
	out = append(out, line1...)
	return append(out, line2[1:]...)
}
