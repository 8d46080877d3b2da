package spinner

import "strings"

// brailleBase is the code point of the empty braille cell.
const brailleBase = '\u2800'

// dotBits maps a pixel inside a 2x4 braille cell to its dot bit.
//
//	col 0   col 1
//	  1       4     row 0
//	  2       5     row 1
//	  3       6     row 2
//	  7       8     row 3
var dotBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// grid is a 4x4 pixel area drawn as two braille characters.
type grid [4][4]bool

// set turns on the pixel at column x, row y. Out-of-range pixels are ignored.
func (g *grid) set(x, y int) {
	if x >= 0 && x < 4 && y >= 0 && y < 4 {
		g[y][x] = true
	}
}

func (g *grid) String() string {
	var sb strings.Builder
	for cell := range 2 {
		r := brailleBase
		for dx := range 2 {
			for dy := range 4 {
				if g[dy][cell*2+dx] {
					r += dotBits[dx][dy]
				}
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
