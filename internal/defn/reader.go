package defn

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/kpitt/hexcells-solver/internal/hexcoord"
)

// DefinitionLines is the fixed number of lines a puzzle definition occupies
// on stdin: one header line declaring the total blue count, followed by 37
// grid rows.
const DefinitionLines = 38

const gridRows = DefinitionLines - 1

// tokenPattern recognizes one grid cell token. Groups:
//  1: zone6 modifier char ('=' exact, 'c' consecutive, 'n' non-consecutive)
//  2: zone6 count
//  3: zone18 count
//  4: line direction ('V','U','D')
//  5: line modifier char
//  6: line count
var tokenPattern = regexp.MustCompile(
	`^(?:\.|[BbKk]|[Nn](=|c|n)(\d+)|[Mm](\d+)|L([VUD])(=|c|n)(\d+))$`,
)

// Parse reads a puzzle definition in the fixed 38-line textual format: a
// header line giving the declared total blue count, followed by 37
// whitespace-separated grid rows. Row index becomes the cube coordinate's r
// component; column index (within a row) becomes q. Token grammar:
//
//	.          empty / off-grid
//	B / b      zone0 blue,  revealed / hidden
//	K / k      zone0 black, revealed / hidden
//	N<m><n>    zone6 (ring) clue, revealed, modifier m, count n
//	n<m><n>    zone6 (ring) clue, hidden,   modifier m, count n
//	M<n>       zone18 (remote) clue, revealed, count n
//	m<n>       zone18 (remote) clue, hidden,   count n
//	L<d><m><n> line clue, direction d in {V,U,D}, modifier m, count n
//
// where modifier m is one of '=' (exact), 'c' (consecutive), 'n'
// (non-consecutive).
func Parse(r io.Reader) (*Defn, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("defn: missing header line: %w", scanner.Err())
	}
	totalBlue, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("defn: invalid header line (declared blue count): %w", err)
	}

	cells := make(map[hexcoord.Coord]Cell)
	row := 0
	numCols := -1
	for row < gridRows {
		if !scanner.Scan() {
			return nil, fmt.Errorf("defn: expected %d grid rows, got %d", gridRows, row)
		}
		tokens := strings.Fields(scanner.Text())
		if numCols == -1 {
			numCols = len(tokens)
		} else if len(tokens) != numCols {
			return nil, fmt.Errorf("defn: row %d has %d columns, want %d", row, len(tokens), numCols)
		}
		for col, tok := range tokens {
			cell, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("defn: row %d col %d: %w", row, col, err)
			}
			if cell.Kind == KindEmpty {
				continue
			}
			q, rr, s := col, row, -(col + row)
			cells[hexcoord.New(q, rr, s)] = cell
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("defn: error reading definition: %w", err)
	}

	return New(cells, totalBlue), nil
}

func parseToken(tok string) (Cell, error) {
	switch tok {
	case ".":
		return Empty(), nil
	case "B":
		return Zone0(true, ColorBlue), nil
	case "b":
		return Zone0(false, ColorBlue), nil
	case "K":
		return Zone0(true, ColorBlack), nil
	case "k":
		return Zone0(false, ColorBlack), nil
	}

	m := tokenPattern.FindStringSubmatch(tok)
	if m == nil {
		return Cell{}, fmt.Errorf("unrecognized token %q", tok)
	}

	switch {
	case tok[0] == 'N' || tok[0] == 'n':
		count, _ := strconv.Atoi(m[2])
		mod := Modifier{Kind: modKindOf(m[1][0]), Count: count}
		return Zone6(tok[0] == 'N', mod), nil
	case tok[0] == 'M' || tok[0] == 'm':
		count, _ := strconv.Atoi(m[3])
		return Zone18(tok[0] == 'M', count), nil
	case tok[0] == 'L':
		count, _ := strconv.Atoi(m[6])
		mod := Modifier{Kind: modKindOf(m[5][0]), Count: count}
		return LineClue(dirOf(m[4][0]), mod), nil
	}
	return Cell{}, fmt.Errorf("unrecognized token %q", tok)
}

func modKindOf(c byte) ModKind {
	switch c {
	case 'c':
		return ModConsecutive
	case 'n':
		return ModNonConsecutive
	default:
		return ModExact
	}
}

func dirOf(c byte) Direction {
	switch c {
	case 'U':
		return DirDiagUp
	case 'D':
		return DirDiagDown
	default:
		return DirVertical
	}
}
