package logo

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrPathSyntax is returned by ParsePath for malformed or unsupported path data.
var ErrPathSyntax = errors.New("logo: invalid path data")

// Op is the kind of an absolute path segment.
type Op byte

const (
	OpMove  Op = 'M'
	OpLine  Op = 'L'
	OpQuad  Op = 'Q'
	OpCubic Op = 'C'
	OpClose Op = 'Z'
)

// Point is a position in logo user units.
type Point struct {
	X, Y float64
}

// Segment is one absolute drawing instruction. Pts holds the end point last,
// preceded by control points: 1 for move/line, 2 for quad, 3 for cubic, 0 for
// close.
type Segment struct {
	Op  Op
	Pts []Point
}

// argCount is the number of numbers consumed per command repetition.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
}

// ParsePath converts SVG path data into absolute segments. Horizontal and
// vertical lines become lines, smooth curves are expanded with their
// reflected control point. Elliptical arcs are not supported.
func ParsePath(d string) ([]Segment, error) {
	sc := &pathScanner{s: d}
	var (
		segs      []Segment
		cur, orig Point
		lastCtrl  Point
		prev      byte
	)
	for {
		cmd, ok := sc.command()
		if !ok {
			if sc.atEnd() {
				break
			}
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrPathSyntax, d[sc.i], sc.i)
		}
		upper := cmd &^ 0x20
		rel := cmd != upper
		if len(segs) == 0 && upper != 'M' {
			return nil, fmt.Errorf("%w: path must start with a moveto, got %q", ErrPathSyntax, cmd)
		}
		if upper == 'Z' {
			segs = append(segs, Segment{Op: OpClose})
			cur = orig
			prev = 'Z'
			continue
		}
		n, ok := argCount[upper]
		if !ok {
			return nil, fmt.Errorf("%w: unsupported command %q", ErrPathSyntax, cmd)
		}
		for rep := 0; rep == 0 || sc.hasNumber(); rep++ {
			args, err := sc.numbers(n)
			if err != nil {
				return nil, fmt.Errorf("%w: command %q: %v", ErrPathSyntax, cmd, err)
			}
			base := Point{}
			if rel {
				base = cur
			}
			at := func(i int) Point {
				return Point{X: base.X + args[i], Y: base.Y + args[i+1]}
			}
			switch upper {
			case 'M':
				p := at(0)
				if rep == 0 {
					segs = append(segs, Segment{Op: OpMove, Pts: []Point{p}})
					orig = p
				} else {
					segs = append(segs, Segment{Op: OpLine, Pts: []Point{p}})
				}
				cur = p
			case 'L':
				p := at(0)
				segs = append(segs, Segment{Op: OpLine, Pts: []Point{p}})
				cur = p
			case 'H':
				p := Point{X: base.X + args[0], Y: cur.Y}
				segs = append(segs, Segment{Op: OpLine, Pts: []Point{p}})
				cur = p
			case 'V':
				p := Point{X: cur.X, Y: base.Y + args[0]}
				segs = append(segs, Segment{Op: OpLine, Pts: []Point{p}})
				cur = p
			case 'C':
				c1, c2, p := at(0), at(2), at(4)
				segs = append(segs, Segment{Op: OpCubic, Pts: []Point{c1, c2, p}})
				lastCtrl, cur = c2, p
			case 'S':
				c1 := cur
				if prev == 'C' || prev == 'S' {
					c1 = reflect(lastCtrl, cur)
				}
				c2, p := at(0), at(2)
				segs = append(segs, Segment{Op: OpCubic, Pts: []Point{c1, c2, p}})
				lastCtrl, cur = c2, p
			case 'Q':
				c, p := at(0), at(2)
				segs = append(segs, Segment{Op: OpQuad, Pts: []Point{c, p}})
				lastCtrl, cur = c, p
			case 'T':
				c := cur
				if prev == 'Q' || prev == 'T' {
					c = reflect(lastCtrl, cur)
				}
				p := at(0)
				segs = append(segs, Segment{Op: OpQuad, Pts: []Point{c, p}})
				lastCtrl, cur = c, p
			}
			prev = upper
		}
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrPathSyntax)
	}
	return segs, nil
}

// reflect mirrors ctrl through pivot.
func reflect(ctrl, pivot Point) Point {
	return Point{X: 2*pivot.X - ctrl.X, Y: 2*pivot.Y - ctrl.Y}
}

type pathScanner struct {
	s string
	i int
}

func (p *pathScanner) skipSeparators() {
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			p.i++
		default:
			return
		}
	}
}

func (p *pathScanner) atEnd() bool {
	p.skipSeparators()
	return p.i >= len(p.s)
}

func (p *pathScanner) command() (byte, bool) {
	p.skipSeparators()
	if p.i >= len(p.s) {
		return 0, false
	}
	c := p.s[p.i]
	if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		if c == 'e' || c == 'E' {
			return 0, false
		}
		p.i++
		return c, true
	}
	return 0, false
}

func (p *pathScanner) hasNumber() bool {
	p.skipSeparators()
	if p.i >= len(p.s) {
		return false
	}
	c := p.s[p.i]
	return c == '-' || c == '+' || c == '.' || isDigit(c)
}

func (p *pathScanner) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for k := range out {
		v, err := p.number()
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// number scans one SVG number. Adjacent numbers may share no separator when
// the second starts with a sign or a second decimal point ("1.5.5", "1-2").
func (p *pathScanner) number() (float64, error) {
	p.skipSeparators()
	start := p.i
	if p.i < len(p.s) && (p.s[p.i] == '-' || p.s[p.i] == '+') {
		p.i++
	}
	digits, dot := false, false
scan:
	for p.i < len(p.s) {
		c := p.s[p.i]
		switch {
		case isDigit(c):
			digits = true
			p.i++
		case c == '.' && !dot:
			dot = true
			p.i++
		default:
			break scan
		}
	}
	if !digits {
		if p.i >= len(p.s) {
			return 0, errors.New("expected number at end of data")
		}
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	if p.i < len(p.s) && (p.s[p.i] == 'e' || p.s[p.i] == 'E') {
		j := p.i + 1
		if j < len(p.s) && (p.s[j] == '-' || p.s[j] == '+') {
			j++
		}
		if j < len(p.s) && isDigit(p.s[j]) {
			for j < len(p.s) && isDigit(p.s[j]) {
				j++
			}
			p.i = j
		}
	}
	v, err := strconv.ParseFloat(p.s[start:p.i], 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
