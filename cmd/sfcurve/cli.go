package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sfcurves/bitops"
	"github.com/forestrie/go-sfcurves/curve"
	"github.com/forestrie/go-sfcurves/session"
)

var CLI struct {
	LogLevel string `help:"logger level" default:"NOOP"`

	Order    Order    `cmd:"" help:"list the cells of the grid in traversal order"`
	Segments Segments `cmd:"" help:"list the traversal polyline in window pixels"`
	Compare  Compare  `cmd:"" help:"print the rank of every cell for each ordering"`
}

type gridCfg struct {
	GridN   int  `help:"cells per axis" default:"8" short:"n"`
	MaxBits uint `help:"interleaved key width" default:"32"`
}

func (g *gridCfg) session(log logger.Logger) (*session.Session, error) {
	return session.New(log, g.GridN, session.WithMaxBits(g.MaxBits))
}

type windowCfg struct {
	Window int `help:"square window size in pixels" default:"704"`
}

type orderCfg struct {
	Kind string `help:"ordering" default:"z" enum:"z,gray,double-gray" short:"k"`
}

func (o *orderCfg) traversal(s *session.Session) (curve.CoordinateSet, error) {
	kind, err := curve.ParseOrderKind(o.Kind)
	if err != nil {
		return curve.CoordinateSet{}, err
	}
	return s.SelectOrder(kind)
}

// layout places the cells of a gridN x gridN grid in a square window the way
// the renderer draws them: each cell is window/gridN pixels and the drawn grid
// stops at the largest multiple of gridN that fits.
type layout struct {
	cell   int
	extent int
}

func newLayout(window, gridN int) (layout, error) {
	extent, err := bitops.LargestMultipleAtMost(window, gridN)
	if err != nil {
		return layout{}, err
	}
	if extent == 0 {
		return layout{}, fmt.Errorf("%w: a %d pixel window cannot hold %d cells per axis", bitops.ErrOutOfRange, window, gridN)
	}
	return layout{cell: window / gridN, extent: extent}, nil
}

// centre returns the pixel centre of c.
func (l layout) centre(c curve.Coordinate) (int, int) {
	return int(c.X)*l.cell + l.cell/2, int(c.Y)*l.cell + l.cell/2
}

type Order struct {
	gridCfg
	windowCfg
	orderCfg
}

func (o *Order) Run(ctx *Context) error {
	s, err := o.session(ctx.log)
	if err != nil {
		return err
	}
	tr, err := o.traversal(s)
	if err != nil {
		return err
	}
	l, err := newLayout(o.Window, o.GridN)
	if err != nil {
		return err
	}
	return writeOrder(ctx.kctx.Stdout, tr, l)
}

func writeOrder(w io.Writer, tr curve.CoordinateSet, l layout) error {
	keys, err := curve.Keys(tr, tr.Order())
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# %v order, %d x %d, grid extent %dpx\nrank\tx\ty\tkey\tpx\tpy\n",
		tr.Order(), tr.GridN(), tr.GridN(), l.extent); err != nil {
		return err
	}
	for i, c := range tr.All() {
		px, py := l.centre(c)
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\n", i, c.X, c.Y, keys[i], px, py); err != nil {
			return err
		}
	}
	return nil
}

type Segments struct {
	gridCfg
	windowCfg
	orderCfg
}

func (sg *Segments) Run(ctx *Context) error {
	s, err := sg.session(ctx.log)
	if err != nil {
		return err
	}
	tr, err := sg.traversal(s)
	if err != nil {
		return err
	}
	l, err := newLayout(sg.Window, sg.GridN)
	if err != nil {
		return err
	}
	return writeSegments(ctx.kctx.Stdout, tr, l)
}

func writeSegments(w io.Writer, tr curve.CoordinateSet, l layout) error {
	i := 0
	for seg := range curve.TraversalSegments(tr) {
		x1, y1 := l.centre(seg.From)
		x2, y2 := l.centre(seg.To)
		if _, err := fmt.Fprintf(w, "%d\t%v -> %v\t(%d,%d) -> (%d,%d)\n", i, seg.From, seg.To, x1, y1, x2, y2); err != nil {
			return err
		}
		i++
	}
	return nil
}

type Compare struct {
	gridCfg
}

func (c *Compare) Run(ctx *Context) error {
	s, err := c.session(ctx.log)
	if err != nil {
		return err
	}
	for _, kind := range curve.OrderKinds {
		tr, err := s.SelectOrder(kind)
		if err != nil {
			return err
		}
		if err := writeRanks(ctx.kctx.Stdout, tr); err != nil {
			return err
		}
	}
	return nil
}

// writeRanks prints a gridN x gridN table, row y column x, holding the
// position of each cell along the traversal.
func writeRanks(w io.Writer, tr curve.CoordinateSet) error {
	n := tr.GridN()
	ranks := make([]int, n*n)
	for i, c := range tr.All() {
		ranks[int(c.Y)*n+int(c.X)] = i
	}
	width := len(fmt.Sprint(n*n - 1))

	if _, err := fmt.Fprintf(w, "%v\n", tr.Order()); err != nil {
		return err
	}
	var row strings.Builder
	for y := 0; y < n; y++ {
		row.Reset()
		for x := 0; x < n; x++ {
			if x > 0 {
				row.WriteByte(' ')
			}
			fmt.Fprintf(&row, "%*d", width, ranks[y*n+x])
		}
		row.WriteByte('\n')
		if _, err := io.WriteString(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}
