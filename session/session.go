package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sfcurves/curve"
)

var (
	ErrNoOrderSelected = errors.New("session: no order selected")
)

// State is one published view of a session. A State is never modified after
// it is published, so it is safe to read from any goroutine.
type State struct {
	GridN int
	// Order is the last selected ordering, zero until SelectOrder is called.
	Order curve.OrderKind
	// Set is the current grid in generation order.
	Set curve.CoordinateSet
	// Traversal is Set sorted by Order. It is empty after a resize until the
	// next SelectOrder.
	Traversal curve.CoordinateSet
}

// HasTraversal reports whether the state carries a sorted traversal for the
// current grid.
func (s *State) HasTraversal() bool {
	return s.Traversal.Order() != 0
}

// Session owns the grid resolution, selected order and coordinate set of an
// interactive controller. Every transition builds a complete new State and
// swaps it in under the lock.
type Session struct {
	log  logger.Logger
	opts Options

	mu    sync.RWMutex
	state *State
}

func New(log logger.Logger, gridN int, opts ...Option) (*Session, error) {
	s := &Session{
		log:  log,
		opts: Options{minGridN: DefaultMinGridN},
	}
	for _, o := range opts {
		o(&s.opts)
	}
	if s.opts.minGridN <= 0 {
		return nil, fmt.Errorf("%w: minimum grid size must be > 0, got %d", curve.ErrInvalidArgument, s.opts.minGridN)
	}

	set, err := curve.GenerateGrid(gridN, s.opts.curveOpts...)
	if err != nil {
		return nil, err
	}
	s.state = &State{GridN: gridN, Set: set}
	return s, nil
}

// Snapshot returns the current state.
func (s *Session) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Resize regenerates the coordinate set for gridN. The selected order is
// kept but the traversal is dropped until the next SelectOrder.
func (s *Session) Resize(gridN int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resize(gridN)
}

func (s *Session) resize(gridN int) error {
	set, err := curve.GenerateGrid(gridN, s.opts.curveOpts...)
	if err != nil {
		return err
	}
	s.log.Debugf("resize: %d -> %d (%d cells)", s.state.GridN, gridN, set.Len())
	s.state = &State{GridN: gridN, Order: s.state.Order, Set: set}
	return nil
}

// Grow doubles the grid resolution.
func (s *Session) Grow() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resize(s.state.GridN * 2)
}

// Shrink halves the grid resolution unless that would take it below the
// configured minimum, in which case the state is left as it is and false is
// returned.
func (s *Session) Shrink() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.GridN / 2
	if next < s.opts.minGridN {
		return false, nil
	}
	if err := s.resize(next); err != nil {
		return false, err
	}
	return true, nil
}

// SelectOrder sorts the current set by kind and publishes the result as the
// traversal.
func (s *Session) SelectOrder(kind curve.OrderKind) (curve.CoordinateSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted, err := curve.SortByOrder(s.state.Set, kind)
	if err != nil {
		return curve.CoordinateSet{}, err
	}
	s.log.Debugf("select order: %v over %d x %d", kind, s.state.GridN, s.state.GridN)
	s.state = &State{GridN: s.state.GridN, Order: kind, Set: s.state.Set, Traversal: sorted}
	return sorted, nil
}

// Traversal returns the published traversal, or ErrNoOrderSelected if none
// has been selected since the last resize.
func (s *Session) Traversal() (curve.CoordinateSet, error) {
	st := s.Snapshot()
	if !st.HasTraversal() {
		return curve.CoordinateSet{}, ErrNoOrderSelected
	}
	return st.Traversal, nil
}
