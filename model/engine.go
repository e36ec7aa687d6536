package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Engine runs Conway's Game of Life over two fixed-size grids.
//
// One grid is the front (the published generation, readable through Front) and the
// other is the back, which Step fills with the next generation before the roles
// swap. Cells are only ever 0 or 1.
//
// Engine is not safe for concurrent use.
type Engine struct {
	width   int
	height  int
	wrap    bool
	workers int

	grids      [2]*Grid
	front      uint8
	generation int
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers splits each step into n row bands computed concurrently. Values below 2
// keep stepping on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = max(1, n)
	}
}

// NewEngine creates an engine with two all-dead grids of width × height cells.
// When wrap is set, neighbor lookups wrap around the opposite edges.
func NewEngine(width, height int, wrap bool, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewEngine] width=%d height=%d", width, height)
	}

	e := &Engine{
		width:   width,
		height:  height,
		wrap:    wrap,
		workers: 1,
		grids:   [2]*Grid{newGrid(width, height), newGrid(width, height)},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Width returns the number of columns
func (e *Engine) Width() int { return e.width }

// Height returns the number of rows
func (e *Engine) Height() int { return e.height }

// WrapMode reports whether the grid is toroidal
func (e *Engine) WrapMode() bool { return e.wrap }

// Workers returns the number of row bands a step is split into
func (e *Engine) Workers() int { return e.workers }

// Generation returns the number of steps completed since construction or the last Clear
func (e *Engine) Generation() int { return e.generation }

// Front returns a read-only view of the current generation
func (e *Engine) Front() View { return View{g: e.grids[e.front]} }

// Back returns a read-only view of the buffer the next step writes into
func (e *Engine) Back() View { return View{g: e.grids[1-e.front]} }

// SetAlive marks the given cells alive in the front grid
func (e *Engine) SetAlive(coords ...Coord) error {
	if err := e.validate(coords); err != nil {
		return errors.Wrap(err, "[SetAlive]")
	}
	e.fill(coords, 1)
	return nil
}

// SetDead marks the given cells dead in the front grid
func (e *Engine) SetDead(coords ...Coord) error {
	if err := e.validate(coords); err != nil {
		return errors.Wrap(err, "[SetDead]")
	}
	e.fill(coords, 0)
	return nil
}

// validate rejects the whole batch if any coordinate is outside the grid, so a failed
// seed never leaves a partial write behind
func (e *Engine) validate(coords []Coord) error {
	front := e.grids[e.front]
	for _, c := range coords {
		if !front.inBounds(c) {
			return errors.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d grid", c.Col, c.Row, e.width, e.height)
		}
	}
	return nil
}

func (e *Engine) fill(coords []Coord, value uint8) {
	front := e.grids[e.front]
	for _, c := range coords {
		front.set(c, value)
	}
}

// Clear resets the engine to its freshly-constructed state
func (e *Engine) Clear() {
	e.grids[0].clear()
	e.grids[1].clear()
	e.front = 0
	e.generation = 0
}

// Step advances the simulation by exactly one generation.
//
// Every cell of the back grid is computed from the untouched front grid; the roles
// swap only after the whole pass is done.
func (e *Engine) Step() {
	var (
		cur  = e.grids[e.front]
		next = e.grids[1-e.front]
	)

	var err error
	if e.workers <= 1 || e.height < 2 {
		err = cur.stepRows(next, 0, e.height, e.wrap)
	} else {
		err = e.stepParallel(cur, next)
	}
	if err != nil {
		// Both buffers are allocated with the engine's dimensions, so this is a broken invariant
		panic(errors.Wrap(err, "[Step]"))
	}

	e.front = 1 - e.front
	e.generation++
}

// stepParallel computes the next generation in row bands, returning once every band is written
func (e *Engine) stepParallel(cur, next *Grid) error {
	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, e.height)
		rowsPerWorker = (e.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, e.height)
		)
		if startRow >= e.height {
			break
		}

		eg.Go(func() error {
			return cur.stepRows(next, startRow, endRow, e.wrap)
		})
	}

	return eg.Wait()
}
