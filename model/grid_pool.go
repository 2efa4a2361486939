package model

import "sync"

// GridPool recycles generation buffers so a long run does not allocate a new
// grid every step. A nil *GridPool is valid and simply allocates.
type GridPool struct {
	pool sync.Pool
}

// NewGridPool returns an empty pool
func NewGridPool() *GridPool {
	p := &GridPool{}
	p.pool.New = func() any { return &Grid{} }
	return p
}

// Get hands out an all-dead grid of the given size
func (p *GridPool) Get(height, width int) *Grid {
	if p == nil {
		return newBlankGrid(height, width)
	}
	g := p.pool.Get().(*Grid)
	g.Reset(height, width)
	return g
}

// GetLike hands out an all-dead grid with the dimensions of g
func (p *GridPool) GetLike(g *Grid) *Grid {
	return p.Get(g.height, g.width)
}

// Put takes back a generation that is no longer referenced
func (p *GridPool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}

// GridToPool is Put for call sites that hold an optional pool
func GridToPool(grid *Grid, pool *GridPool) {
	pool.Put(grid)
}
