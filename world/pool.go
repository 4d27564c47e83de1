package world

import (
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
)

// hit is an occupied position found while probing a query box, with its insertion sequence.
type hit struct {
	pos cube.Pos
	seq uint64
}

var hitPool = sync.Pool{
	New: func() any {
		hits := make([]hit, 0, 32)
		return &hits
	},
}

func getHits() *[]hit {
	return hitPool.Get().(*[]hit)
}

func putHits(hits *[]hit) {
	*hits = (*hits)[:0]
	hitPool.Put(hits)
}
