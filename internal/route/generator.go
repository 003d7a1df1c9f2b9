package route

import (
	"math/rand"
	"sync"
	"time"

	"backend-pathpal/internal/poi"
	"backend-pathpal/internal/shared/geo"
)

// Generator builds candidate routes from the catalogs. The random source
// is injectable so tests can supply a deterministic sequence.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a generator backed by src, or by a time-seeded
// source when src is nil.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rnd: rand.New(src)}
}

// NearestNeighborOrder greedily orders candidate indices starting from the
// given position, always stepping to the closest unvisited POI. Ties go to
// the first-encountered minimum.
func NearestNeighborOrder(startLat, startLng float64, candidates []poi.POI) []int {
	order := make([]int, 0, len(candidates))
	visited := make([]bool, len(candidates))

	curLat, curLng := startLat, startLng
	for len(order) < len(candidates) {
		best := -1
		bestDist := 0.0
		for i, c := range candidates {
			if visited[i] {
				continue
			}
			d := geo.HaversineMiles(curLat, curLng, c.Lat, c.Lng)
			if best == -1 || d < bestDist {
				best = i
				bestDist = d
			}
		}
		visited[best] = true
		order = append(order, best)
		curLat, curLng = candidates[best].Lat, candidates[best].Lng
	}
	return order
}

// NearestRoute builds the efficient route over the full catalog for a mode,
// ordered by nearest neighbor from the start position.
func NearestRoute(mode poi.Mode, startLat, startLng float64) Route {
	return Route{
		Mode:  mode,
		Stops: NearestNeighborOrder(startLat, startLng, poi.Catalog(mode)),
	}
}

// ShuffledOrder returns a uniformly random permutation of [0, n).
func (g *Generator) ShuffledOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := n - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// ShuffledRoute builds a deliberately unordered route over the full catalog
// for a mode; longer than the nearest-neighbor route more often than not.
func (g *Generator) ShuffledRoute(mode poi.Mode) Route {
	return Route{
		Mode:  mode,
		Stops: g.ShuffledOrder(poi.Size(mode)),
	}
}

// SampleCurated picks count routes from the curated pool for a mode by
// shuffling pool indices and taking a prefix. Re-invoke to re-randomize
// the presented choices.
func (g *Generator) SampleCurated(mode poi.Mode, count int) []Route {
	pool := CuratedPool(mode)
	order := g.ShuffledOrder(len(pool))
	if count > len(pool) {
		count = len(pool)
	}

	picked := make([]Route, 0, count)
	for _, i := range order[:count] {
		picked = append(picked, pool[i])
	}
	return picked
}
