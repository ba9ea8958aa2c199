package growth

import (
	"container/heap"
	"math/rand"

	"github.com/keremnymn/citygen/branch"
	"github.com/keremnymn/citygen/constraints"
	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/population"
	"github.com/keremnymn/citygen/quadtree"
	"github.com/keremnymn/citygen/roadnet"
)

// Result is the output of a completed growth run: every accepted segment,
// indexed by id in store, plus the spatial index built alongside it.
type Result struct {
	Store *roadnet.Store
	Tree  *quadtree.Node
}

// Generate runs the full growth simulation under cfg and returns the
// accepted segments and the quadtree indexing them. Determinism: the same
// cfg.Seed reproduces the same sequence of RNG draws (branch angles,
// branch probabilities) and the same population field, so a fixed seed
// gives bit-identical output across runs on the same platform.
func Generate(cfg genconfig.Config) Result {
	r := &runner{
		store: roadnet.NewStore(),
		tree:  quadtree.New(),
		field: population.NewDefaultField(cfg.Seed),
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		cfg:   cfg,
	}
	r.init()
	r.process()
	return Result{Store: r.store, Tree: r.tree}
}

// runner holds the mutable state for a single growth run: the segment
// store, the spatial index, the population field, the seeded RNG, and the
// priority queue of pending candidates.
type runner struct {
	store *roadnet.Store
	tree  *quadtree.Node
	field *population.Field
	rng   *rand.Rand
	cfg   genconfig.Config

	pq  segmentPQ
	seq int
}

// push enqueues seg with the next sequence number, breaking future T-ties
// in FIFO order.
func (r *runner) push(seg *roadnet.Segment) {
	heap.Push(&r.pq, &queueItem{seg: seg, seq: r.seq})
	r.seq++
}

// init seeds the queue with the two opposite-facing highway segments
// radiating from the origin, ids 1 and 2, linked to each other in b.
func (r *runner) init() {
	heap.Init(&r.pq)

	rootID := r.store.NextID()
	root := roadnet.New(
		roadnet.Point{X: 0, Y: 0},
		roadnet.Point{X: r.cfg.HighwaySegmentLength, Y: 0},
		0, roadnet.HighwayMeta(), rootID, r.cfg,
	)

	oppositeID := r.store.NextID()
	opposite := roadnet.New(
		roadnet.Point{X: 0, Y: 0},
		roadnet.Point{X: -r.cfg.HighwaySegmentLength, Y: 0},
		0, roadnet.HighwayMeta(), oppositeID, r.cfg,
	)

	root.Links.B = append(root.Links.B, opposite.ID)
	opposite.Links.B = append(opposite.Links.B, root.ID)

	r.push(root)
	r.push(opposite)
}

// process repeatedly pops the minimum-T candidate, resolves it against the
// existing graph, and on acceptance splices it into the link graph and
// spatial index and pushes its branch.Generate continuations. It stops
// when the queue drains or the accepted count reaches SegmentCountLimit —
// both are normal termination, not errors (see constraints and roadnet
// package docs for the corresponding reject/fail-fast boundaries).
func (r *runner) process() {
	for r.pq.Len() > 0 && r.store.Len() < r.cfg.SegmentCountLimit {
		item := heap.Pop(&r.pq).(*queueItem)
		candidate := item.seg

		outcome := constraints.Resolve(candidate, r.store, r.tree, r.cfg)
		if outcome == constraints.OutcomeRejected {
			continue
		}

		r.linkToPrev(candidate)

		for _, b := range branch.Generate(candidate, r.store, r.field, r.rng, r.cfg) {
			b.T = candidate.T + 1 + b.T
			r.push(b)
		}

		r.tree.Insert(candidate.Collider.Limits())
		r.store.Append(candidate)
	}
}

// linkToPrev splices an accepted candidate onto the predecessor segment it
// was generated from (if any): candidate inherits a back-link to every
// segment already forward-linked from the predecessor, each of those
// segments gains a forward (or back) link to candidate on whichever end
// referenced the predecessor, and candidate and the predecessor link to
// each other.
func (r *runner) linkToPrev(candidate *roadnet.Segment) {
	if candidate.PrevSegmentToLink == nil {
		return
	}
	prev := r.store.MustGet(*candidate.PrevSegmentToLink)

	existing := append([]int(nil), prev.Links.F...)
	for _, j := range existing {
		candidate.Links.B = append(candidate.Links.B, j)

		neighbor := r.store.MustGet(j)
		if _, dir := neighbor.LinksForEndContaining(prev.ID); dir == roadnet.DirectionBack {
			neighbor.Links.B = append(neighbor.Links.B, candidate.ID)
		} else if dir == roadnet.DirectionForward {
			neighbor.Links.F = append(neighbor.Links.F, candidate.ID)
		}
	}

	prev.Links.F = append(prev.Links.F, candidate.ID)
	candidate.Links.B = append(candidate.Links.B, prev.ID)
}
