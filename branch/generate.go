package branch

import (
	"math"
	"math/rand"

	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/population"
	"github.com/keremnymn/citygen/roadnet"
)

// segmentFrom builds a candidate Segment starting at start, running length
// units in direction angleDeg (degrees, same convention as
// roadnet.Segment.Dir), scheduled at t, carrying metadata q. The segment is
// built with a placeholder id of 0 — a real, store-allocated id is only
// assigned once the candidate is actually chosen for emission (see assignID)
// — candidates evaluated and discarded (e.g. the losing side of a highway's
// random-forward comparison) never consume a store id.
func segmentFrom(start roadnet.Point, angleDeg, length, t float64, q roadnet.Meta, prevID int, cfg genconfig.Config) *roadnet.Segment {
	rad := angleDeg * math.Pi / 180
	end := roadnet.Point{
		X: start.X + length*math.Sin(rad),
		Y: start.Y + length*math.Cos(rad),
	}
	seg := roadnet.New(start, end, t, q, 0, cfg)
	seg.PrevSegmentToLink = &prevID
	return seg
}

// assignID allocates a real id from store for a candidate chosen for
// emission and stamps it onto the segment and its collider.
func assignID(seg *roadnet.Segment, store *roadnet.Store) *roadnet.Segment {
	seg.SetID(store.NextID())
	return seg
}

// emitSideBranch rolls the left probability gate first and the right one
// only if the left missed (at most one side per acceptance, left-biased)
// and, on a hit, builds and emits the corresponding branch via template.
// It returns nil if neither side's draw clears prob.
func emitSideBranch(rng *rand.Rand, prob, dir float64, cfg genconfig.Config, template func(float64) *roadnet.Segment, store *roadnet.Store) *roadnet.Segment {
	if rng.Float64() < prob {
		left := dir - 90 + RandomAngle(rng, Branch, cfg)
		return assignID(template(left), store)
	}
	if rng.Float64() < prob {
		right := dir + 90 + RandomAngle(rng, Branch, cfg)
		return assignID(template(right), store)
	}
	return nil
}

// Generate emits the 0-3 candidate continuations/branches that follow an
// accepted predecessor segment p, per the highway/normal branching rules.
// It returns nil if p is severed: a severed segment's end was clipped by a
// constraint and must not spawn further growth.
func Generate(p *roadnet.Segment, store *roadnet.Store, field *population.Field, rng *rand.Rand, cfg genconfig.Config) []*roadnet.Segment {
	if p.Q.Severed {
		return nil
	}

	dir := p.Dir()
	length := p.Length()
	end := p.Road.End

	var out []*roadnet.Segment

	// templateContinue preserves p's metadata and length: highway
	// continuations and highway side-branches stay highways.
	templateContinue := func(angle float64) *roadnet.Segment {
		return segmentFrom(end, angle, length, 0, p.Q, p.ID, cfg)
	}

	// templateBranch starts a fresh normal road, delayed when branching
	// off a highway.
	templateBranch := func(angle float64) *roadnet.Segment {
		t := 0.0
		if p.Q.IsHighway() {
			t = cfg.NormalBranchTimeDelayFromHighway
		}
		return segmentFrom(end, angle, cfg.DefaultSegmentLength, t, roadnet.NewMeta(), p.ID, cfg)
	}

	continueStraight := templateContinue(dir)
	straightPop := field.PopOnRoad(continueStraight.Road)

	if p.Q.IsHighway() {
		randStraight := templateContinue(dir + RandomAngle(rng, Forward, cfg))
		randPop := field.PopOnRoad(randStraight.Road)

		var roadPop float64
		if randPop > straightPop {
			out = append(out, assignID(randStraight, store))
			roadPop = randPop
		} else {
			out = append(out, assignID(continueStraight, store))
			roadPop = straightPop
		}

		if roadPop > cfg.HighwayBranchPopulationThreshold {
			if b := emitSideBranch(rng, cfg.HighwayBranchProbability, dir, cfg, templateContinue, store); b != nil {
				out = append(out, b)
			}
		}
	} else if straightPop > cfg.NormalBranchPopulationThreshold {
		out = append(out, assignID(continueStraight, store))
	}

	if straightPop > cfg.NormalBranchPopulationThreshold {
		if b := emitSideBranch(rng, cfg.DefaultBranchProbability, dir, cfg, templateBranch, store); b != nil {
			out = append(out, b)
		}
	}

	return out
}
