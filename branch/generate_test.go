package branch_test

import (
	"math/rand"
	"testing"

	"github.com/keremnymn/citygen/branch"
	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/population"
	"github.com/keremnymn/citygen/roadnet"
	"github.com/stretchr/testify/require"
)

func TestGenerateReturnsNilWhenSevered(t *testing.T) {
	cfg := genconfig.DefaultConfig()
	store := roadnet.NewStore()
	field := population.NewDefaultField(cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	p := roadnet.New(roadnet.Point{X: 0, Y: 0}, roadnet.Point{X: 0, Y: 400}, 0, roadnet.HighwayMeta(), store.NextID(), cfg)
	p.Q.Severed = true

	require.Nil(t, branch.Generate(p, store, field, rng, cfg))
}

func TestGenerateStampsPrevSegmentToLink(t *testing.T) {
	cfg := genconfig.DefaultConfig()
	store := roadnet.NewStore()
	field := population.NewDefaultField(cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	p := roadnet.New(roadnet.Point{X: 0, Y: 0}, roadnet.Point{X: 0, Y: 400}, 0, roadnet.HighwayMeta(), store.NextID(), cfg)

	out := branch.Generate(p, store, field, rng, cfg)
	require.NotEmpty(t, out)
	for _, b := range out {
		require.NotNil(t, b.PrevSegmentToLink)
		require.Equal(t, p.ID, *b.PrevSegmentToLink)
		require.NotZero(t, b.ID)
	}
}

func TestGenerateHighwayContinuationPreservesMeta(t *testing.T) {
	cfg := genconfig.DefaultConfig()
	store := roadnet.NewStore()
	field := population.NewDefaultField(cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	p := roadnet.New(roadnet.Point{X: 0, Y: 0}, roadnet.Point{X: 0, Y: 400}, 0, roadnet.HighwayMeta(), store.NextID(), cfg)

	out := branch.Generate(p, store, field, rng, cfg)
	require.NotEmpty(t, out)
	// The first emitted candidate is always the forward continuation
	// (straight or randomized-straight), which must carry p's highway flag
	// forward per the continuation rule.
	require.True(t, out[0].Q.IsHighway())
}

func TestGenerateNormalRoadEmitsOnlyNormalRoads(t *testing.T) {
	cfg := genconfig.DefaultConfig()
	store := roadnet.NewStore()
	field := population.NewDefaultField(cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	p := roadnet.New(roadnet.Point{X: 0, Y: 0}, roadnet.Point{X: 0, Y: 300}, 0, roadnet.NewMeta(), store.NextID(), cfg)

	// A normal road's continuation carries its own (normal) metadata and
	// its side branches start from fresh metadata, so nothing it emits can
	// be a highway or arrive pre-severed.
	out := branch.Generate(p, store, field, rng, cfg)
	for _, b := range out {
		require.False(t, b.Q.IsHighway())
		require.False(t, b.Q.Severed)
	}
}
