package geoexport_test

import (
	"testing"

	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/geoexport"
	"github.com/keremnymn/citygen/roadnet"
	"github.com/stretchr/testify/require"
)

func TestFeatureCollectionShape(t *testing.T) {
	cfg := genconfig.DefaultConfig()

	seg := roadnet.New(roadnet.Point{X: 0, Y: 0}, roadnet.Point{X: 400, Y: 0}, 0, roadnet.HighwayMeta(), 1, cfg)

	fc := geoexport.FeatureCollection([]*roadnet.Segment{seg})

	require.Len(t, fc.Features, 1)
	f := fc.Features[0]
	require.Equal(t, 1, f.ID)
	require.Equal(t, true, f.Properties["highway"])
	require.Equal(t, false, f.Properties["severed"])
	require.InDelta(t, seg.Dir(), f.Properties["dir"].(float64), 1e-9)
}
