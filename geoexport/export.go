package geoexport

import (
	"github.com/keremnymn/citygen/roadnet"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection converts every segment in segments into a two-point
// LineString feature: geometry from Road.Start/Road.End, numeric feature
// id from Segment.ID, and properties {dir, severed, highway} — highway
// read as false when the segment's metadata leaves it unset.
func FeatureCollection(segments []*roadnet.Segment) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, seg := range segments {
		line := orb.LineString{
			{seg.Road.Start.X, seg.Road.Start.Y},
			{seg.Road.End.X, seg.Road.End.Y},
		}

		f := geojson.NewFeature(line)
		f.ID = seg.ID
		f.Properties["dir"] = seg.Dir()
		f.Properties["severed"] = seg.Q.Severed
		f.Properties["highway"] = seg.Q.IsHighway()

		fc.Append(f)
	}

	return fc
}
