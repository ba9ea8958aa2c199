// Command citygen drives growth.Generate with the stock configuration
// and writes the resulting road network to a GeoJSON file.
//
// Usage:
//
//	citygen [-seed N] [-limit N] [-out path.geojson]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/keremnymn/citygen/genconfig"
	"github.com/keremnymn/citygen/geoexport"
	"github.com/keremnymn/citygen/growth"
)

func main() {
	seed := flag.Int64("seed", genconfig.DefaultConfig().Seed, "RNG/noise seed")
	limit := flag.Int("limit", genconfig.DefaultConfig().SegmentCountLimit, "segment count limit")
	out := flag.String("out", "output.geojson", "output GeoJSON path")
	flag.Parse()

	if *limit <= 0 {
		log.Fatalf("citygen: -limit must be positive, got %d", *limit)
	}

	cfg := genconfig.New(
		genconfig.WithSeed(*seed),
		genconfig.WithSegmentCountLimit(*limit),
	)

	result := growth.Generate(cfg)

	fc := geoexport.FeatureCollection(result.Store.All())

	data, err := fc.MarshalJSON()
	if err != nil {
		log.Fatalf("citygen: marshal feature collection: %v", err)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("citygen: write %s: %v", *out, err)
	}

	log.Printf("citygen: wrote %d segments to %s", result.Store.Len(), *out)
}
