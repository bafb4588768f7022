// Command geogrid samples a geographic volume as a grid and prints the
// render-space position and normal of every sample.
//
// Usage:
//
//	geogrid [-config path]
//
// The grid and bounds are read from geogrid.yaml and GEOGRID_*
// environment variables. See package internal/config.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"deedles.dev/telluris/geo"
	"deedles.dev/telluris/internal/config"
	"deedles.dev/telluris/internal/logging"
	"deedles.dev/telluris/spatialref"
	"deedles.dev/telluris/tile"
)

func main() {
	path := flag.String("config", "", "configuration file (default: geogrid.yaml in . or ./configs)")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "geogrid: %v\n", err)
		os.Exit(2)
	}
	logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	var ids tile.IDs
	t := tile.New(ids.Next(), cfg.GeoBounds())

	out := bufio.NewWriter(os.Stdout)
	err = run(out, t, cfg.Grid.Columns, cfg.Grid.Rows, spatialref.ECEF{})
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		slog.Error("write samples", "err", err)
		os.Exit(1)
	}
}

func run[R spatialref.Reference](w io.Writer, t tile.Tile, columns, rows int, ref R) error {
	slog.Info("sampling", "tile", t.ID(), "bounds", t.Bounds(), "columns", columns, "rows", rows)

	samples := make([]geo.Geographic, columns*rows)
	t.Bounds().Grid(samples, columns, rows)

	positions := make([]spatialref.Vec3, len(samples))
	spatialref.ConvertAll(ref, positions, samples)

	for i, p := range samples {
		n := ref.Normal(p)
		_, err := fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.3f\t%v\t%v\n", i, p.Lat(), p.Lon(), p.Elevation(), positions[i], n)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}

	slog.Debug("sampled", "tile", t.ID(), "points", len(samples), "center", t.GeoIndex())
	return nil
}
