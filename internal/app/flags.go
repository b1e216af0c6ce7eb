package app

import (
	"flag"
	"math"

	"minesweeper/internal/core"
	"minesweeper/internal/mines"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	ConfigPath string
	Seed       int64
	TPS        int
	LogLevel   string
	LogFile    string
	AppName    string
	NoStats    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 60, LogLevel: "info", AppName: "minesweeper"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML config file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board generation (0 = time based)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file")
	fs.StringVar(&c.AppName, "app-name", c.AppName, "data directory name for saved statistics")
	fs.BoolVar(&c.NoStats, "no-stats", c.NoStats, "keep statistics in memory only")
}

// tileMargin is subtracted from each tile so the board never touches the
// window edge.
const tileMargin = 2

// BoardLayout returns a layout function that centres a size x size board in
// a w x h window. Tiles are square and sized from the window height.
func BoardLayout(w, h int) func(size int) mines.Layout {
	return func(size int) mines.Layout {
		tile := math.Max(math.Floor(float64(h)/float64(size))-tileMargin, 1)
		span := tile * float64(size)
		return mines.Layout{
			Origin:   core.Vec2{X: (float64(w) - span) / 2, Y: (float64(h) - span) / 2},
			TileSize: tile,
		}
	}
}

// CellAt maps window coordinates to the clamped board cell under them.
func CellAt(l mines.Layout, size int, x, y float64) mines.Cell {
	col := int(math.Floor((x - l.Origin.X) / l.TileSize))
	row := int(math.Floor((y - l.Origin.Y) / l.TileSize))
	col = min(max(col, 0), size-1)
	row = min(max(row, 0), size-1)
	return mines.Cell{Col: col, Row: row}
}
