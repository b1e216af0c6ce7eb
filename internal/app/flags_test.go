package app

import (
	"flag"
	"testing"

	"minesweeper/internal/core"
	"minesweeper/internal/mines"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "9", "-log-level", "debug", "-no-stats", "-config", "x.yaml"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != 9 || cfg.LogLevel != "debug" || !cfg.NoStats || cfg.ConfigPath != "x.yaml" {
		t.Fatalf("config %+v", cfg)
	}
	if cfg.TPS != 60 || cfg.AppName != "minesweeper" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestBoardLayoutCentres(t *testing.T) {
	l := BoardLayout(800, 600)(8)
	if l.TileSize != 73 {
		t.Fatalf("tile %v, want 73", l.TileSize)
	}
	span := l.TileSize * 8
	if l.Origin.X != (800-span)/2 || l.Origin.Y != (600-span)/2 {
		t.Fatalf("origin %+v", l.Origin)
	}
}

func TestCellAt(t *testing.T) {
	l := BoardLayout(800, 600)(8)
	cases := []struct {
		x, y float64
		want mines.Cell
	}{
		{l.Origin.X + 1, l.Origin.Y + 1, mines.Cell{Col: 0, Row: 0}},
		{l.Origin.X + l.TileSize*2.5, l.Origin.Y + l.TileSize*5.5, mines.Cell{Col: 2, Row: 5}},
		{0, 0, mines.Cell{Col: 0, Row: 0}},
		{800, 600, mines.Cell{Col: 7, Row: 7}},
	}
	for _, c := range cases {
		if got := CellAt(l, 8, c.x, c.y); got != c.want {
			t.Errorf("CellAt(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestCellAtShiftedOrigin(t *testing.T) {
	l := BoardLayout(800, 600)(8)
	cell := mines.Cell{Col: 4, Row: 4}
	x := l.Origin.X + l.TileSize*4.1
	y := l.Origin.Y + l.TileSize*4.1

	shaken := l
	shaken.Origin = l.Origin.Add(core.Vec2{X: 30, Y: -30})
	if got := CellAt(shaken, 8, x+30, y-30); got != cell {
		t.Fatalf("CellAt on shaken board = %v, want %v", got, cell)
	}
	if got := CellAt(l, 8, x+30, y-30); got == cell {
		t.Fatal("ignoring the shake should pick a neighbour")
	}
}
