package core

import "sort"

// Size describes the dimensions of a board in cells.
type Size struct {
	W int
	H int
}

// Vec2 is a 2D vector in presentation units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Difficulty names a selectable board size.
type Difficulty struct {
	Name string
	Size int
}

var difficulties = map[string]Difficulty{}

// Register adds or replaces a difficulty preset under its name.
func Register(d Difficulty) {
	if d.Name == "" || d.Size <= 0 {
		return
	}
	difficulties[d.Name] = d
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Difficulty, bool) {
	d, ok := difficulties[name]
	return d, ok
}

// Difficulties returns the registered presets ordered by board size, then name.
func Difficulties() []Difficulty {
	out := make([]Difficulty, 0, len(difficulties))
	for _, d := range difficulties {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size < out[j].Size
		}
		return out[i].Name < out[j].Name
	})
	return out
}
