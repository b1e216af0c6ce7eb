package mines

import (
	"strconv"

	"minesweeper/internal/core"
)

// Parameters exposes the board's HUD values.
func (b *Board) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("size", "Size", b.size),
				intParam("mines", "Mines", b.mineTotal),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("flags", "Flags", b.flagCount),
				intParam("remaining", "Remaining", b.mineTotal-b.flagCount),
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: b.state.String()},
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}
