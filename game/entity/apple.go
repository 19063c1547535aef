package entity

import "the-snake/game/types"

type Apple struct {
	Position types.Point
	Color    types.Color
}

func NewApple(pos types.Point, color types.Color) *Apple {
	return &Apple{Position: pos, Color: color}
}

func (a *Apple) Draw(surface types.Surface) {
	surface.DrawCell(a.Position, types.CellSize, a.Color, types.BorderColor)
}
