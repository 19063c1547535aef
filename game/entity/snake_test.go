package entity

import (
	"testing"

	"the-snake/game/types"
)

type cellCall struct {
	p    types.Point
	fill types.Color
}

type recordingSurface struct {
	cells []cellCall
}

func (r *recordingSurface) Fill(types.Color) {}
func (r *recordingSurface) DrawCell(p types.Point, _ int, fill, _ types.Color) {
	r.cells = append(r.cells, cellCall{p: p, fill: fill})
}
func (r *recordingSurface) SetTitle(string) {}
func (r *recordingSurface) Present()        {}

func TestNewSnakeStartsAtCenter(t *testing.T) {
	s := NewSnake(types.DefaultGrid, types.SnakeColor)
	if s.Size() != 1 || s.Length != 1 {
		t.Fatalf("expected length 1, got size=%d length=%d", s.Size(), s.Length)
	}
	if s.GetHead() != (types.Point{X: 320, Y: 240}) {
		t.Fatalf("unexpected head %v", s.GetHead())
	}
	if s.Direction != types.RIGHT {
		t.Fatalf("expected heading right, got %v", s.Direction)
	}
}

func TestSetDirectionRejectsReverse(t *testing.T) {
	s := NewSnake(types.DefaultGrid, types.SnakeColor)

	if s.SetDirection(types.LEFT) {
		t.Fatal("left accepted while heading right")
	}
	s.UpdateDirection()
	if s.Direction != types.RIGHT {
		t.Fatalf("heading changed to %v", s.Direction)
	}

	// Reversal is judged against the active heading, not the pending one
	if !s.SetDirection(types.UP) {
		t.Fatal("up rejected")
	}
	if s.SetDirection(types.LEFT) {
		t.Fatal("left accepted while still heading right")
	}
	if s.PendingDirection() != types.UP {
		t.Fatalf("pending = %v, want up", s.PendingDirection())
	}
	if s.Direction != types.RIGHT {
		t.Fatal("active heading must not change before the step")
	}
	s.UpdateDirection()
	if s.Direction != types.UP || s.PendingDirection() != types.NONE {
		t.Fatalf("after update: active=%v pending=%v", s.Direction, s.PendingDirection())
	}
}

func TestLaterInputOverridesPending(t *testing.T) {
	s := NewSnake(types.DefaultGrid, types.SnakeColor)
	s.SetDirection(types.UP)
	s.SetDirection(types.DOWN)
	s.UpdateDirection()
	if s.Direction != types.DOWN {
		t.Fatalf("expected last valid input to win, got %v", s.Direction)
	}
}

func TestNextHeadIsPure(t *testing.T) {
	s := NewSnake(types.DefaultGrid, types.SnakeColor)
	s.Body = []types.Point{{X: 620, Y: 0}}
	got := s.NextHead()
	if got != (types.Point{X: 0, Y: 0}) {
		t.Fatalf("NextHead = %v", got)
	}
	if s.GetHead() != (types.Point{X: 620, Y: 0}) || s.Size() != 1 {
		t.Fatal("NextHead mutated the snake")
	}
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.DefaultGrid, types.SnakeColor)
	start := s.GetHead()
	next := s.NextHead()

	s.Move(next)
	if s.Size() != 2 || s.Body[0] != next || s.Body[1] != start {
		t.Fatalf("unexpected body after move: %v", s.Body)
	}
	s.RemoveTail()
	if s.Size() != 1 || s.GetHead() != next {
		t.Fatalf("unexpected body after trim: %v", s.Body)
	}
	freed, ok := s.Freed()
	if !ok || freed != start {
		t.Fatalf("freed = %v,%v want %v", freed, ok, start)
	}

	s.Grow()
	s.Move(s.NextHead())
	s.RemoveTail()
	if s.Size() != 2 {
		t.Fatalf("grown snake should keep its tail, size=%d", s.Size())
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewSnake(types.DefaultGrid, types.SnakeColor)
	s.Body = []types.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0}}
	s.Length = 3
	s.Direction = types.LEFT
	s.SetDirection(types.UP)
	s.RemoveTail()

	s.Reset()
	if s.Size() != 1 || s.Length != 1 || s.Direction != types.RIGHT {
		t.Fatalf("reset left size=%d length=%d dir=%v", s.Size(), s.Length, s.Direction)
	}
	if s.PendingDirection() != types.NONE {
		t.Fatal("reset kept a pending heading")
	}
	if _, ok := s.Freed(); ok {
		t.Fatal("reset kept the freed cell")
	}
}

func TestSnakeDrawErasesFreedCell(t *testing.T) {
	s := NewSnake(types.DefaultGrid, types.SnakeColor)
	tail := s.GetHead()
	s.Move(s.NextHead())
	s.RemoveTail()

	surface := &recordingSurface{}
	s.Draw(surface)
	if len(surface.cells) != 2 {
		t.Fatalf("expected body cell plus erased cell, got %d calls", len(surface.cells))
	}
	if surface.cells[0].fill != types.SnakeColor {
		t.Fatalf("body drawn with %v", surface.cells[0].fill)
	}
	last := surface.cells[1]
	if last.p != tail || last.fill != types.BackgroundColor {
		t.Fatalf("freed cell drawn as %+v", last)
	}
}

func TestAppleDraw(t *testing.T) {
	a := NewApple(types.Point{X: 40, Y: 60}, types.AppleColor)
	surface := &recordingSurface{}
	a.Draw(surface)
	if len(surface.cells) != 1 || surface.cells[0].p != a.Position || surface.cells[0].fill != types.AppleColor {
		t.Fatalf("unexpected draw calls %+v", surface.cells)
	}
}
