package snake

import (
	"reflect"
	"testing"
)

func TestAdvanceMovesHead(t *testing.T) {
	tests := []struct {
		heading Direction
		want    Point
	}{
		{DirUp, Point{X: 15, Y: 9}},
		{DirDown, Point{X: 15, Y: 11}},
		{DirLeft, Point{X: 14, Y: 10}},
		{DirRight, Point{X: 16, Y: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.heading.String(), func(t *testing.T) {
			s := NewSnake(Point{X: 15, Y: 10}, tc.heading)
			if !s.Advance(false, 30, 20) {
				t.Fatal("Advance() = false, expected true")
			}
			if s.Head() != tc.want {
				t.Errorf("Head() = %+v, expected %+v", s.Head(), tc.want)
			}
			if s.Len() != 1 {
				t.Errorf("Len() = %d, expected 1", s.Len())
			}
			if s.Occupies(15, 10) {
				t.Error("old head cell should be vacated")
			}
		})
	}
}

func TestAdvanceBoundary(t *testing.T) {
	const cols, rows = 6, 4

	tests := []struct {
		name    string
		start   Point
		heading Direction
	}{
		{"top edge up", Point{X: 3, Y: 0}, DirUp},
		{"left edge left", Point{X: 0, Y: 2}, DirLeft},
		{"bottom edge down", Point{X: 3, Y: rows - 1}, DirDown},
		{"right edge right", Point{X: cols - 1, Y: 2}, DirRight},
		{"corner up", Point{X: 0, Y: 0}, DirUp},
		{"corner left", Point{X: 0, Y: 0}, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSnakeFromSegments(tc.heading, tc.start, Point{X: 3, Y: 1})
			before := s.Segments()

			if got := s.Move(false, cols, rows); got != CauseWall {
				t.Fatalf("Move() = %s, expected wall", got)
			}
			if !reflect.DeepEqual(s.Segments(), before) {
				t.Errorf("segments changed on failed move: %v -> %v", before, s.Segments())
			}
		})
	}
}

func TestAdvanceAlongEdgeIsAllowed(t *testing.T) {
	// Moving parallel to an edge must not trip the bounds check.
	s := NewSnake(Point{X: 0, Y: 0}, DirRight)
	if !s.Advance(false, 3, 3) {
		t.Fatal("moving right along the top edge should succeed")
	}
	if !s.Advance(false, 3, 3) {
		t.Fatal("reaching the last column should succeed")
	}
	if s.Advance(false, 3, 3) {
		t.Fatal("leaving the grid should fail")
	}
}

func TestAdvanceGrow(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, DirRight)

	if !s.Advance(true, 30, 20) {
		t.Fatal("Advance(grow) = false")
	}
	want := []Point{{X: 6, Y: 5}, {X: 5, Y: 5}}
	if !reflect.DeepEqual(s.Segments(), want) {
		t.Errorf("Segments() = %v, expected %v", s.Segments(), want)
	}

	if !s.Advance(false, 30, 20) {
		t.Fatal("Advance() = false")
	}
	want = []Point{{X: 7, Y: 5}, {X: 6, Y: 5}}
	if !reflect.DeepEqual(s.Segments(), want) {
		t.Errorf("Segments() = %v, expected %v", s.Segments(), want)
	}
}

func TestAdvanceIntoVacatingTail(t *testing.T) {
	// A 2x2 loop: the head moves into the cell the tail leaves.
	loop := func() *Snake {
		return newSnakeFromSegments(DirDown,
			Point{X: 1, Y: 1}, // head
			Point{X: 2, Y: 1},
			Point{X: 2, Y: 2},
			Point{X: 1, Y: 2}, // tail
		)
	}

	s := loop()
	if got := s.Move(false, 10, 10); got != CauseNone {
		t.Fatalf("Move() into vacating tail = %s, expected none", got)
	}
	if s.Head() != (Point{X: 1, Y: 2}) || s.Len() != 4 {
		t.Errorf("after move: head %+v len %d", s.Head(), s.Len())
	}

	// When growing the tail stays, so the same move is a collision.
	s = loop()
	before := s.Segments()
	if got := s.Move(true, 10, 10); got != CauseSelf {
		t.Fatalf("Move(grow) into retained tail = %s, expected self", got)
	}
	if !reflect.DeepEqual(s.Segments(), before) {
		t.Errorf("segments changed on failed move: %v -> %v", before, s.Segments())
	}
}

func TestSelfCollisionViaPerpendicularTurn(t *testing.T) {
	s := newSnakeFromSegments(DirRight,
		Point{X: 5, Y: 5},
		Point{X: 4, Y: 5},
		Point{X: 3, Y: 5},
	)

	// Left is rejected directly but reachable through Up between moves.
	if s.SetHeading(DirLeft) {
		t.Fatal("reversal should be rejected")
	}
	if !s.SetHeading(DirUp) || !s.SetHeading(DirLeft) {
		t.Fatal("perpendicular turns should be accepted")
	}

	if got := s.Move(false, 30, 20); got != CauseSelf {
		t.Errorf("Move() into second segment = %s, expected self", got)
	}
}

func TestSetHeadingGating(t *testing.T) {
	all := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, current := range all {
		for _, requested := range all {
			s := NewSnake(Point{X: 1, Y: 1}, current)
			accepted := s.SetHeading(requested)

			if requested == current.Opposite() {
				if accepted || s.Heading() != current {
					t.Errorf("%s -> %s: reversal accepted", current, requested)
				}
				continue
			}
			if !accepted || s.Heading() != requested {
				t.Errorf("%s -> %s: heading = %s, expected %s", current, requested, s.Heading(), requested)
			}
		}
	}
}

func TestSetHeadingRejectsNone(t *testing.T) {
	s := NewSnake(Point{X: 1, Y: 1}, DirUp)
	if s.SetHeading(DirNone) {
		t.Error("DirNone should be rejected")
	}
	if s.Heading() != DirUp {
		t.Errorf("Heading() = %s, expected up", s.Heading())
	}
}

func TestOccupies(t *testing.T) {
	s := newSnakeFromSegments(DirRight, Point{X: 2, Y: 1}, Point{X: 1, Y: 1})

	if !s.Occupies(2, 1) || !s.Occupies(1, 1) {
		t.Error("Occupies should report every segment")
	}
	if s.Occupies(0, 1) || s.Occupies(2, 2) {
		t.Error("Occupies should be false for free cells")
	}
}

func TestEmptyBodyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Head() on an empty body should panic")
		}
	}()
	NewBody().Head()
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirNone:  DirNone,
	}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Errorf("%s.Opposite() = %s, expected %s", d, d.Opposite(), want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %s, %v", d.String(), got, err)
		}
	}
	if got, err := ParseDirection(" Right "); err != nil || got != DirRight {
		t.Errorf("ParseDirection should trim and ignore case, got %s, %v", got, err)
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("ParseDirection(north) should fail")
	}
}
