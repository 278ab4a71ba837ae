package snake

// Cause records why a move failed.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall       // Head would leave the grid
	CauseSelf       // Head would land on a retained segment
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Snake is the player-controlled entity: a body and a heading.
type Snake struct {
	body    *Body
	heading Direction
}

// NewSnake creates a single-segment snake at start.
func NewSnake(start Point, heading Direction) *Snake {
	return &Snake{
		body:    NewBody(start),
		heading: heading,
	}
}

// newSnakeFromSegments builds a snake with an explicit body, head first.
// Used by tests to set up longer snakes.
func newSnakeFromSegments(heading Direction, segments ...Point) *Snake {
	return &Snake{
		body:    NewBody(segments...),
		heading: heading,
	}
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// SetHeading changes the heading unless d reverses the current one.
// Repeats and perpendicular turns are accepted. Every request is judged
// against the heading as it stands now, so two quick perpendicular turns
// between moves can still point the snake back along its body.
// Returns whether the request was accepted.
func (s *Snake) SetHeading(d Direction) bool {
	if !d.Valid() || d == s.heading.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// Head returns the head cell. Panics if the body is empty.
func (s *Snake) Head() Point {
	return s.body.Head()
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Segments returns a copy of the body cells, head first.
func (s *Snake) Segments() []Point {
	return s.body.Segments()
}

// Body exposes the body for read-only traversal.
func (s *Snake) Body() *Body {
	return s.body
}

// Occupies reports whether any segment covers (x, y).
func (s *Snake) Occupies(x, y int) bool {
	return s.body.Contains(Point{X: x, Y: y})
}

// Advance moves the snake one cell along its heading.
// If grow is false the tail cell is vacated in the same move, so the head may
// enter the cell the tail is leaving. Returns false if the head would leave
// the cols x rows grid or hit the body; the snake is left untouched then.
func (s *Snake) Advance(grow bool, cols, rows int) bool {
	return s.Move(grow, cols, rows) == CauseNone
}

// Move is Advance reporting which collision, if any, stopped the snake.
func (s *Snake) Move(grow bool, cols, rows int) Cause {
	head := s.body.Head()

	// Bounds are checked before the offset is applied so an off-grid
	// coordinate never exists.
	if (s.heading == DirUp && head.Y == 0) ||
		(s.heading == DirLeft && head.X == 0) ||
		(s.heading == DirDown && head.Y == rows-1) ||
		(s.heading == DirRight && head.X == cols-1) {
		return CauseWall
	}

	newHead := head
	switch s.heading {
	case DirUp:
		newHead.Y--
	case DirDown:
		newHead.Y++
	case DirLeft:
		newHead.X--
	case DirRight:
		newHead.X++
	default:
		panic("snake: invalid heading " + s.heading.String())
	}

	// The tail does not block when it moves away this tick.
	vacated := !grow && newHead == s.body.Tail()
	if s.body.Contains(newHead) && !vacated {
		return CauseSelf
	}

	if !grow {
		s.body.PopBack()
	}
	s.body.PushFront(newHead)
	return CauseNone
}
