package snake

import (
	"github.com/gammazero/deque"
)

// Point is a grid coordinate. Valid points satisfy 0 <= X < cols and 0 <= Y < rows.
type Point struct {
	X, Y int
}

// Body is the ordered list of cells covered by the snake, head first.
// A deque gives O(1) push-front/pop-back; the occupancy set gives O(1)
// membership for collision and food placement checks.
// Cells are never duplicated: a move onto an occupied cell is rejected
// before it is pushed.
type Body struct {
	cells    *deque.Deque[Point]
	occupied map[Point]struct{}
}

// NewBody creates a body holding the given cells, head first.
func NewBody(cells ...Point) *Body {
	b := &Body{
		cells:    deque.New[Point](),
		occupied: make(map[Point]struct{}, len(cells)),
	}
	for _, p := range cells {
		b.cells.PushBack(p)
		b.occupied[p] = struct{}{}
	}
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.cells.Len()
}

// Head returns the first segment. Panics on an empty body.
func (b *Body) Head() Point {
	if b.cells.Len() == 0 {
		panic("snake: body has no segments")
	}
	return b.cells.Front()
}

// Tail returns the last segment. Panics on an empty body.
func (b *Body) Tail() Point {
	if b.cells.Len() == 0 {
		panic("snake: body has no segments")
	}
	return b.cells.Back()
}

// PushFront adds a new head.
func (b *Body) PushFront(p Point) {
	b.cells.PushFront(p)
	b.occupied[p] = struct{}{}
}

// PopBack removes and returns the tail.
func (b *Body) PopBack() Point {
	p := b.cells.PopBack()
	delete(b.occupied, p)
	return p
}

// Contains reports whether any segment covers p.
func (b *Body) Contains(p Point) bool {
	_, ok := b.occupied[p]
	return ok
}

// At returns the i-th segment counting from the head.
func (b *Body) At(i int) Point {
	return b.cells.At(i)
}

// Each calls fn for every segment from head to tail.
func (b *Body) Each(fn func(i int, p Point)) {
	for i := 0; i < b.cells.Len(); i++ {
		fn(i, b.cells.At(i))
	}
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []Point {
	out := make([]Point, 0, b.cells.Len())
	b.Each(func(_ int, p Point) {
		out = append(out, p)
	})
	return out
}
