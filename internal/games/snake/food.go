package snake

// Rand is the random source used for food placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// respawnAttemptFactor bounds rejection sampling at factor*cols*rows draws
// before falling back to picking among the free cells directly.
const respawnAttemptFactor = 4

// Food is the single target the snake seeks.
type Food struct {
	Position Point
}

// IsConsumed reports whether the snake's head is on the food.
func (f *Food) IsConsumed(s *Snake) bool {
	return s.Head() == f.Position
}

// Respawn moves the food to a uniformly random cell not covered by the snake.
// Each draw picks x in [0, cols) and then y in [0, rows); draws landing on the
// snake are rejected. When the grid is so crowded that sampling keeps
// missing, the free cells are enumerated instead so placement terminates.
// Returns false, leaving the food where it is, if no free cell exists.
func (f *Food) Respawn(s *Snake, cols, rows int, rng Rand) bool {
	attempts := respawnAttemptFactor * cols * rows
	for i := 0; i < attempts; i++ {
		x := rng.Intn(cols)
		y := rng.Intn(rows)
		if !s.Occupies(x, y) {
			f.Position = Point{X: x, Y: y}
			return true
		}
	}

	free := freeCells(s, cols, rows)
	if len(free) == 0 {
		return false
	}
	f.Position = free[rng.Intn(len(free))]
	return true
}

// freeCells lists every cell not covered by the snake, row by row.
func freeCells(s *Snake, cols, rows int) []Point {
	free := make([]Point, 0, max(0, cols*rows-s.Len()))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !s.Occupies(x, y) {
				free = append(free, Point{X: x, Y: y})
			}
		}
	}
	return free
}
