package grid

type Color int64

const (
	Black Color = 0
	White Color = 1
)

type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// turns[facing][command]: command 0 turns left, 1 turns right.
var turns = [4][2]Direction{
	Up:    {Left, Right},
	Left:  {Down, Up},
	Down:  {Right, Left},
	Right: {Up, Down},
}

// y grows upward
var displacements = [4]Point{
	Up:    {0, 1},
	Left:  {-1, 0},
	Down:  {0, -1},
	Right: {1, 0},
}

// Turn reports false for a command other than 0 or 1, or an unknown facing.
func (d Direction) Turn(command int64) (Direction, bool) {
	if d < Up || d > Right || command < 0 || command > 1 {
		return d, false
	}
	return turns[d][command], true
}

func (d Direction) Step() Point {
	return displacements[d]
}
