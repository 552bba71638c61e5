package types

// Point is a grid-aligned cell position in field units.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Grid represents the play field dimensions
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Game defaults
const (
	DefaultWidth    = 400
	DefaultHeight   = 400
	DefaultCellSize = 20
	InitialLength   = 3
)

// DefaultGrid returns the 400x400 field with 20 unit cells.
func DefaultGrid() Grid {
	return Grid{Width: DefaultWidth, Height: DefaultHeight, CellSize: DefaultCellSize}
}

// Columns returns the number of cells along the x axis.
func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells along the y axis.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Center returns the cell nearest the middle of the field.
func (g Grid) Center() Point {
	return Point{
		X: g.Columns() / 2 * g.CellSize,
		Y: g.Rows() / 2 * g.CellSize,
	}
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Direction is one of the four movement directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var opposites = [...]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

var vectors = [...]Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var names = [...]string{
	Up:    "UP",
	Down:  "DOWN",
	Left:  "LEFT",
	Right: "RIGHT",
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Vector returns the unit step for d in cell units.
func (d Direction) Vector() Point {
	return vectors[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return names[d]
}
