// internal/component/movement.go
package component

// Direction is a tank or bullet heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four headings in a fixed order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the resource-key name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Step returns the displacement of moving dist pixels in direction d.
func (d Direction) Step(dist float64) (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -dist
	case DirDown:
		return 0, dist
	case DirLeft:
		return -dist, 0
	case DirRight:
		return dist, 0
	}
	return 0, 0
}

// Others returns the three headings other than d.
func (d Direction) Others() []Direction {
	out := make([]Direction, 0, 3)
	for _, o := range Directions {
		if o != d {
			out = append(out, o)
		}
	}
	return out
}
