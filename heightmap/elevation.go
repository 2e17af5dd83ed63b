package heightmap

import "fmt"

// ElevationOf converts a grid symbol into its elevation.
// 'a'..'z' map to 0..25, 'S' to Lowest and 'E' to Highest.
func ElevationOf(r rune) (Elevation, error) {
	switch {
	case r == StartSymbol:
		return Lowest, nil
	case r == EndSymbol:
		return Highest, nil
	case r >= 'a' && r <= 'z':
		return Elevation(r - 'a'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
}

// Symbol returns the lowercase letter for e.
func (e Elevation) Symbol() rune {
	return 'a' + rune(e)
}
