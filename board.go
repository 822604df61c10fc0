package ludo

// The main track is a single 52-cell loop shared by all colors. Each color
// enters the track at its own start cell, travels the full loop and peels
// off into a private six-cell home stretch after passing its home entry
// cell. Cell indices are fixed; all per-color arithmetic happens in the
// move resolver.

const (
	BoardSpaces       = 52
	HomeStretchSpaces = 6
	FinishSpace       = HomeStretchSpaces - 1
	TokensPerPlayer   = 4
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Color identifies a player and their tokens.
type Color int8

const (
	Red Color = iota
	Blue
	Green
	Yellow
)

var colorNames = [...]string{"red", "blue", "green", "yellow"}

func (c Color) String() string {
	if c < Red || c > Yellow {
		return "unknown"
	}
	return colorNames[c]
}

// startSpace is where each color's tokens enter the track. homeEntrySpace
// is the last track cell a color occupies before its home stretch; it is
// always 51 steps ahead of the color's start cell.
var (
	startSpace     = [MaxPlayers]int8{0, 13, 26, 39}
	homeEntrySpace = [MaxPlayers]int8{50, 11, 24, 37}
)

// The eight capture-immune cells: the four start cells plus the four star
// cells halfway between them.
var safeSpaces = [BoardSpaces]bool{
	0:  true,
	8:  true,
	13: true,
	21: true,
	26: true,
	34: true,
	39: true,
	47: true,
}

// StartSpace returns the main-track cell where c's tokens enter play.
func StartSpace(c Color) int8 {
	return startSpace[c]
}

// HomeEntrySpace returns the main-track cell c's tokens must pass before
// entering their home stretch.
func HomeEntrySpace(c Color) int8 {
	return homeEntrySpace[c]
}

// IsSafeSpace reports whether tokens on the given main-track cell are
// immune to capture.
func IsSafeSpace(space int8) bool {
	return safeSpaces[space]
}

// trackDistance returns the number of forward steps from one track cell to
// another, following the loop direction.
func trackDistance(from, to int8) int8 {
	d := to - from
	if d < 0 {
		d += BoardSpaces
	}
	return d
}
