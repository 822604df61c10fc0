package bot

// Tuning weighs move features when scoring candidates. Scores are
// integers; larger is better.
type Tuning struct {
	Capture   int // per opposing token sent home
	Finish    int // reaching the finish cell
	HomeEntry int // entering the home stretch
	Enter     int // leaving the yard
	Progress  int // per cell advanced
	SafeCell  int // landing on a capture-immune cell
	Exposure  int // penalty per opposing token within one throw behind
}

// DefaultTuning favors captures and finishing without considering danger.
var DefaultTuning = Tuning{
	Capture:   60,
	Finish:    50,
	HomeEntry: 30,
	Enter:     25,
	Progress:  2,
	SafeCell:  5,
	Exposure:  0,
}

// CautiousTuning additionally avoids cells opposing tokens can reach with
// one throw.
var CautiousTuning = Tuning{
	Capture:   60,
	Finish:    55,
	HomeEntry: 35,
	Enter:     20,
	Progress:  2,
	SafeCell:  12,
	Exposure:  8,
}
