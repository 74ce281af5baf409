package metrics

// Snapshot is the derived view of a typing attempt at one instant.
type Snapshot struct {
	WPM              float64
	Accuracy         float64
	AvgKeyIntervalMs float64
	// Consistency is nil until at least two key intervals exist.
	Consistency  *float64
	CorrectChars int
	TypedChars   int
	ElapsedMs    int64
}

// Compute derives a Snapshot from the target text, typed buffer, keystroke
// log, and elapsed time.
func Compute(target, typed string, log []int64, elapsedMs int64) Snapshot {
	typedRunes := []rune(typed)
	correct := CountCorrectRunes([]rune(target), typedRunes)
	minutes := float64(elapsedMs) / 60000.0

	snap := Snapshot{
		WPM:              WPM(correct, minutes),
		Accuracy:         Accuracy(correct, len(typedRunes)),
		AvgKeyIntervalMs: AvgKeyInterval(log),
		CorrectChars:     correct,
		TypedChars:       len(typedRunes),
		ElapsedMs:        elapsedMs,
	}
	if intervals := KeyIntervals(log); len(intervals) >= 2 {
		score := ConsistencyScore(intervals)
		snap.Consistency = &score
	}
	return snap
}

// IncorrectChars returns the number of typed characters that did not match.
func (s Snapshot) IncorrectChars() int {
	return s.TypedChars - s.CorrectChars
}
