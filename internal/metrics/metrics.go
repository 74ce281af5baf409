// Package metrics computes typing performance figures from keystroke data.
package metrics

import "math"

// CharsPerWord is the standard word-length normalization used for WPM.
const CharsPerWord = 5.0

const (
	consistencyScale = 50.0
	scoreMin         = 0.0
	scoreMax         = 100.0
)

// WPM returns words per minute for the given correct character count.
func WPM(correctChars int, minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return (float64(correctChars) / CharsPerWord) / minutes
}

// Accuracy returns the percentage of typed characters that were correct.
// No typed characters counts as 100.
func Accuracy(correctChars, totalTyped int) float64 {
	if totalTyped <= 0 {
		return scoreMax
	}
	return math.Min(scoreMax, float64(correctChars)/float64(totalTyped)*100)
}

// KeyIntervals returns the deltas between consecutive timestamps in ms.
func KeyIntervals(timestamps []int64) []float64 {
	if len(timestamps) < 2 {
		return []float64{}
	}
	out := make([]float64, 0, len(timestamps)-1)
	for i := 1; i < len(timestamps); i++ {
		out = append(out, float64(timestamps[i]-timestamps[i-1]))
	}
	return out
}

// AvgKeyInterval returns the mean interval between keystrokes in ms.
func AvgKeyInterval(timestamps []int64) float64 {
	if len(timestamps) < 2 {
		return 0
	}
	var sum float64
	for _, v := range KeyIntervals(timestamps) {
		sum += v
	}
	return sum / float64(len(timestamps)-1)
}

// ConsistencyScore maps the coefficient of variation of the intervals onto
// 0..100, where 100 is a perfectly even rhythm. The mapping 100 - cv*50 is
// stored with historical results and must not change.
func ConsistencyScore(intervals []float64) float64 {
	if len(intervals) < 2 {
		return scoreMax
	}
	n := float64(len(intervals))
	var sum float64
	for _, v := range intervals {
		sum += v
	}
	mean := sum / n
	if mean <= 0 {
		return scoreMax
	}
	var sq float64
	for _, v := range intervals {
		d := v - mean
		sq += d * d
	}
	cv := math.Sqrt(sq/n) / mean
	return clamp(scoreMax-cv*consistencyScale, scoreMin, scoreMax)
}

// CountCorrectChars counts positions where typed matches expected, rune-wise,
// up to the shorter of the two strings.
func CountCorrectChars(expected, typed string) int {
	return CountCorrectRunes([]rune(expected), []rune(typed))
}

// CountCorrectRunes is CountCorrectChars over pre-split runes.
func CountCorrectRunes(expected, typed []rune) int {
	n := 0
	for i := 0; i < len(expected) && i < len(typed); i++ {
		if expected[i] == typed[i] {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
