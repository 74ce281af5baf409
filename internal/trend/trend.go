// Package trend samples running WPM over fixed windows of a finished session.
package trend

import "github.com/verte-zerg/slowtype/internal/metrics"

// BucketSeconds is the width of one trend sample.
const BucketSeconds = 5

// WPMBuckets replays a keystroke log and returns the cumulative WPM at the
// end of every BucketSeconds window up to durationSec. Correctness is
// counted over the characters typed by each cutoff, so an early mistake
// lowers every later sample.
func WPMBuckets(timestamps []int64, expected, typed string, durationSec int) []float64 {
	if len(timestamps) == 0 {
		return []float64{}
	}
	expectedRunes := []rune(expected)
	typedRunes := []rune(typed)
	start := timestamps[0]

	buckets := []float64{}
	last := -1
	for t := BucketSeconds; t <= durationSec; t += BucketSeconds {
		cutoff := start + int64(t)*1000
		// Cutoffs only grow, so the scan resumes where the previous bucket stopped.
		for last+1 < len(timestamps) && timestamps[last+1] <= cutoff {
			last++
		}
		if last < 0 {
			buckets = append(buckets, 0)
			continue
		}
		n := last + 1
		correct := metrics.CountCorrectRunes(prefix(expectedRunes, n), prefix(typedRunes, n))
		buckets = append(buckets, metrics.WPM(correct, float64(t)/60))
	}
	if len(buckets) == 0 {
		correct := metrics.CountCorrectRunes(expectedRunes, typedRunes)
		seconds := durationSec
		if seconds < 1 {
			seconds = 1
		}
		buckets = append(buckets, metrics.WPM(correct, float64(seconds)/60))
	}
	return buckets
}

func prefix(runes []rune, n int) []rune {
	if n > len(runes) {
		return runes
	}
	return runes[:n]
}
