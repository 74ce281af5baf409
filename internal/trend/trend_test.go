package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWPMBucketsEmptyLog(t *testing.T) {
	assert.Empty(t, WPMBuckets(nil, "abc", "abc", 60))
	assert.Empty(t, WPMBuckets([]int64{}, "", "", 0))
	assert.NotNil(t, WPMBuckets(nil, "abc", "abc", 60))
}

func TestWPMBucketsCumulativeCorrectness(t *testing.T) {
	ts := []int64{0, 1000, 2000, 6000, 11000}
	got := WPMBuckets(ts, "abcde", "abxde", 15)
	require.Len(t, got, 3)
	assert.InDelta(t, 4.8, got[0], 1e-9) // 2 correct of "abc" at 5s
	assert.InDelta(t, 3.6, got[1], 1e-9) // 3 correct of "abcd" at 10s
	assert.InDelta(t, 3.2, got[2], 1e-9) // 4 correct at 15s
}

func TestWPMBucketsAfterEarlyFinish(t *testing.T) {
	got := WPMBuckets([]int64{0, 1000}, "ab", "ab", 15)
	require.Len(t, got, 3)
	assert.InDelta(t, 4.8, got[0], 1e-9)
	assert.InDelta(t, 2.4, got[1], 1e-9)
	assert.InDelta(t, 1.6, got[2], 1e-9)
}

func TestWPMBucketsShortDurationFallsBack(t *testing.T) {
	got := WPMBuckets([]int64{100, 300, 700}, "cat", "cot", 3)
	require.Len(t, got, 1)
	assert.InDelta(t, (2.0/5)/(3.0/60), got[0], 1e-9)

	got = WPMBuckets([]int64{100}, "c", "c", 0)
	require.Len(t, got, 1)
	assert.InDelta(t, (1.0/5)/(1.0/60), got[0], 1e-9)
}

func TestWPMBucketsPartialTrailingBucketDropped(t *testing.T) {
	got := WPMBuckets([]int64{0, 100}, "ab", "ab", 7)
	assert.Len(t, got, 1)
}

func TestWPMBucketsCutoffIsInclusive(t *testing.T) {
	ts := []int64{1000, 6000, 6000, 6001}
	got := WPMBuckets(ts, "abcd", "abcd", 5)
	require.Len(t, got, 1)
	// 6000 == start+5000 is counted, including the tie; 6001 is not
	assert.InDelta(t, (3.0/5)/(5.0/60), got[0], 1e-9)
}

func TestWPMBucketsMatchesFullScan(t *testing.T) {
	ts := []int64{0, 120, 4999, 5000, 5001, 9000, 17000, 17000, 24000}
	expected := "the quick"
	typed := "thx quick"
	got := WPMBuckets(ts, expected, typed, 30)
	require.Len(t, got, 6)
	for i, v := range got {
		bucket := (i + 1) * BucketSeconds
		assert.InDelta(t, fullScanBucket(ts, expected, typed, bucket), v, 1e-9, "bucket %d", bucket)
	}
}

func fullScanBucket(ts []int64, expected, typed string, t int) float64 {
	cutoff := ts[0] + int64(t)*1000
	last := -1
	for i, v := range ts {
		if v <= cutoff {
			last = i
		}
	}
	if last < 0 {
		return 0
	}
	n := last + 1
	e, ty := []rune(expected), []rune(typed)
	if n < len(e) {
		e = e[:n]
	}
	if n < len(ty) {
		ty = ty[:n]
	}
	correct := 0
	for i := 0; i < len(e) && i < len(ty); i++ {
		if e[i] == ty[i] {
			correct++
		}
	}
	return (float64(correct) / 5) / (float64(t) / 60)
}
