package ivset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOffsetRangeBasic(t *testing.T) {
	s, err := ParseOffsetRange(">=100,<200|=500")
	require.NoError(t, err)

	assert.True(t, s.Contains(100))
	assert.False(t, s.Contains(200))
	assert.True(t, s.Contains(500))
	assert.False(t, s.Contains(501))
}

func TestParseOffsetRangeOperators(t *testing.T) {
	tests := []struct {
		clause string
		in     int64
		want   bool
	}{
		{">10", 11, true},
		{">10", 10, false},
		{">=10", 10, true},
		{"<10", 9, true},
		{"<10", 10, false},
		{"<=10", 10, true},
		{"10", 10, true}, // bare value means "="
		{"=10", 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			s, err := ParseOffsetRange(tt.clause)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Contains(tt.in))
		})
	}
}

func TestParseOffsetRangeRejectsExclusion(t *testing.T) {
	_, err := ParseOffsetRange("!=10")
	assert.Error(t, err)
}

func TestParseOffsetRangeRejectsGarbage(t *testing.T) {
	_, err := ParseOffsetRange("not-a-number")
	assert.Error(t, err)
}

func TestParseOffsetRangeEmptyClausesIgnored(t *testing.T) {
	s, err := ParseOffsetRange("  |  ,  >=5, ")
	require.NoError(t, err)
	assert.True(t, s.Contains(5))
}

func TestParseOffsetRangeMaxBoundary(t *testing.T) {
	// math.MaxInt64 can never be the low end of an "=" clause: its only
	// representable successor, max+1, overflows int64.
	_, err := ParseOffsetRange("=9223372036854775807")
	assert.Error(t, err)

	// Large-but-not-maximal values work fine.
	s, err := ParseOffsetRange(">100")
	require.NoError(t, err)
	assert.True(t, s.Contains(math.MaxInt64-1))

	// math.MaxInt64 itself is never representable as contained in an
	// unbounded-above clause, because the sentinel upper bound used for
	// "no upper limit" is math.MaxInt64 itself, and that bound is
	// exclusive. This is a documented limitation of offsetrange's
	// encoding, not a defect in IntervalSet: build the interval directly
	// with NewInterval if math.MaxInt64 itself must be included.
	assert.False(t, s.Contains(math.MaxInt64))
}
