package quicbook

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamReceiveTrackerBasic(t *testing.T) {
	tr := NewStreamReceiveTracker(nil)

	tr.ReceivedRange(0, 10)
	tr.ReceivedRange(10, 5) // contiguous with the first range

	assert.True(t, tr.Received(0))
	assert.True(t, tr.Received(14))
	assert.False(t, tr.Received(15))
	assert.Equal(t, uint64(15), tr.ContiguousPrefix())
}

func TestStreamReceiveTrackerGap(t *testing.T) {
	tr := NewStreamReceiveTracker(nil)

	tr.ReceivedRange(0, 5)
	tr.ReceivedRange(10, 5) // leaves a gap [5, 10)

	assert.Equal(t, uint64(5), tr.ContiguousPrefix())

	missing := tr.Missing(20)
	require.Equal(t, 2, missing.Size())
	got := missing.Slice()
	assert.Equal(t, uint64(5), got[0].Min())
	assert.Equal(t, uint64(10), got[0].Max())
	assert.Equal(t, uint64(15), got[1].Min())
	assert.Equal(t, uint64(20), got[1].Max())
}

func TestStreamReceiveTrackerZeroLengthIgnored(t *testing.T) {
	tr := NewStreamReceiveTracker(nil)
	tr.ReceivedRange(5, 0)
	assert.False(t, tr.Received(5))
	assert.Equal(t, uint64(0), tr.ContiguousPrefix())
}

func TestPacketAckTrackerBasic(t *testing.T) {
	tr := NewPacketAckTracker(nil)

	tr.AckRange(0, 3)
	tr.AckRange(3, 6) // appended in place via AddOptimizedForAppend

	assert.True(t, tr.Acked(0))
	assert.True(t, tr.Acked(5))
	assert.False(t, tr.Acked(6))

	unacked := tr.Unacked(9)
	require.Equal(t, 1, unacked.Size())
	got := unacked.Slice()
	assert.Equal(t, uint64(6), got[0].Min())
	assert.Equal(t, uint64(10), got[0].Max())
}

func TestPacketAckTrackerRejectsEmptyRange(t *testing.T) {
	tr := NewPacketAckTracker(nil)
	tr.AckRange(5, 5)
	assert.False(t, tr.Acked(5))
}

func TestMustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.NotPanics(t, func() { MustRegister(reg) })
}
