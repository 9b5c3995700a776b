// Package quicbook illustrates the motivating use case for ivset: tracking
// which byte offsets of a QUIC stream have been received, and which packet
// numbers have been acknowledged. It is a generic, self-contained stand-in
// for the Chromium/QUICHE bookkeeping code the core spec deliberately
// leaves out of scope — the wire format, transport, and retransmission
// logic belong to a real QUIC stack, not here.
package quicbook

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/quictools/ivset"
)

var (
	trackedIntervals = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ivset",
		Subsystem: "quicbook",
		Name:      "tracked_intervals",
		Help:      "Number of canonical intervals currently stored by a tracker.",
	}, []string{"tracker", "session"})

	eventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ivset",
		Subsystem: "quicbook",
		Name:      "events_total",
		Help:      "Number of mutating events processed by a tracker.",
	}, []string{"tracker", "event"})
)

// MustRegister registers quicbook's Prometheus collectors with reg. Callers
// own the registry; quicbook does not register against the default
// registry on import so embedding it doesn't surprise unrelated metrics
// endpoints.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(trackedIntervals, eventsTotal)
}

// StreamReceiveTracker records which byte offsets of a single QUIC stream
// have been received so far, and can report which offsets below a given
// limit are still missing.
type StreamReceiveTracker struct {
	session uuid.UUID
	log     *logrus.Entry
	set     ivset.IntervalSet[uint64]
}

// NewStreamReceiveTracker creates a tracker for one stream, identified in
// logs by a fresh session id.
func NewStreamReceiveTracker(log *logrus.Logger) *StreamReceiveTracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	session := uuid.New()
	return &StreamReceiveTracker{
		session: session,
		log:     log.WithField("session", session),
	}
}

// ReceivedRange records that the bytes [offset, offset+length) have been
// received.
func (t *StreamReceiveTracker) ReceivedRange(offset, length uint64) {
	if length == 0 {
		return
	}
	t.set.Add(ivset.NewInterval(offset, offset+length))
	t.log.WithFields(logrus.Fields{
		"offset": offset,
		"length": length,
		"ranges": t.set.Size(),
	}).Debug("quicbook: recorded received byte range")

	eventsTotal.WithLabelValues("stream_receive", "received_range").Inc()
	trackedIntervals.WithLabelValues("stream_receive", t.session.String()).Set(float64(t.set.Size()))
}

// Received reports whether offset has already been received.
func (t *StreamReceiveTracker) Received(offset uint64) bool {
	return t.set.Contains(offset)
}

// Missing returns the set of byte offsets in [0, limit) that have not yet
// been received — the gaps a retransmission request would target.
func (t *StreamReceiveTracker) Missing(limit uint64) *ivset.IntervalSet[uint64] {
	missing := ivset.Of[uint64](0, limit)
	missing.DifferenceSet(&t.set)
	return missing
}

// ContiguousPrefix returns the end of the contiguous prefix of bytes
// received starting at offset 0 — the "bytes consumable by the
// application" value a real QUIC implementation would use to unblock
// reads.
func (t *StreamReceiveTracker) ContiguousPrefix() uint64 {
	c, ok := t.set.Find(0)
	if !ok {
		return 0
	}
	return c.Interval().Max()
}

// PacketAckTracker records which packet numbers have been acknowledged by
// the peer.
type PacketAckTracker struct {
	session uuid.UUID
	log     *logrus.Entry
	set     ivset.IntervalSet[uint64]
}

// NewPacketAckTracker creates a tracker for one connection's sent-packet
// acknowledgments.
func NewPacketAckTracker(log *logrus.Logger) *PacketAckTracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	session := uuid.New()
	return &PacketAckTracker{
		session: session,
		log:     log.WithField("session", session),
	}
}

// AckRange records that packet numbers [low, high) have been acknowledged
// in a single ACK frame range.
func (t *PacketAckTracker) AckRange(low, high uint64) {
	if high <= low {
		return
	}
	t.set.AddOptimizedForAppend(ivset.NewInterval(low, high))
	t.log.WithFields(logrus.Fields{
		"low":  low,
		"high": high,
	}).Debug("quicbook: recorded packet ack range")

	eventsTotal.WithLabelValues("packet_ack", "ack_range").Inc()
	trackedIntervals.WithLabelValues("packet_ack", t.session.String()).Set(float64(t.set.Size()))
}

// Acked reports whether packet number pn has been acknowledged.
func (t *PacketAckTracker) Acked(pn uint64) bool {
	return t.set.Contains(pn)
}

// Unacked returns the packet numbers in [0, highestSent] not yet
// acknowledged.
func (t *PacketAckTracker) Unacked(highestSent uint64) *ivset.IntervalSet[uint64] {
	unacked := ivset.Of[uint64](0, highestSent+1)
	unacked.DifferenceSet(&t.set)
	return unacked
}
