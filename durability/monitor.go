package durability

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/caio/go-tdigest/v4"

	"github.com/INLOpen/nexuskv/core"
)

// Resolution is the active node's terminal decision for a prepare.
type Resolution uint8

const (
	ResolutionCommit Resolution = iota
	ResolutionAbort
	// ResolutionCompletionWasDeduped means the active collapsed the
	// prepare's result into a subsequent mutation.
	ResolutionCompletionWasDeduped
)

// String returns the string representation of the Resolution.
func (r Resolution) String() string {
	switch r {
	case ResolutionCommit:
		return "commit"
	case ResolutionAbort:
		return "abort"
	case ResolutionCompletionWasDeduped:
		return "completionWasDeduped"
	default:
		return fmt.Sprintf("Resolution(%d)", uint8(r))
	}
}

// VBucket is the view of the owning partition the monitor needs.
type VBucket interface {
	ID() core.VBucketID
	State() core.VBucketState
	// PersistenceSeqno returns the monotonic seqno up to which the flusher
	// has persisted the partition.
	PersistenceSeqno() int64
	// SendSeqnoAck forwards a prepared-seqno acknowledgement to the active
	// node. Fire-and-forget.
	SendSeqnoAck(seqno int64)
}

// PassiveDurabilityMonitor tracks in-flight SyncWrite prepares on a replica
// partition and decides when they are locally durable. Whenever the high
// prepared seqno strictly increases, the new value is acknowledged to the
// active node through the owning vbucket.
//
// All methods are safe for concurrent use. The ack is always emitted outside
// the monitor's lock.
type PassiveDurabilityMonitor struct {
	vb     VBucket
	logger *slog.Logger

	mu sync.RWMutex
	st state

	// completion latency digest, guarded separately so stats readers never
	// contend with the state lock.
	completionMu sync.Mutex
	completion   *tdigest.TDigest
}

// NewPassiveDurabilityMonitor creates a monitor for vb with empty tracking.
func NewPassiveDurabilityMonitor(vb VBucket, logger *slog.Logger) *PassiveDurabilityMonitor {
	m := &PassiveDurabilityMonitor{
		vb:     vb,
		logger: logger.With("component", "passive_dm", "vbucket", uint16(vb.ID())),
	}
	td, err := tdigest.New()
	if err != nil {
		m.logger.Warn("Failed to create completion latency digest, latency stats disabled", "error", err)
	} else {
		m.completion = td
	}
	return m
}

// NewPassiveDurabilityMonitorWithOutstanding creates a monitor pre-populated
// with prepares recovered at warmup. Every supplied prepare must already
// carry the explicit timeout the active node streamed it with.
func NewPassiveDurabilityMonitorWithOutstanding(vb VBucket, logger *slog.Logger, outstanding []*core.Item) (*PassiveDurabilityMonitor, error) {
	m := NewPassiveDurabilityMonitor(vb, logger)
	for _, item := range outstanding {
		if item.Durability.Timeout.IsDefault() {
			return nil, &core.ExpectationError{
				Message: fmt.Sprintf("warmup prepare for key %q has default timeout", string(item.Key)),
			}
		}
		if err := m.st.trackedWrites.PushBack(newSyncWrite(item, time.Time{})); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddSyncWrite starts tracking a prepare received on the replication stream.
// The HPS does not move here: it only moves on a snapshot-end or persistence
// event.
func (m *PassiveDurabilityMonitor) AddSyncWrite(item *core.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.addSyncWrite(item, time.Now())
}

// CompleteSyncWrite applies the active node's commit, abort or dedupe
// decision to the next prepare awaiting completion.
func (m *PassiveDurabilityMonitor) CompleteSyncWrite(key core.DocKey, res Resolution) error {
	m.mu.Lock()
	sw, err := m.st.completeSyncWrite(key, res)
	m.mu.Unlock()
	if err != nil {
		return err
	}
	if res != ResolutionCompletionWasDeduped {
		m.observeCompletion(sw)
	}
	return nil
}

// NotifySnapshotEndReceived records a snapshot boundary announced by the
// active node and attempts to advance the HPS. A non-increasing boundary is
// a no-op for the recorded value.
func (m *PassiveDurabilityMonitor) NotifySnapshotEndReceived(snapEnd int64) error {
	m.mu.Lock()
	if snapEnd > m.st.snapshotEnd {
		m.st.snapshotEnd = snapEnd
	}
	prev := m.st.highPreparedSeqno.Seqno()
	err := m.st.updateHighPreparedSeqno(m.vb.PersistenceSeqno())
	hps := m.st.highPreparedSeqno.Seqno()
	m.mu.Unlock()

	if err != nil {
		return err
	}
	m.ackIfAdvanced(prev, hps)
	return nil
}

// NotifyLocalPersistence is invoked by the flusher whenever the persistence
// seqno advances; persistence may dissolve a durability fence.
func (m *PassiveDurabilityMonitor) NotifyLocalPersistence() error {
	m.mu.Lock()
	prev := m.st.highPreparedSeqno.Seqno()
	err := m.st.updateHighPreparedSeqno(m.vb.PersistenceSeqno())
	hps := m.st.highPreparedSeqno.Seqno()
	m.mu.Unlock()

	if err != nil {
		return err
	}
	m.ackIfAdvanced(prev, hps)
	return nil
}

// HighPreparedSeqno returns the seqno up to which every prepare is locally
// satisfied.
func (m *PassiveDurabilityMonitor) HighPreparedSeqno() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.highPreparedSeqno.Seqno()
}

// HighCompletedSeqno returns the seqno up to which every prepare has been
// committed or aborted.
func (m *PassiveDurabilityMonitor) HighCompletedSeqno() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.highCompletedSeqno.Seqno()
}

// NumTracked returns the number of in-flight prepares.
func (m *PassiveDurabilityMonitor) NumTracked() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.trackedWrites.Len()
}

// NumAccepted returns the lifetime count of prepares accepted.
func (m *PassiveDurabilityMonitor) NumAccepted() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.totalAccepted
}

// NumCommitted returns the lifetime count of prepares committed.
func (m *PassiveDurabilityMonitor) NumCommitted() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.totalCommitted
}

// NumAborted returns the lifetime count of prepares aborted.
func (m *PassiveDurabilityMonitor) NumAborted() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.totalAborted
}

// ackIfAdvanced emits a seqno ack when the HPS strictly increased. Called
// with the lock released so the vbucket can take its own locks freely.
//
// The HPS not moving is common, e.g. a locally unsatisfied PersistToMajority
// prepare holding the durability fence; re-acking the same value would not be
// wrong upstream, just wasteful.
func (m *PassiveDurabilityMonitor) ackIfAdvanced(prev, hps int64) {
	if hps > prev {
		m.vb.SendSeqnoAck(hps)
	}
}

// observeCompletion feeds the prepare's tracking interval into the latency
// digest.
func (m *PassiveDurabilityMonitor) observeCompletion(sw *SyncWrite) {
	if m.completion == nil || sw.enqueued.IsZero() {
		return
	}
	ms := float64(time.Since(sw.enqueued).Microseconds()) / 1000.0

	m.completionMu.Lock()
	defer m.completionMu.Unlock()
	if err := m.completion.Add(ms); err != nil {
		m.logger.Debug("Failed to record completion latency", "error", err)
	}
}
