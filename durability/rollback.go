package durability

import (
	"fmt"
	"time"

	"github.com/INLOpen/nexuskv/core"
)

// PostProcessRollback reconciles the monitor with the result of a storage
// rollback.
func (m *PassiveDurabilityMonitor) PostProcessRollback(rb *core.RollbackResult) error {
	if rb.HighCompletedSeqno > rb.HighPreparedSeqno {
		return &core.ExpectationError{
			Message: fmt.Sprintf("rollback HCS %d above HPS %d", rb.HighCompletedSeqno, rb.HighPreparedSeqno),
		}
	}
	if rb.HighPreparedSeqno > rb.HighSeqno {
		return &core.ExpectationError{
			Message: fmt.Sprintf("rollback HPS %d above high seqno %d", rb.HighPreparedSeqno, rb.HighSeqno),
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger.Info("Reconciling durability state after rollback",
		"rollback_hcs", rb.HighCompletedSeqno,
		"rollback_hps", rb.HighPreparedSeqno,
		"rollback_high_seqno", rb.HighSeqno,
		"prepares_to_add", len(rb.PreparesToAdd))
	return m.st.postProcessRollback(rb)
}

// postProcessRollback reconciles the tracked prepares with the rollback
// result handed over by the storage layer.
func (st *state) postProcessRollback(rb *core.RollbackResult) error {
	// Completions rolled back on disk come back as preparesToAdd, in seqno
	// order. Reinstating them in reverse via PushFront keeps the container
	// ordering intact.
	for i := len(rb.PreparesToAdd) - 1; i >= 0; i-- {
		item := rb.PreparesToAdd[i]
		if item.BySeqno > rb.HighCompletedSeqno {
			st.trackedWrites.PushFront(newSyncWrite(item, time.Time{}))
		}
	}

	// Drop everything above the rollback point.
	for it := st.trackedWrites.Back(); it != nil && it.bySeqno > rb.HighSeqno; it = st.trackedWrites.Back() {
		if err := st.trackedWrites.Erase(it); err != nil {
			return err
		}
	}

	// Post-rollback no tracked prepare has been completed.
	st.highCompletedSeqno.cursor = nil
	st.highCompletedSeqno.lastWriteSeqno.Reset(rb.HighCompletedSeqno)

	// Every surviving in-flight prepare was re-read from disk, so it is
	// locally satisfied; the HPS cursor legitimately sits on the last one.
	st.highPreparedSeqno.cursor = st.trackedWrites.Back()
	st.highPreparedSeqno.lastWriteSeqno.Reset(rb.HighPreparedSeqno)
	return nil
}
