package durability

import (
	"fmt"
	"strconv"
)

// AddStatFn is the callback stats are emitted through.
type AddStatFn func(key, value string, cookie any) error

// AddStats emits the monitor's stats for the owning vbucket. Emission errors
// are logged and swallowed: observability must never take the monitor down.
func (m *PassiveDurabilityMonitor) AddStats(addStat AddStatFn, cookie any) {
	vbid := m.vb.ID()
	emit := func(key, value string) {
		if err := addStat(fmt.Sprintf("vb_%d:%s", vbid, key), value, cookie); err != nil {
			m.logger.Warn("Error building stats", "key", key, "error", err)
		}
	}

	m.mu.RLock()
	hps := m.st.highPreparedSeqno.Seqno()
	hcs := m.st.highCompletedSeqno.Seqno()
	tracked := m.st.trackedWrites.Len()
	m.mu.RUnlock()

	emit("state", m.vb.State().String())
	emit("high_prepared_seqno", strconv.FormatInt(hps, 10))
	emit("high_completed_seqno", strconv.FormatInt(hcs, 10))
	emit("num_tracked", strconv.Itoa(tracked))

	if m.completion == nil {
		return
	}
	m.completionMu.Lock()
	count := m.completion.Count()
	var p50, p99 float64
	if count > 0 {
		p50 = m.completion.Quantile(0.50)
		p99 = m.completion.Quantile(0.99)
	}
	m.completionMu.Unlock()

	if count > 0 {
		emit("sync_write_completion_p50_ms", strconv.FormatFloat(p50, 'f', 3, 64))
		emit("sync_write_completion_p99_ms", strconv.FormatFloat(p99, 'f', 3, 64))
	}
}
