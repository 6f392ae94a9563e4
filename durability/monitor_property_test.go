package durability

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/INLOpen/nexuskv/core"
)

// requireInvariants checks the monitor's structural invariants directly on
// the guarded state.
func requireInvariants(t *testing.T, m *PassiveDurabilityMonitor) {
	t.Helper()
	m.mu.RLock()
	defer m.mu.RUnlock()

	hps := m.st.highPreparedSeqno.Seqno()
	hcs := m.st.highCompletedSeqno.Seqno()
	require.LessOrEqual(t, hcs, hps, "HCS must never exceed HPS")
	require.LessOrEqual(t, hps, m.st.snapshotEnd, "HPS must never cross the snapshot end")

	fence := min(hps, hcs)
	last := int64(0)
	for it := m.st.trackedWrites.Front(); it != nil; it = m.st.trackedWrites.Next(it) {
		require.Greater(t, it.BySeqno(), last, "Tracked seqnos must be strictly increasing")
		require.Greater(t, it.BySeqno(), fence, "Prepares passed by both positions must be pruned")
		last = it.BySeqno()
	}
}

// Randomized streams of snapshots, persistence advances and in-order
// completions. After a full drain the accounting must balance and nothing
// may remain tracked.
func TestMonitor_RandomizedSequences(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			m, vb := newTestMonitor(t)

			var (
				seqno     int64
				pending   []*core.Item // accepted, not yet completed
				ackable   int64        // last announced snapshot end
				deduped   uint64
				completed int
			)

			step := func() {
				switch rng.Intn(4) {
				case 0: // stream a small snapshot of prepares
					n := 1 + rng.Intn(4)
					for i := 0; i < n; i++ {
						seqno++
						level := core.LevelMajority
						switch rng.Intn(3) {
						case 1:
							level = core.LevelMajorityAndPersistOnMaster
						case 2:
							level = core.LevelPersistToMajority
						}
						item := prepare(fmt.Sprintf("key-%d", seqno), seqno, level)
						require.NoError(t, m.AddSyncWrite(item))
						pending = append(pending, item)
					}
					require.NoError(t, m.NotifySnapshotEndReceived(seqno))
					ackable = seqno
				case 1: // flusher catches up to the snapshot end
					if vb.PersistenceSeqno() < ackable {
						vb.persistenceSeqno.Store(ackable)
					}
					require.NoError(t, m.NotifyLocalPersistence())
				case 2: // redundant persistence notification
					require.NoError(t, m.NotifyLocalPersistence())
				case 3: // complete the next prepare, in order, once acked
					if completed < len(pending) && pending[completed].BySeqno <= m.HighPreparedSeqno() {
						item := pending[completed]
						res := ResolutionCommit
						switch rng.Intn(4) {
						case 1:
							res = ResolutionAbort
						case 2:
							res = ResolutionCompletionWasDeduped
							deduped++
						}
						require.NoError(t, m.CompleteSyncWrite(item.Key, res))
						completed++
					}
				}
			}

			for i := 0; i < 200; i++ {
				step()
				requireInvariants(t, m)
			}

			// Drain: persist everything, then complete the remainder.
			vb.persistenceSeqno.Store(seqno)
			require.NoError(t, m.NotifyLocalPersistence())
			for ; completed < len(pending); completed++ {
				require.NoError(t, m.CompleteSyncWrite(pending[completed].Key, ResolutionCommit))
			}
			requireInvariants(t, m)

			assert.Equal(t, 0, m.NumTracked(), "A full drain leaves nothing tracked")
			assert.Equal(t, m.NumAccepted(), m.NumCommitted()+m.NumAborted()+deduped,
				"Lifetime accounting must balance after a full drain")

			acks := vb.ackedSeqnos()
			for i := 1; i < len(acks); i++ {
				assert.Greater(t, acks[i], acks[i-1], "Acks must be strictly increasing")
			}
		})
	}
}
