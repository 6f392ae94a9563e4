package durability

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/INLOpen/nexuskv/core"
)

// testVBucket is a stand-in for the owning partition: a settable persistence
// seqno and a recording ack sink.
type testVBucket struct {
	id               core.VBucketID
	persistenceSeqno atomic.Int64

	mu   sync.Mutex
	acks []int64
}

func (vb *testVBucket) ID() core.VBucketID          { return vb.id }
func (vb *testVBucket) State() core.VBucketState    { return core.VBucketStateReplica }
func (vb *testVBucket) PersistenceSeqno() int64     { return vb.persistenceSeqno.Load() }

func (vb *testVBucket) SendSeqnoAck(seqno int64) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.acks = append(vb.acks, seqno)
}

func (vb *testVBucket) ackedSeqnos() []int64 {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return append([]int64(nil), vb.acks...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMonitor(t *testing.T) (*PassiveDurabilityMonitor, *testVBucket) {
	t.Helper()
	vb := &testVBucket{id: 5}
	return NewPassiveDurabilityMonitor(vb, testLogger()), vb
}

func prepare(key string, seqno int64, level core.Level) *core.Item {
	return &core.Item{
		Key:     core.DocKey(key),
		BySeqno: seqno,
		Durability: core.Requirements{
			Level:   level,
			Timeout: core.Timeout(5000),
		},
	}
}

func TestAddSyncWrite_Validation(t *testing.T) {
	m, _ := newTestMonitor(t)

	err := m.AddSyncWrite(prepare("a", 1, core.LevelNone))
	require.Error(t, err)
	assert.True(t, core.IsInvalidArgument(err), "Level None should be rejected")

	noTimeout := prepare("a", 1, core.LevelMajority)
	noTimeout.Durability.Timeout = 0
	err = m.AddSyncWrite(noTimeout)
	require.Error(t, err)
	assert.True(t, core.IsInvalidArgument(err), "Default timeout should be rejected")

	err = m.AddSyncWrite(prepare("a", 0, core.LevelMajority))
	require.Error(t, err)
	assert.True(t, core.IsInvalidArgument(err), "Non-positive seqno should be rejected")

	require.NoError(t, m.AddSyncWrite(prepare("a", 2, core.LevelMajority)))
	err = m.AddSyncWrite(prepare("b", 2, core.LevelMajority))
	require.Error(t, err)
	assert.True(t, core.IsOrderError(err), "Non-increasing seqno should be rejected")

	assert.Equal(t, uint64(1), m.NumAccepted(), "Rejected prepares must not count as accepted")
	assert.Equal(t, 1, m.NumTracked())
}

func TestAddSyncWrite_DoesNotAdvanceHPS(t *testing.T) {
	m, vb := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("a", 1, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("b", 2, core.LevelMajority)))

	assert.Equal(t, int64(0), m.HighPreparedSeqno(), "HPS must not move before a snapshot boundary")
	assert.Empty(t, vb.ackedSeqnos(), "No ack may be emitted before a snapshot boundary")
}

// Scenario: two Majority prepares, snapshot end received, nothing persisted.
// The HPS reaches the snapshot end without any persistence.
func TestMajorityFastPath(t *testing.T) {
	m, vb := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("key1", 1, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("key2", 2, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(2))

	assert.Equal(t, int64(2), m.HighPreparedSeqno())
	assert.Equal(t, int64(0), m.HighCompletedSeqno())
	assert.Equal(t, []int64{2}, vb.ackedSeqnos(), "A single ack for the snapshot end")
}

// Scenario: a PersistToMajority prepare fences the HPS until the enclosing
// snapshot is persisted.
func TestPersistFenceBlocksThenReleases(t *testing.T) {
	m, vb := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("a", 1, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("b", 2, core.LevelPersistToMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("c", 3, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(3))

	assert.Equal(t, int64(1), m.HighPreparedSeqno(), "HPS must halt at the durability fence")
	assert.Equal(t, []int64{1}, vb.ackedSeqnos())

	// Persisting the complete snapshot dissolves the fence.
	vb.persistenceSeqno.Store(3)
	require.NoError(t, m.NotifyLocalPersistence())

	assert.Equal(t, int64(3), m.HighPreparedSeqno())
	assert.Equal(t, []int64{1, 3}, vb.ackedSeqnos())
}

// MajorityAndPersistOnMaster requires no persistence on the replica.
func TestMajorityAndPersistOnMasterIsNotAFence(t *testing.T) {
	m, vb := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("a", 1, core.LevelMajorityAndPersistOnMaster)))
	require.NoError(t, m.AddSyncWrite(prepare("b", 2, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(2))

	assert.Equal(t, int64(2), m.HighPreparedSeqno())
	assert.Equal(t, []int64{2}, vb.ackedSeqnos())
}

func TestHPSNeverCrossesSnapshotEnd(t *testing.T) {
	m, vb := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("a", 1, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(1))
	require.NoError(t, m.AddSyncWrite(prepare("b", 2, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("c", 3, core.LevelMajority)))

	// The second snapshot [2,3] is incomplete: prepares past seqno 1 are
	// not eligible no matter what is persisted.
	vb.persistenceSeqno.Store(3)
	require.NoError(t, m.NotifyLocalPersistence())

	assert.Equal(t, int64(1), m.HighPreparedSeqno())
	assert.Equal(t, []int64{1}, vb.ackedSeqnos())

	require.NoError(t, m.NotifySnapshotEndReceived(3))
	assert.Equal(t, int64(3), m.HighPreparedSeqno())
	assert.Equal(t, []int64{1, 3}, vb.ackedSeqnos())
}

// Scenario: completions arrive in seqno order and drain the container.
func TestInOrderCompletion(t *testing.T) {
	m, _ := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("key1", 1, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("key2", 2, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(2))

	require.NoError(t, m.CompleteSyncWrite("key1", ResolutionCommit))
	assert.Equal(t, int64(1), m.HighCompletedSeqno())

	require.NoError(t, m.CompleteSyncWrite("key2", ResolutionCommit))
	assert.Equal(t, int64(2), m.HighCompletedSeqno())
	assert.Equal(t, 0, m.NumTracked(), "Completed prepares passed by both HPS and HCS are pruned")
	assert.Equal(t, uint64(2), m.NumCommitted())

	err := m.CompleteSyncWrite("key3", ResolutionCommit)
	require.Error(t, err)
	assert.True(t, core.IsLogicError(err), "Completion with nothing tracked should be a LogicError")
}

// Scenario: the active must complete prepares in the exact order they were
// streamed; a key mismatch is a protocol violation.
func TestCompletionKeyMismatch(t *testing.T) {
	m, _ := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("A", 1, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("B", 2, core.LevelMajority)))

	err := m.CompleteSyncWrite("B", ResolutionCommit)
	require.Error(t, err)
	assert.True(t, core.IsLogicError(err), "Out-of-order completion should be a LogicError")
	assert.Contains(t, err.Error(), "commit")
	assert.Contains(t, err.Error(), "B")

	// State must be untouched: the expected completion still works.
	require.NoError(t, m.CompleteSyncWrite("A", ResolutionCommit))
	assert.Equal(t, int64(1), m.HighCompletedSeqno())
}

func TestCompletionAbort(t *testing.T) {
	m, _ := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("a", 1, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(1))
	require.NoError(t, m.CompleteSyncWrite("a", ResolutionAbort))

	assert.Equal(t, uint64(0), m.NumCommitted())
	assert.Equal(t, uint64(1), m.NumAborted())
	assert.Equal(t, 0, m.NumTracked())
}

// Scenario: a deduped completion advances the HCS and removes the prepare,
// but bumps no terminal counter. The replica observes the collapsed mutation
// through the normal stream.
func TestDedupedCompletion(t *testing.T) {
	m, _ := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("key1", 1, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("key2", 2, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(2))

	require.NoError(t, m.CompleteSyncWrite("key1", ResolutionCompletionWasDeduped))

	assert.Equal(t, int64(1), m.HighCompletedSeqno())
	assert.Equal(t, 1, m.NumTracked(), "The deduped prepare itself is removed")
	assert.Equal(t, uint64(0), m.NumCommitted())
	assert.Equal(t, uint64(0), m.NumAborted())
}

// A prepare is only pruned once both the HPS and the HCS have passed it.
func TestPruneWaitsForBothPositions(t *testing.T) {
	m, vb := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("a", 1, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("b", 2, core.LevelPersistToMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("c", 3, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(3))
	require.Equal(t, int64(1), m.HighPreparedSeqno(), "Fence at seqno 2 holds the HPS at 1")

	require.NoError(t, m.CompleteSyncWrite("a", ResolutionCommit))
	assert.Equal(t, int64(1), m.HighCompletedSeqno())
	assert.Equal(t, 2, m.NumTracked(), "Only the prepare passed by both positions is pruned")

	// Dissolving the fence advances the HPS past the still-uncompleted
	// prepares, which must stay tracked.
	vb.persistenceSeqno.Store(3)
	require.NoError(t, m.NotifyLocalPersistence())
	assert.Equal(t, int64(3), m.HighPreparedSeqno())
	assert.Equal(t, 2, m.NumTracked(), "Uncompleted prepares are never pruned")
}

func TestIdempotentPersistenceNotification(t *testing.T) {
	m, vb := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("a", 1, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(1))
	require.Equal(t, []int64{1}, vb.ackedSeqnos())

	// Repeated notifications with an unchanged persistence seqno must not
	// re-ack or change state.
	for i := 0; i < 3; i++ {
		require.NoError(t, m.NotifyLocalPersistence())
	}
	assert.Equal(t, []int64{1}, vb.ackedSeqnos())
	assert.Equal(t, int64(1), m.HighPreparedSeqno())
}

func TestSnapshotEndNonIncreasingIsNoOp(t *testing.T) {
	m, vb := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("a", 1, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("b", 2, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(2))
	require.Equal(t, int64(2), m.HighPreparedSeqno())

	require.NoError(t, m.NotifySnapshotEndReceived(1))
	assert.Equal(t, int64(2), m.HighPreparedSeqno(), "A stale snapshot end must not move anything")
	assert.Equal(t, []int64{2}, vb.ackedSeqnos())
}

func TestWarmupOutstandingPrepares(t *testing.T) {
	vb := &testVBucket{id: 7}
	m, err := NewPassiveDurabilityMonitorWithOutstanding(vb, testLogger(), []*core.Item{
		prepare("a", 10, core.LevelMajority),
		prepare("b", 11, core.LevelPersistToMajority),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumTracked())
	assert.Equal(t, uint64(0), m.NumAccepted(), "Grandfathered prepares do not count as newly accepted")

	require.NoError(t, m.NotifySnapshotEndReceived(11))
	assert.Equal(t, int64(10), m.HighPreparedSeqno(), "The warmup fence at 11 still applies")
}

func TestWarmupPrepareWithDefaultTimeout(t *testing.T) {
	vb := &testVBucket{id: 7}
	bad := prepare("a", 10, core.LevelMajority)
	bad.Durability.Timeout = 0

	_, err := NewPassiveDurabilityMonitorWithOutstanding(vb, testLogger(), []*core.Item{bad})
	require.Error(t, err)
	assert.True(t, core.IsExpectationError(err), "A warmup prepare without an explicit timeout is a programmer error")
}

func TestAcksAreStrictlyIncreasing(t *testing.T) {
	m, vb := newTestMonitor(t)

	seqno := int64(0)
	for snap := 0; snap < 5; snap++ {
		for i := 0; i < 3; i++ {
			seqno++
			level := core.LevelMajority
			if seqno%4 == 0 {
				level = core.LevelPersistToMajority
			}
			require.NoError(t, m.AddSyncWrite(prepare(fmt.Sprintf("key-%d", seqno), seqno, level)))
		}
		require.NoError(t, m.NotifySnapshotEndReceived(seqno))
		vb.persistenceSeqno.Store(seqno)
		require.NoError(t, m.NotifyLocalPersistence())
	}

	acks := vb.ackedSeqnos()
	require.NotEmpty(t, acks)
	for i := 1; i < len(acks); i++ {
		assert.Greater(t, acks[i], acks[i-1], "Emitted acks must be strictly increasing")
	}
	assert.Equal(t, seqno, acks[len(acks)-1])
}

func TestAddStats(t *testing.T) {
	m, _ := newTestMonitor(t)

	require.NoError(t, m.AddSyncWrite(prepare("a", 1, core.LevelMajority)))
	require.NoError(t, m.AddSyncWrite(prepare("b", 2, core.LevelMajority)))
	require.NoError(t, m.NotifySnapshotEndReceived(2))
	require.NoError(t, m.CompleteSyncWrite("a", ResolutionCommit))

	stats := make(map[string]string)
	m.AddStats(func(key, value string, cookie any) error {
		assert.Equal(t, "cookie", cookie)
		stats[key] = value
		return nil
	}, "cookie")

	assert.Equal(t, "replica", stats["vb_5:state"])
	assert.Equal(t, "2", stats["vb_5:high_prepared_seqno"])
	assert.Equal(t, "1", stats["vb_5:high_completed_seqno"])
	assert.Equal(t, "1", stats["vb_5:num_tracked"])
}

func TestAddStats_EmissionErrorIsSwallowed(t *testing.T) {
	m, _ := newTestMonitor(t)

	calls := 0
	m.AddStats(func(key, value string, cookie any) error {
		calls++
		return errors.New("sink is full")
	}, nil)

	assert.GreaterOrEqual(t, calls, 3, "All stats are attempted even when the sink fails")
}

func TestResolutionString(t *testing.T) {
	assert.Equal(t, "commit", ResolutionCommit.String())
	assert.Equal(t, "abort", ResolutionAbort.String())
	assert.Equal(t, "completionWasDeduped", ResolutionCompletionWasDeduped.String())
}

// Concurrent readers must never observe torn positions while the stream and
// flusher threads mutate the monitor. Run with -race.
func TestConcurrentReadersAndWriters(t *testing.T) {
	m, vb := newTestMonitor(t)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				// HCS read first: HPS only grows, so the later read can
				// never be behind it.
				hcs := m.HighCompletedSeqno()
				hps := m.HighPreparedSeqno()
				assert.LessOrEqual(t, hcs, hps, "HCS must never exceed HPS")
				m.AddStats(func(string, string, any) error { return nil }, nil)
			}
		}
	}()

	const snapshots = 50
	seqno := int64(0)
	for snap := 0; snap < snapshots; snap++ {
		start := seqno + 1
		for i := 0; i < 4; i++ {
			seqno++
			require.NoError(t, m.AddSyncWrite(prepare(fmt.Sprintf("key-%d", seqno), seqno, core.LevelMajority)))
		}
		require.NoError(t, m.NotifySnapshotEndReceived(seqno))
		for s := start; s <= seqno; s++ {
			require.NoError(t, m.CompleteSyncWrite(core.DocKey(fmt.Sprintf("key-%d", s)), ResolutionCommit))
		}
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, 0, m.NumTracked())
	assert.Equal(t, uint64(snapshots*4), m.NumCommitted())
	assert.Equal(t, seqno, vb.ackedSeqnos()[len(vb.ackedSeqnos())-1])
}
