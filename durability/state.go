package durability

import (
	"fmt"
	"time"

	"github.com/INLOpen/nexuskv/core"
)

// state holds everything the monitor guards behind its lock: the tracked
// prepares, the two seqno positions and the lifetime counters.
//
// Invariants, held at every externally visible moment:
//   - highCompletedSeqno <= highPreparedSeqno, as long as the active node only
//     completes prepares this replica has acknowledged (completeSyncWrite
//     does not check this)
//   - every tracked prepare has bySeqno > min(HPS, HCS)
//   - tracked prepares are in strictly increasing bySeqno order
//   - HPS never passes snapshotEnd
type state struct {
	trackedWrites trackedWrites

	highPreparedSeqno  Position
	highCompletedSeqno Position

	// snapshotEnd is the largest snapshot boundary announced by the active
	// node. HPS only ever moves within a fully received snapshot.
	snapshotEnd int64

	totalAccepted  uint64
	totalCommitted uint64
	totalAborted   uint64
}

// addSyncWrite validates and appends a prepare. HPS is not advanced here: it
// can only move on a snapshot-end or persistence event.
func (st *state) addSyncWrite(item *core.Item, enqueued time.Time) error {
	if item.Durability.Level == core.LevelNone {
		return &core.InvalidArgumentError{Message: "addSyncWrite: level is None"}
	}
	if item.Durability.Timeout.IsDefault() {
		return &core.InvalidArgumentError{
			Message: "addSyncWrite: timeout is default (explicit value should have been specified by active node)",
		}
	}
	if item.BySeqno <= 0 {
		return &core.InvalidArgumentError{Message: fmt.Sprintf("addSyncWrite: seqno %d is not positive", item.BySeqno)}
	}
	if err := st.trackedWrites.PushBack(newSyncWrite(item, enqueued)); err != nil {
		return err
	}
	st.totalAccepted++
	return nil
}

// completeSyncWrite applies the active node's terminal decision for the next
// prepare awaiting completion. The active completes prepares in the exact
// seqno order they were streamed, so the expected prepare is always the one
// right after the HCS cursor; the container is never searched by key.
//
// A CompletionWasDeduped resolution removes the prepare like a commit or
// abort but bumps no terminal counter: the replica observes the collapsed
// mutation through the normal stream.
func (st *state) completeSyncWrite(key core.DocKey, res Resolution) (*SyncWrite, error) {
	if st.trackedWrites.Empty() {
		return nil, &core.LogicError{
			Message: fmt.Sprintf("completeSyncWrite: no tracked writes, but received %s for key %q", res, string(key)),
		}
	}

	next := st.trackedWrites.Next(st.highCompletedSeqno.cursor)
	if next == nil {
		return nil, &core.LogicError{
			Message: fmt.Sprintf("completeSyncWrite: no prepare awaiting completion, but received %s for key %q", res, string(key)),
		}
	}

	// Sanity check for in-order completion.
	if next.key != key {
		return nil, &core.LogicError{
			Message: fmt.Sprintf("completeSyncWrite: pending resolution for %s, but received unexpected %s for key %q",
				next, res, string(key)),
		}
	}

	if err := st.highCompletedSeqno.advance(next); err != nil {
		return nil, err
	}

	// HCS has moved, which could make some prepares eligible for removal.
	if err := st.checkForAndRemovePrepares(); err != nil {
		return nil, err
	}

	switch res {
	case ResolutionCommit:
		st.totalCommitted++
	case ResolutionAbort:
		st.totalAborted++
	case ResolutionCompletionWasDeduped:
	}
	return next, nil
}

// updateHighPreparedSeqno moves the HPS as far as the current snapshot and
// durability fences allow. It is called on every snapshot-end receipt and on
// every persistence advance.
//
// The HPS moves under the following constraints:
//
//  1. nothing is locally satisfied before the complete snapshot is received;
//  2. Majority and MajorityAndPersistOnMaster prepares are satisfied as soon
//     as the complete snapshot is received;
//  3. a PersistToMajority prepare is a durability fence: prepares at or past
//     it stay unsatisfied until the complete enclosing snapshot is persisted.
func (st *state) updateHighPreparedSeqno(persistenceSeqno int64) error {
	if st.trackedWrites.Empty() {
		return nil
	}

	prev := st.highPreparedSeqno.Seqno()

	// First, blindly move the HPS up to the last persisted snapshot-end.
	// Persistence of a complete snapshot locally satisfies every pending
	// prepare in it, regardless of level, so the fence dissolves.
	if persistenceSeqno >= st.snapshotEnd {
		for {
			next := st.trackedWrites.Next(st.highPreparedSeqno.cursor)
			if next == nil || next.bySeqno > st.snapshotEnd {
				break
			}
			if err := st.highPreparedSeqno.advance(next); err != nil {
				return err
			}
		}
	}

	// Then move the HPS up to the first not-yet-persisted PersistToMajority
	// prepare, the new durability fence. Still within the latest complete
	// snapshot received.
	for {
		next := st.trackedWrites.Next(st.highPreparedSeqno.cursor)
		if next == nil || next.bySeqno > st.snapshotEnd {
			break
		}
		if next.level == core.LevelNone {
			return &core.LogicError{
				Message: fmt.Sprintf("updateHighPreparedSeqno: tracked prepare %s has level None", next),
			}
		}
		if next.level == core.LevelPersistToMajority {
			break
		}
		if err := st.highPreparedSeqno.advance(next); err != nil {
			return err
		}
	}

	if cur := st.highPreparedSeqno.Seqno(); cur != prev {
		if cur < prev {
			return &core.ExpectationError{
				Message: fmt.Sprintf("updateHighPreparedSeqno: HPS moved backwards, %d -> %d", prev, cur),
			}
		}
		// HPS has moved, which could make some prepares eligible for removal.
		return st.checkForAndRemovePrepares()
	}
	return nil
}

// checkForAndRemovePrepares removes from the front every prepare both the HPS
// and the HCS have passed. A cursor pointing at a removed node is reset to
// the end sentinel first; its seqno is untouched, and the cyclic Next(end)
// convention makes the next advancement resume from the new front.
func (st *state) checkForAndRemovePrepares() error {
	if st.trackedWrites.Empty() {
		return nil
	}

	fence := min(st.highCompletedSeqno.Seqno(), st.highPreparedSeqno.Seqno())

	it := st.trackedWrites.Front()
	for it != nil && it.bySeqno <= fence {
		if it == st.highCompletedSeqno.cursor {
			st.highCompletedSeqno.cursor = nil
		}
		if it == st.highPreparedSeqno.cursor {
			st.highPreparedSeqno.cursor = nil
		}
		next := it.next
		if err := st.trackedWrites.Erase(it); err != nil {
			return err
		}
		it = next
	}
	return nil
}
