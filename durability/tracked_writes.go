package durability

import (
	"fmt"
	"time"

	"github.com/INLOpen/nexuskv/core"
)

// SyncWrite is a single in-flight prepare tracked by the monitor. It is
// immutable after insertion; the list links are owned by trackedWrites and
// only touched under the monitor's lock.
type SyncWrite struct {
	key     core.DocKey
	bySeqno int64
	level   core.Level
	deleted bool

	// enqueued is when the prepare entered tracking. Zero for prepares
	// reinstated from warmup or rollback, which carry no useful latency.
	enqueued time.Time

	prev, next *SyncWrite
}

func newSyncWrite(item *core.Item, enqueued time.Time) *SyncWrite {
	return &SyncWrite{
		key:      item.Key,
		bySeqno:  item.BySeqno,
		level:    item.Durability.Level,
		deleted:  item.Deleted,
		enqueued: enqueued,
	}
}

// Key returns the document key of the prepare.
func (sw *SyncWrite) Key() core.DocKey {
	return sw.key
}

// BySeqno returns the seqno the prepare was streamed at.
func (sw *SyncWrite) BySeqno() int64 {
	return sw.bySeqno
}

// Level returns the durability level of the prepare.
func (sw *SyncWrite) Level() core.Level {
	return sw.level
}

func (sw *SyncWrite) String() string {
	return fmt.Sprintf("SyncWrite{key:%q seqno:%d level:%s}", string(sw.key), sw.bySeqno, sw.level)
}

// trackedWrites is a doubly-linked list of SyncWrites in strictly increasing
// bySeqno order. A cursor into the list is a *SyncWrite; nil is the end
// sentinel. Node pointers stay valid across insertions at either end and are
// invalidated only by Erase on that node.
type trackedWrites struct {
	head, tail *SyncWrite
	size       int
}

// Front returns the first node, or nil if the list is empty.
func (tw *trackedWrites) Front() *SyncWrite {
	return tw.head
}

// Back returns the last node, or nil if the list is empty.
func (tw *trackedWrites) Back() *SyncWrite {
	return tw.tail
}

// Next returns the node after cur. By convention Next(nil) is Front: a cursor
// reset to the end sentinel resumes from whatever the front is now, which is
// what the pruning logic relies on.
func (tw *trackedWrites) Next(cur *SyncWrite) *SyncWrite {
	if cur == nil {
		return tw.head
	}
	return cur.next
}

// Len returns the number of tracked prepares.
func (tw *trackedWrites) Len() int {
	return tw.size
}

// Empty reports whether no prepares are tracked.
func (tw *trackedWrites) Empty() bool {
	return tw.size == 0
}

// PushBack appends sw, failing with an OrderError if its seqno does not
// strictly follow the current back.
func (tw *trackedWrites) PushBack(sw *SyncWrite) error {
	if tw.tail != nil && sw.bySeqno <= tw.tail.bySeqno {
		return &core.OrderError{LastSeqno: tw.tail.bySeqno, Proposed: sw.bySeqno}
	}
	sw.prev = tw.tail
	sw.next = nil
	if tw.tail == nil {
		tw.head = sw
	} else {
		tw.tail.next = sw
	}
	tw.tail = sw
	tw.size++
	return nil
}

// PushFront prepends sw. The caller is responsible for feeding seqnos in
// decreasing order, as rollback reinstatement does.
func (tw *trackedWrites) PushFront(sw *SyncWrite) {
	sw.next = tw.head
	sw.prev = nil
	if tw.head == nil {
		tw.tail = sw
	} else {
		tw.head.prev = sw
	}
	tw.head = sw
	tw.size++
}

// Erase unlinks sw from the list. Erasing the end sentinel is a LogicError.
func (tw *trackedWrites) Erase(sw *SyncWrite) error {
	if sw == nil {
		return &core.LogicError{Message: "erase on end sentinel"}
	}
	if sw.prev == nil {
		tw.head = sw.next
	} else {
		sw.prev.next = sw.next
	}
	if sw.next == nil {
		tw.tail = sw.prev
	} else {
		sw.next.prev = sw.prev
	}
	sw.prev = nil
	sw.next = nil
	tw.size--
	return nil
}
