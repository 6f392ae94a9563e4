// Package vbucket holds the replica-side partition object that owns a
// passive durability monitor and mediates between it, the flusher and the
// replication transport.
package vbucket

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/INLOpen/nexuskv/core"
	"github.com/INLOpen/nexuskv/durability"
)

// SeqnoAckSender delivers prepared-seqno acknowledgements to the active node.
type SeqnoAckSender interface {
	SendSeqnoAck(vbid core.VBucketID, seqno int64) error
}

// VBucket is a single replicated partition on this node. The flusher reports
// persistence progress through NotifyPersistence; the durability monitor
// hands acks back through SendSeqnoAck.
type VBucket struct {
	id     core.VBucketID
	logger *slog.Logger

	mu       sync.RWMutex
	state    core.VBucketState
	failover uuid.UUID

	persistenceSeqno atomic.Int64

	ackMu     sync.RWMutex
	ackSender SeqnoAckSender

	monitor *durability.PassiveDurabilityMonitor
}

// New creates a replica vbucket with a fresh failover UUID and an empty
// durability monitor.
func New(id core.VBucketID, ackSender SeqnoAckSender, logger *slog.Logger) *VBucket {
	vb := &VBucket{
		id:        id,
		logger:    logger.With("component", "vbucket", "vbucket", uint16(id)),
		state:     core.VBucketStateReplica,
		failover:  uuid.New(),
		ackSender: ackSender,
	}
	vb.monitor = durability.NewPassiveDurabilityMonitor(vb, logger)
	return vb
}

// NewWithOutstanding creates a replica vbucket whose monitor is pre-populated
// with the prepares recovered at warmup.
func NewWithOutstanding(id core.VBucketID, ackSender SeqnoAckSender, logger *slog.Logger, outstanding []*core.Item) (*VBucket, error) {
	vb := &VBucket{
		id:        id,
		logger:    logger.With("component", "vbucket", "vbucket", uint16(id)),
		state:     core.VBucketStateReplica,
		failover:  uuid.New(),
		ackSender: ackSender,
	}
	monitor, err := durability.NewPassiveDurabilityMonitorWithOutstanding(vb, logger, outstanding)
	if err != nil {
		return nil, err
	}
	vb.monitor = monitor
	return vb, nil
}

// ID returns the partition id.
func (vb *VBucket) ID() core.VBucketID {
	return vb.id
}

// State returns the partition's replication state.
func (vb *VBucket) State() core.VBucketState {
	vb.mu.RLock()
	defer vb.mu.RUnlock()
	return vb.state
}

// SetState changes the partition's replication state.
func (vb *VBucket) SetState(state core.VBucketState) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.logger.Info("VBucket state change", "from", vb.state, "to", state)
	vb.state = state
}

// FailoverUUID returns the current failover epoch of this partition.
func (vb *VBucket) FailoverUUID() uuid.UUID {
	vb.mu.RLock()
	defer vb.mu.RUnlock()
	return vb.failover
}

// DurabilityMonitor returns the partition's passive durability monitor.
func (vb *VBucket) DurabilityMonitor() *durability.PassiveDurabilityMonitor {
	return vb.monitor
}

// PersistenceSeqno returns the seqno up to which the flusher has persisted
// this partition.
func (vb *VBucket) PersistenceSeqno() int64 {
	return vb.persistenceSeqno.Load()
}

// NotifyPersistence is called by the flusher after a successful flush. The
// persistence seqno is monotonic; a stale notification is ignored. Progress
// is forwarded to the durability monitor, as persistence may dissolve a
// durability fence.
func (vb *VBucket) NotifyPersistence(seqno int64) error {
	for {
		cur := vb.persistenceSeqno.Load()
		if seqno <= cur {
			return nil
		}
		if vb.persistenceSeqno.CompareAndSwap(cur, seqno) {
			break
		}
	}
	return vb.monitor.NotifyLocalPersistence()
}

// SetAckSender installs the ack transport. Acks raised while no sender is
// installed are dropped; the next HPS advance supersedes them.
func (vb *VBucket) SetAckSender(sender SeqnoAckSender) {
	vb.ackMu.Lock()
	defer vb.ackMu.Unlock()
	vb.ackSender = sender
}

// SendSeqnoAck forwards a prepared-seqno ack to the active node. Delivery is
// fire-and-forget: a dropped ack is superseded by the next, strictly larger
// one.
func (vb *VBucket) SendSeqnoAck(seqno int64) {
	vb.ackMu.RLock()
	sender := vb.ackSender
	vb.ackMu.RUnlock()
	if sender == nil {
		return
	}
	if err := sender.SendSeqnoAck(vb.id, seqno); err != nil {
		vb.logger.Warn("Failed to send seqno ack", "seqno", seqno, "error", err)
	}
}

// PostProcessRollback truncates persistence progress to the rollback point,
// rotates the failover UUID and reconciles the durability monitor.
func (vb *VBucket) PostProcessRollback(rb *core.RollbackResult) error {
	for {
		cur := vb.persistenceSeqno.Load()
		if cur <= rb.HighSeqno {
			break
		}
		if vb.persistenceSeqno.CompareAndSwap(cur, rb.HighSeqno) {
			break
		}
	}

	vb.mu.Lock()
	vb.failover = uuid.New()
	vb.mu.Unlock()

	return vb.monitor.PostProcessRollback(rb)
}
