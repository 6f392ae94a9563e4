package durability

import "github.com/INLOpen/nexuskv/core"

// Position pairs a weakly monotonic seqno with a cursor into trackedWrites.
// The cursor is nil when at the end sentinel. The seqno is written before the
// cursor so a failed monotonicity check leaves the Position untouched.
type Position struct {
	lastWriteSeqno core.Monotonic
	cursor         *SyncWrite
}

// Seqno returns the seqno of the last write this Position has passed.
func (p *Position) Seqno() int64 {
	return p.lastWriteSeqno.Get()
}

// advance moves the Position onto node, enforcing seqno monotonicity.
func (p *Position) advance(node *SyncWrite) error {
	if err := p.lastWriteSeqno.Set(node.bySeqno); err != nil {
		return err
	}
	p.cursor = node
	return nil
}
