package replication

import (
	"fmt"
	"log/slog"

	"github.com/INLOpen/nexuskv/core"
	"github.com/INLOpen/nexuskv/durability"
	pb "github.com/INLOpen/nexuskv/replication/proto"
	"github.com/INLOpen/nexuskv/vbucket"
)

// Applier decodes partition stream messages and drives the vbucket's passive
// durability monitor in stream order.
type Applier struct {
	vb     *vbucket.VBucket
	logger *slog.Logger
}

// NewApplier creates an applier for vb.
func NewApplier(vb *vbucket.VBucket, logger *slog.Logger) *Applier {
	return &Applier{
		vb:     vb,
		logger: logger.With("component", "replication_applier", "vbucket", uint16(vb.ID())),
	}
}

// ApplyMessage dispatches one decoded stream message to the durability
// monitor. Messages must be applied in the order they were received.
func (a *Applier) ApplyMessage(msg *pb.StreamMessage) error {
	switch payload := msg.Payload.(type) {
	case *pb.StreamMessage_SnapshotMarker:
		return a.vb.DurabilityMonitor().NotifySnapshotEndReceived(payload.SnapshotMarker.GetEndSeqno())

	case *pb.StreamMessage_Prepare:
		item, err := convertPrepare(payload.Prepare)
		if err != nil {
			a.logger.Error("Failed to convert prepare", "seqno", payload.Prepare.GetBySeqno(), "error", err)
			return err
		}
		return a.vb.DurabilityMonitor().AddSyncWrite(item)

	case *pb.StreamMessage_Completion:
		res, err := convertResolution(payload.Completion.GetResolution())
		if err != nil {
			a.logger.Error("Failed to convert completion", "seqno", payload.Completion.GetBySeqno(), "error", err)
			return err
		}
		return a.vb.DurabilityMonitor().CompleteSyncWrite(core.DocKey(payload.Completion.GetKey()), res)

	default:
		return fmt.Errorf("unknown stream message payload type: %T", payload)
	}
}

// convertPrepare converts the wire prepare into the internal item record the
// monitor understands.
func convertPrepare(p *pb.Prepare) (*core.Item, error) {
	level, err := convertLevel(p.GetLevel())
	if err != nil {
		return nil, err
	}
	return &core.Item{
		Key:     core.DocKey(p.GetKey()),
		BySeqno: p.GetBySeqno(),
		Deleted: p.GetDeleted(),
		Durability: core.Requirements{
			Level:   level,
			Timeout: core.Timeout(p.GetTimeoutMs()),
		},
	}, nil
}

func convertLevel(level pb.Level) (core.Level, error) {
	switch level {
	case pb.Level_LEVEL_MAJORITY:
		return core.LevelMajority, nil
	case pb.Level_LEVEL_MAJORITY_AND_PERSIST_ON_MASTER:
		return core.LevelMajorityAndPersistOnMaster, nil
	case pb.Level_LEVEL_PERSIST_TO_MAJORITY:
		return core.LevelPersistToMajority, nil
	case pb.Level_LEVEL_NONE:
		return core.LevelNone, &core.InvalidArgumentError{Message: "prepare streamed with level None"}
	default:
		return core.LevelNone, fmt.Errorf("unknown durability level: %v", level)
	}
}

func convertResolution(res pb.Resolution) (durability.Resolution, error) {
	switch res {
	case pb.Resolution_RESOLUTION_COMMIT:
		return durability.ResolutionCommit, nil
	case pb.Resolution_RESOLUTION_ABORT:
		return durability.ResolutionAbort, nil
	case pb.Resolution_RESOLUTION_COMPLETION_WAS_DEDUPED:
		return durability.ResolutionCompletionWasDeduped, nil
	default:
		return durability.ResolutionCommit, fmt.Errorf("unknown resolution: %v", res)
	}
}
