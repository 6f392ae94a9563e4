package replication

import (
	"context"
	"io"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/INLOpen/nexuskv/replication/proto"
	"github.com/INLOpen/nexuskv/vbucket"
)

// StreamClient connects a replica partition to the active node, streams
// prepares, completions and snapshot markers, and feeds them to the applier.
type StreamClient struct {
	leaderAddr string
	vb         *vbucket.VBucket
	applier    *Applier
	logger     *slog.Logger

	conn   *grpc.ClientConn
	client pb.ReplicationServiceClient
	cancel context.CancelFunc

	// lastReceivedSeqno tracks resume position across stream reconnects.
	// Only touched from the replication loop goroutine.
	lastReceivedSeqno int64
}

// NewStreamClient creates a stream client for vb.
func NewStreamClient(leaderAddr string, vb *vbucket.VBucket, logger *slog.Logger) *StreamClient {
	return &StreamClient{
		leaderAddr: leaderAddr,
		vb:         vb,
		applier:    NewApplier(vb, logger),
		logger:     logger.With("component", "stream_client", "leader", leaderAddr, "vbucket", uint16(vb.ID())),
	}
}

// Connect dials the active node. It must be called once, before Start.
func (c *StreamClient) Connect(ctx context.Context) error {
	conn, err := grpc.DialContext(ctx, c.leaderAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  1.0 * time.Second,
				Multiplier: 1.6,
				Jitter:     0.2,
				MaxDelay:   120 * time.Second,
			},
			MinConnectTimeout: 20 * time.Second,
		}),
	)
	if err != nil {
		c.logger.Error("Failed to dial leader, stream client will not run", "error", err)
		return err
	}
	c.conn = conn
	c.client = pb.NewReplicationServiceClient(conn)

	c.logger.Info("Connected to leader")
	return nil
}

// Start runs the replication loop until Stop, context cancellation, or a
// stream message that fails to apply.
// This is a blocking call. It should be run in a goroutine.
func (c *StreamClient) Start(ctx context.Context) error {
	c.logger.Info("Starting partition stream client")

	streamCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.replicationLoop(streamCtx)
	return nil
}

// AckClient returns a seqno ack sender sharing this client's connection.
func (c *StreamClient) AckClient() *AckClient {
	return NewAckClient(c.conn, c.logger)
}

// replicationLoop opens the partition stream and re-opens it from the last
// received seqno whenever it breaks.
func (c *StreamClient) replicationLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Replication loop stopping", "reason", ctx.Err())
			return
		default:
			req := &pb.StreamRequest{
				VbucketId: uint32(c.vb.ID()),
				FromSeqno: c.lastReceivedSeqno + 1,
			}
			c.logger.Info("Opening partition stream", "from_seqno", req.FromSeqno)

			stream, err := c.client.StreamPartition(ctx, req)
			if err != nil {
				c.logger.Error("Failed to open partition stream, will retry", "error", err)
				time.Sleep(5 * time.Second)
				continue
			}

			err = c.processStream(stream)
			if err != nil && err != io.EOF && err != context.Canceled {
				c.logger.Error("Partition stream broke with an error", "error", err)
			}
		}
	}
}

// processStream reads messages off the stream and applies them in order.
func (c *StreamClient) processStream(stream pb.ReplicationService_StreamPartitionClient) error {
	for {
		msg, err := stream.Recv()
		if err != nil {
			return err
		}
		if err := c.applier.ApplyMessage(msg); err != nil {
			c.logger.Error("Failed to apply stream message, stopping replication", "error", err)
			c.cancel()
			return err
		}
		if seqno := messageSeqno(msg); seqno > c.lastReceivedSeqno {
			c.lastReceivedSeqno = seqno
		}
	}
}

// messageSeqno extracts the highest seqno a message accounts for, used as the
// stream resume position.
func messageSeqno(msg *pb.StreamMessage) int64 {
	switch payload := msg.Payload.(type) {
	case *pb.StreamMessage_SnapshotMarker:
		// Markers carry no seqno of their own; the leader resends the
		// current marker when a stream resumes mid-snapshot.
		return 0
	case *pb.StreamMessage_Prepare:
		return payload.Prepare.GetBySeqno()
	case *pb.StreamMessage_Completion:
		return payload.Completion.GetBySeqno()
	default:
		return 0
	}
}

// Stop shuts the stream client down.
func (c *StreamClient) Stop() {
	c.logger.Info("Stopping partition stream client")
	if c.cancel != nil {
		c.cancel()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
