package replication

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"

	"github.com/INLOpen/nexuskv/core"
	pb "github.com/INLOpen/nexuskv/replication/proto"
)

// AckClient delivers prepared-seqno acknowledgements to the active node over
// the replication service. It satisfies vbucket.SeqnoAckSender.
type AckClient struct {
	client pb.ReplicationServiceClient
	logger *slog.Logger
}

// NewAckClient creates an ack client on an existing connection.
func NewAckClient(conn *grpc.ClientConn, logger *slog.Logger) *AckClient {
	return &AckClient{
		client: pb.NewReplicationServiceClient(conn),
		logger: logger.With("component", "ack_client"),
	}
}

// SendSeqnoAck reports vbid's high prepared seqno to the active node. A
// failed ack is not retried here: the next HPS advance supersedes it with a
// strictly larger value.
func (c *AckClient) SendSeqnoAck(vbid core.VBucketID, seqno int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := c.client.SeqnoAck(ctx, &pb.SeqnoAckRequest{
		VbucketId:     uint32(vbid),
		PreparedSeqno: seqno,
	})
	if err != nil {
		c.logger.Warn("Seqno ack failed", "vbucket", uint16(vbid), "seqno", seqno, "error", err)
	}
	return err
}
