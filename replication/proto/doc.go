// Package proto contains the replication wire types generated from
// replication.proto.
//
//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. replication.proto
package proto
