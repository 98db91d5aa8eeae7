package controller

import (
	"context"

	"github.com/battlesnakeio/arcade/controller/pb"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

// ServerShim calls a Server in process, without a network hop. Errors are
// mapped onto grpc status codes the same way the grpc server maps them.
type ServerShim struct {
	server *Server
}

// NewInMemory returns a ControllerClient backed directly by server.
func NewInMemory(server *Server) ControllerClient {
	return &ServerShim{
		server: server,
	}
}

func shimErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return toStatus(err)
}

// Ping checks the controller is up.
func (s *ServerShim) Ping(ctx context.Context, req *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	resp, err := s.server.Ping(ctx, req)
	return resp, shimErr(err)
}

// Snapshot fetches the current frame of the live game.
func (s *ServerShim) Snapshot(ctx context.Context, req *pb.SnapshotRequest, opts ...grpc.CallOption) (*pb.SnapshotResponse, error) {
	resp, err := s.server.Snapshot(ctx, req)
	return resp, shimErr(err)
}

// Steer queues a direction change on the live game.
func (s *ServerShim) Steer(ctx context.Context, req *pb.SteerRequest, opts ...grpc.CallOption) (*pb.SteerResponse, error) {
	resp, err := s.server.Steer(ctx, req)
	return resp, shimErr(err)
}

// Resize changes the board size of the live game.
func (s *ServerShim) Resize(ctx context.Context, req *pb.ResizeRequest, opts ...grpc.CallOption) (*pb.ResizeResponse, error) {
	resp, err := s.server.Resize(ctx, req)
	return resp, shimErr(err)
}

// SetSpeed changes the speed of the live game.
func (s *ServerShim) SetSpeed(ctx context.Context, req *pb.SetSpeedRequest, opts ...grpc.CallOption) (*pb.SetSpeedResponse, error) {
	resp, err := s.server.SetSpeed(ctx, req)
	return resp, shimErr(err)
}

// Reset starts a new game.
func (s *ServerShim) Reset(ctx context.Context, req *pb.ResetRequest, opts ...grpc.CallOption) (*pb.ResetResponse, error) {
	resp, err := s.server.Reset(ctx, req)
	return resp, shimErr(err)
}

// GetGame fetches a stored game record.
func (s *ServerShim) GetGame(ctx context.Context, req *pb.GetGameRequest, opts ...grpc.CallOption) (*pb.GetGameResponse, error) {
	resp, err := s.server.GetGame(ctx, req)
	return resp, shimErr(err)
}

// ListGameFrames lists stored frames of a game.
func (s *ServerShim) ListGameFrames(ctx context.Context, req *pb.ListGameFramesRequest, opts ...grpc.CallOption) (*pb.ListGameFramesResponse, error) {
	resp, err := s.server.ListGameFrames(ctx, req)
	return resp, shimErr(err)
}
