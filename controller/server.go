// Package controller provides the grpc API used to drive the live game from
// other processes. It also keeps the record of played games, so finished
// games can be fetched and replayed.
package controller

import (
	"context"
	"fmt"
	"net"

	"github.com/battlesnakeio/arcade/controller/pb"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/version"
	grpcmiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Session is the live game the controller drives. Every call is serialised
// with the game clock by the implementation.
type Session interface {
	Snapshot(ctx context.Context) (rules.Snapshot, error)
	Steer(ctx context.Context, d rules.Direction) (bool, error)
	Resize(ctx context.Context, width, height int) error
	SetSpeed(ctx context.Context, speed int) error
	Reset(ctx context.Context) error
}

// New will initialize a new Server.
func New(session Session, store Store) *Server {
	s := &Server{
		Session: session,
		Store:   store,
		started: make(chan struct{}),
	}
	s.srv = grpc.NewServer(
		grpc.ForceServerCodec(Codec{}),
		grpc.UnaryInterceptor(grpcmiddleware.ChainUnaryServer(
			promgrpc.UnaryServerInterceptor,
			statusInterceptor,
		)),
	)
	s.srv.RegisterService(&serviceDesc, s)
	promgrpc.Register(s.srv)
	return s
}

// Server is a grpc server for ControllerServer.
type Server struct {
	Session Session
	Store   Store

	srv       *grpc.Server
	started   chan struct{}
	port      int
	listenErr error
}

// Ping returns the controller version.
func (s *Server) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Version: version.Version}, nil
}

// Snapshot returns the current frame of the live game.
func (s *Server) Snapshot(ctx context.Context, _ *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {
	frame, err := s.Session.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &pb.SnapshotResponse{Frame: pb.NewGameFrame(&frame)}, nil
}

// Steer queues a direction change for the next tick.
func (s *Server) Steer(ctx context.Context, req *pb.SteerRequest) (*pb.SteerResponse, error) {
	d, err := rules.ParseDirection(req.Direction)
	if err != nil {
		return nil, err
	}
	ok, err := s.Session.Steer(ctx, d)
	if err != nil {
		return nil, err
	}
	return &pb.SteerResponse{Accepted: ok}, nil
}

// Resize reconfigures the board and starts a new game.
func (s *Server) Resize(ctx context.Context, req *pb.ResizeRequest) (*pb.ResizeResponse, error) {
	if err := s.Session.Resize(ctx, int(req.Width), int(req.Height)); err != nil {
		return nil, err
	}
	return &pb.ResizeResponse{}, nil
}

// SetSpeed changes the speed of the live game.
func (s *Server) SetSpeed(ctx context.Context, req *pb.SetSpeedRequest) (*pb.SetSpeedResponse, error) {
	if err := s.Session.SetSpeed(ctx, int(req.Speed)); err != nil {
		return nil, err
	}
	return &pb.SetSpeedResponse{}, nil
}

// Reset discards the live game and starts a new one.
func (s *Server) Reset(ctx context.Context, _ *pb.ResetRequest) (*pb.ResetResponse, error) {
	if err := s.Session.Reset(ctx); err != nil {
		return nil, err
	}
	return &pb.ResetResponse{}, nil
}

// GetGame should fetch the game record.
func (s *Server) GetGame(ctx context.Context, req *pb.GetGameRequest) (*pb.GetGameResponse, error) {
	game, err := s.Store.GetGame(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &pb.GetGameResponse{Game: game.Proto()}, nil
}

// ListGameFrames lists frames of a stored game.
func (s *Server) ListGameFrames(ctx context.Context, req *pb.ListGameFramesRequest) (*pb.ListGameFramesResponse, error) {
	frames, err := s.Store.ListGameFrames(ctx, req.ID, int(req.Limit), int(req.Offset))
	if err != nil {
		return nil, err
	}
	return &pb.ListGameFramesResponse{Frames: pb.NewGameFrames(frames)}, nil
}

// Serve will intantiate a grpc server.
func (s *Server) Serve(listen string) error {
	lis, err := net.Listen("tcp", listen)
	if err != nil {
		s.listenErr = errors.Wrapf(err, "controller: listen on %q", listen)
		close(s.started)
		return s.listenErr
	}
	s.port = lis.Addr().(*net.TCPAddr).Port
	close(s.started)
	return s.srv.Serve(lis)
}

// DialAddress will return a localhost address to reach the server. This is
// useful if the server will select it's own port. It returns an empty
// address when the server failed to listen.
func (s *Server) DialAddress() string {
	if s.Wait() != nil {
		return ""
	}
	return fmt.Sprintf("127.0.0.1:%d", s.port)
}

// Wait will wait until the server has started listening, or failed to.
func (s *Server) Wait() error {
	<-s.started
	return s.listenErr
}

// Stop finishes pending calls and stops serving.
func (s *Server) Stop() { s.srv.GracefulStop() }

func statusInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		log.WithError(err).WithField("method", info.FullMethod).Debug("controller call failed")
		return nil, toStatus(err)
	}
	return resp, nil
}

// toStatus maps domain errors onto grpc codes.
func toStatus(err error) error {
	code := codes.Internal
	switch {
	case errors.Is(err, ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, rules.ErrInvalidConfiguration),
		errors.Is(err, rules.ErrInvalidDirection),
		errors.Is(err, ErrInvalidSequence):
		code = codes.InvalidArgument
	case errors.Is(err, rules.ErrBoardFull):
		code = codes.FailedPrecondition
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	default:
		if _, ok := status.FromError(err); ok {
			return err
		}
	}
	return status.Error(code, err.Error())
}
