package controller

import (
	"context"

	"github.com/battlesnakeio/arcade/controller/pb"
	"google.golang.org/grpc"
)

// ServiceName is the fully qualified grpc service name of the controller.
const ServiceName = "snake.Controller"

// ControllerServer is the server API for the controller service.
type ControllerServer interface {
	Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error)
	Snapshot(context.Context, *pb.SnapshotRequest) (*pb.SnapshotResponse, error)
	Steer(context.Context, *pb.SteerRequest) (*pb.SteerResponse, error)
	Resize(context.Context, *pb.ResizeRequest) (*pb.ResizeResponse, error)
	SetSpeed(context.Context, *pb.SetSpeedRequest) (*pb.SetSpeedResponse, error)
	Reset(context.Context, *pb.ResetRequest) (*pb.ResetResponse, error)
	GetGame(context.Context, *pb.GetGameRequest) (*pb.GetGameResponse, error)
	ListGameFrames(context.Context, *pb.ListGameFramesRequest) (*pb.ListGameFramesResponse, error)
}

// ControllerClient is the client API for the controller service.
type ControllerClient interface {
	Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error)
	Snapshot(ctx context.Context, in *pb.SnapshotRequest, opts ...grpc.CallOption) (*pb.SnapshotResponse, error)
	Steer(ctx context.Context, in *pb.SteerRequest, opts ...grpc.CallOption) (*pb.SteerResponse, error)
	Resize(ctx context.Context, in *pb.ResizeRequest, opts ...grpc.CallOption) (*pb.ResizeResponse, error)
	SetSpeed(ctx context.Context, in *pb.SetSpeedRequest, opts ...grpc.CallOption) (*pb.SetSpeedResponse, error)
	Reset(ctx context.Context, in *pb.ResetRequest, opts ...grpc.CallOption) (*pb.ResetResponse, error)
	GetGame(ctx context.Context, in *pb.GetGameRequest, opts ...grpc.CallOption) (*pb.GetGameResponse, error)
	ListGameFrames(ctx context.Context, in *pb.ListGameFramesRequest, opts ...grpc.CallOption) (*pb.ListGameFramesResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ControllerServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("Ping", ControllerServer.Ping),
		unaryMethod("Snapshot", ControllerServer.Snapshot),
		unaryMethod("Steer", ControllerServer.Steer),
		unaryMethod("Resize", ControllerServer.Resize),
		unaryMethod("SetSpeed", ControllerServer.SetSpeed),
		unaryMethod("Reset", ControllerServer.Reset),
		unaryMethod("GetGame", ControllerServer.GetGame),
		unaryMethod("ListGameFrames", ControllerServer.ListGameFrames),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "snake/controller",
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unaryMethod builds the grpc handler for a single controller call, running
// it through the server interceptor chain when one is installed.
func unaryMethod[Req, Resp any](name string, call func(ControllerServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ControllerServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(ControllerServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
