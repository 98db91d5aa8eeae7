package controller

import (
	"context"

	"github.com/battlesnakeio/arcade/controller/pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Client is a grpc connection to a controller.
type Client struct {
	cc *grpc.ClientConn
}

// Dial will dial the controller client.
func Dial(address string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
	)
	conn, err := grpc.Dial(address, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: conn}, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) invoke(ctx context.Context, name string, in, out interface{}, opts ...grpc.CallOption) error {
	err := c.cc.Invoke(ctx, fullMethod(name), in, out, opts...)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

// Ping checks the controller is up.
func (c *Client) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	out := new(pb.PingResponse)
	if err := c.invoke(ctx, "Ping", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Snapshot fetches the current frame of the live game.
func (c *Client) Snapshot(ctx context.Context, in *pb.SnapshotRequest, opts ...grpc.CallOption) (*pb.SnapshotResponse, error) {
	out := new(pb.SnapshotResponse)
	if err := c.invoke(ctx, "Snapshot", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Steer queues a direction change on the live game.
func (c *Client) Steer(ctx context.Context, in *pb.SteerRequest, opts ...grpc.CallOption) (*pb.SteerResponse, error) {
	out := new(pb.SteerResponse)
	if err := c.invoke(ctx, "Steer", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Resize changes the board size of the live game.
func (c *Client) Resize(ctx context.Context, in *pb.ResizeRequest, opts ...grpc.CallOption) (*pb.ResizeResponse, error) {
	out := new(pb.ResizeResponse)
	if err := c.invoke(ctx, "Resize", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SetSpeed changes the speed of the live game.
func (c *Client) SetSpeed(ctx context.Context, in *pb.SetSpeedRequest, opts ...grpc.CallOption) (*pb.SetSpeedResponse, error) {
	out := new(pb.SetSpeedResponse)
	if err := c.invoke(ctx, "SetSpeed", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Reset starts a new game.
func (c *Client) Reset(ctx context.Context, in *pb.ResetRequest, opts ...grpc.CallOption) (*pb.ResetResponse, error) {
	out := new(pb.ResetResponse)
	if err := c.invoke(ctx, "Reset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGame fetches a stored game record.
func (c *Client) GetGame(ctx context.Context, in *pb.GetGameRequest, opts ...grpc.CallOption) (*pb.GetGameResponse, error) {
	out := new(pb.GetGameResponse)
	if err := c.invoke(ctx, "GetGame", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListGameFrames lists stored frames of a game.
func (c *Client) ListGameFrames(ctx context.Context, in *pb.ListGameFramesRequest, opts ...grpc.CallOption) (*pb.ListGameFramesResponse, error) {
	out := new(pb.ListGameFramesResponse)
	if err := c.invoke(ctx, "ListGameFrames", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
