package pb

import (
	proto "github.com/gogo/protobuf/proto"
)

// PingRequest checks the controller is reachable.
type PingRequest struct{}

func (m *PingRequest) Reset()         { *m = PingRequest{} }
func (m *PingRequest) String() string { return proto.CompactTextString(m) }
func (*PingRequest) ProtoMessage()    {}

// PingResponse carries the controller version.
type PingResponse struct {
	Version string `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
}

func (m *PingResponse) Reset()         { *m = PingResponse{} }
func (m *PingResponse) String() string { return proto.CompactTextString(m) }
func (*PingResponse) ProtoMessage()    {}

// SnapshotRequest asks for the current frame of the live game.
type SnapshotRequest struct{}

func (m *SnapshotRequest) Reset()         { *m = SnapshotRequest{} }
func (m *SnapshotRequest) String() string { return proto.CompactTextString(m) }
func (*SnapshotRequest) ProtoMessage()    {}

// SnapshotResponse holds the current frame of the live game.
type SnapshotResponse struct {
	Frame *GameFrame `protobuf:"bytes,1,opt,name=frame,proto3" json:"frame,omitempty"`
}

func (m *SnapshotResponse) Reset()         { *m = SnapshotResponse{} }
func (m *SnapshotResponse) String() string { return proto.CompactTextString(m) }
func (*SnapshotResponse) ProtoMessage()    {}

// SteerRequest queues a direction change.
type SteerRequest struct {
	Direction string `protobuf:"bytes,1,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *SteerRequest) Reset()         { *m = SteerRequest{} }
func (m *SteerRequest) String() string { return proto.CompactTextString(m) }
func (*SteerRequest) ProtoMessage()    {}

// SteerResponse reports whether the change was accepted. Reversals are
// silently rejected.
type SteerResponse struct {
	Accepted bool `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
}

func (m *SteerResponse) Reset()         { *m = SteerResponse{} }
func (m *SteerResponse) String() string { return proto.CompactTextString(m) }
func (*SteerResponse) ProtoMessage()    {}

// ResizeRequest changes the board size and restarts the game.
type ResizeRequest struct {
	Width  int32 `protobuf:"varint,1,opt,name=width,proto3" json:"width,omitempty"`
	Height int32 `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *ResizeRequest) Reset()         { *m = ResizeRequest{} }
func (m *ResizeRequest) String() string { return proto.CompactTextString(m) }
func (*ResizeRequest) ProtoMessage()    {}

// ResizeResponse is empty.
type ResizeResponse struct{}

func (m *ResizeResponse) Reset()         { *m = ResizeResponse{} }
func (m *ResizeResponse) String() string { return proto.CompactTextString(m) }
func (*ResizeResponse) ProtoMessage()    {}

// SetSpeedRequest changes the tick speed of the live game.
type SetSpeedRequest struct {
	Speed int32 `protobuf:"varint,1,opt,name=speed,proto3" json:"speed,omitempty"`
}

func (m *SetSpeedRequest) Reset()         { *m = SetSpeedRequest{} }
func (m *SetSpeedRequest) String() string { return proto.CompactTextString(m) }
func (*SetSpeedRequest) ProtoMessage()    {}

// SetSpeedResponse is empty.
type SetSpeedResponse struct{}

func (m *SetSpeedResponse) Reset()         { *m = SetSpeedResponse{} }
func (m *SetSpeedResponse) String() string { return proto.CompactTextString(m) }
func (*SetSpeedResponse) ProtoMessage()    {}

// ResetRequest starts a new game.
type ResetRequest struct{}

func (m *ResetRequest) Reset()         { *m = ResetRequest{} }
func (m *ResetRequest) String() string { return proto.CompactTextString(m) }
func (*ResetRequest) ProtoMessage()    {}

// ResetResponse is empty.
type ResetResponse struct{}

func (m *ResetResponse) Reset()         { *m = ResetResponse{} }
func (m *ResetResponse) String() string { return proto.CompactTextString(m) }
func (*ResetResponse) ProtoMessage()    {}

// GetGameRequest fetches a stored game record.
type GetGameRequest struct {
	ID string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetGameRequest) Reset()         { *m = GetGameRequest{} }
func (m *GetGameRequest) String() string { return proto.CompactTextString(m) }
func (*GetGameRequest) ProtoMessage()    {}

// GetGameResponse holds a stored game record.
type GetGameResponse struct {
	Game *Game `protobuf:"bytes,1,opt,name=game,proto3" json:"game,omitempty"`
}

func (m *GetGameResponse) Reset()         { *m = GetGameResponse{} }
func (m *GetGameResponse) String() string { return proto.CompactTextString(m) }
func (*GetGameResponse) ProtoMessage()    {}

// ListGameFramesRequest lists the stored frames of a game. A negative offset
// counts from the last frame.
type ListGameFramesRequest struct {
	ID     string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Limit  int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset int32  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
}

func (m *ListGameFramesRequest) Reset()         { *m = ListGameFramesRequest{} }
func (m *ListGameFramesRequest) String() string { return proto.CompactTextString(m) }
func (*ListGameFramesRequest) ProtoMessage()    {}

// ListGameFramesResponse holds a window of stored frames.
type ListGameFramesResponse struct {
	Frames []*GameFrame `protobuf:"bytes,1,rep,name=frames,proto3" json:"frames,omitempty"`
}

func (m *ListGameFramesResponse) Reset()         { *m = ListGameFramesResponse{} }
func (m *ListGameFramesResponse) String() string { return proto.CompactTextString(m) }
func (*ListGameFramesResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*PingRequest)(nil), "snake.PingRequest")
	proto.RegisterType((*PingResponse)(nil), "snake.PingResponse")
	proto.RegisterType((*SnapshotRequest)(nil), "snake.SnapshotRequest")
	proto.RegisterType((*SnapshotResponse)(nil), "snake.SnapshotResponse")
	proto.RegisterType((*SteerRequest)(nil), "snake.SteerRequest")
	proto.RegisterType((*SteerResponse)(nil), "snake.SteerResponse")
	proto.RegisterType((*ResizeRequest)(nil), "snake.ResizeRequest")
	proto.RegisterType((*ResizeResponse)(nil), "snake.ResizeResponse")
	proto.RegisterType((*SetSpeedRequest)(nil), "snake.SetSpeedRequest")
	proto.RegisterType((*SetSpeedResponse)(nil), "snake.SetSpeedResponse")
	proto.RegisterType((*ResetRequest)(nil), "snake.ResetRequest")
	proto.RegisterType((*ResetResponse)(nil), "snake.ResetResponse")
	proto.RegisterType((*GetGameRequest)(nil), "snake.GetGameRequest")
	proto.RegisterType((*GetGameResponse)(nil), "snake.GetGameResponse")
	proto.RegisterType((*ListGameFramesRequest)(nil), "snake.ListGameFramesRequest")
	proto.RegisterType((*ListGameFramesResponse)(nil), "snake.ListGameFramesResponse")
}
