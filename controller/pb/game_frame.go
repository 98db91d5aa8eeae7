package pb

import (
	proto "github.com/gogo/protobuf/proto"
)

// Point is a single cell of the board on the wire.
type Point struct {
	X int32 `protobuf:"varint,1,opt,name=x,proto3" json:"x,omitempty"`
	Y int32 `protobuf:"varint,2,opt,name=y,proto3" json:"y,omitempty"`
}

func (m *Point) Reset()         { *m = Point{} }
func (m *Point) String() string { return proto.CompactTextString(m) }
func (*Point) ProtoMessage()    {}

// Equals checks if 2 points are the same x,y coordinate
func (m *Point) Equals(other *Point) bool {
	return m.X == other.X && m.Y == other.Y
}

// Adversary is a roaming obstacle and the direction it faces.
type Adversary struct {
	Point     *Point `protobuf:"bytes,1,opt,name=point,proto3" json:"point,omitempty"`
	Direction string `protobuf:"bytes,2,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *Adversary) Reset()         { *m = Adversary{} }
func (m *Adversary) String() string { return proto.CompactTextString(m) }
func (*Adversary) ProtoMessage()    {}

// GameFrame is one frame of a game, the wire form of rules.Snapshot.
type GameFrame struct {
	ID          string       `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Turn        int32        `protobuf:"varint,2,opt,name=turn,proto3" json:"turn,omitempty"`
	Width       int32        `protobuf:"varint,3,opt,name=width,proto3" json:"width,omitempty"`
	Height      int32        `protobuf:"varint,4,opt,name=height,proto3" json:"height,omitempty"`
	Snake       []*Point     `protobuf:"bytes,5,rep,name=snake,proto3" json:"snake,omitempty"`
	Food        *Point       `protobuf:"bytes,6,opt,name=food,proto3" json:"food,omitempty"`
	Adversaries []*Adversary `protobuf:"bytes,7,rep,name=adversaries,proto3" json:"adversaries,omitempty"`
	Direction   string       `protobuf:"bytes,8,opt,name=direction,proto3" json:"direction,omitempty"`
	Interval    int32        `protobuf:"varint,9,opt,name=interval,proto3" json:"interval,omitempty"`
	BaseScore   int32        `protobuf:"varint,10,opt,name=base_score,json=baseScore,proto3" json:"base_score,omitempty"`
	Score       int32        `protobuf:"varint,11,opt,name=score,proto3" json:"score,omitempty"`
	Over        bool         `protobuf:"varint,12,opt,name=over,proto3" json:"over,omitempty"`
	Cause       string       `protobuf:"bytes,13,opt,name=cause,proto3" json:"cause,omitempty"`
}

func (m *GameFrame) Reset()         { *m = GameFrame{} }
func (m *GameFrame) String() string { return proto.CompactTextString(m) }
func (*GameFrame) ProtoMessage()    {}

// Head returns the first point of the snake, nil for an empty snake.
func (m *GameFrame) Head() *Point {
	if len(m.Snake) == 0 {
		return nil
	}
	return m.Snake[0]
}

// Game is the stored record of a game on the wire. Created is in unix
// nanoseconds, 0 when unknown.
type Game struct {
	ID        string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Width     int32  `protobuf:"varint,2,opt,name=width,proto3" json:"width,omitempty"`
	Height    int32  `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	Speed     int32  `protobuf:"varint,4,opt,name=speed,proto3" json:"speed,omitempty"`
	Status    string `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Turn      int32  `protobuf:"varint,6,opt,name=turn,proto3" json:"turn,omitempty"`
	Score     int32  `protobuf:"varint,7,opt,name=score,proto3" json:"score,omitempty"`
	BaseScore int32  `protobuf:"varint,8,opt,name=base_score,json=baseScore,proto3" json:"base_score,omitempty"`
	Cause     string `protobuf:"bytes,9,opt,name=cause,proto3" json:"cause,omitempty"`
	Created   int64  `protobuf:"varint,10,opt,name=created,proto3" json:"created,omitempty"`
}

func (m *Game) Reset()         { *m = Game{} }
func (m *Game) String() string { return proto.CompactTextString(m) }
func (*Game) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Point)(nil), "snake.Point")
	proto.RegisterType((*Adversary)(nil), "snake.Adversary")
	proto.RegisterType((*GameFrame)(nil), "snake.GameFrame")
	proto.RegisterType((*Game)(nil), "snake.Game")
}
