package pb

import (
	"testing"

	"github.com/battlesnakeio/arcade/rules"
	proto "github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *rules.Snapshot {
	return &rules.Snapshot{
		ID:     "game-1",
		Turn:   42,
		Width:  20,
		Height: 10,
		Snake:  []rules.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 0, Y: 0}},
		Food:   &rules.Cell{X: 0, Y: 9},
		Adversaries: []rules.Adversary{
			{Cell: rules.Cell{X: 19, Y: 0}, Direction: rules.DirectionLeft},
		},
		Direction: rules.DirectionUp,
		Interval:  50,
		BaseScore: 3,
		Score:     5,
	}
}

func TestGameFrame_Wire(t *testing.T) {
	s := testSnapshot()
	data, err := proto.Marshal(NewGameFrame(s))
	require.NoError(t, err)

	f := &GameFrame{}
	require.NoError(t, proto.Unmarshal(data, f))
	require.Equal(t, "game-1", f.ID)
	require.True(t, f.Head().Equals(&Point{X: 5, Y: 5}))
	// The zero cell is still a cell.
	require.Len(t, f.Snake, 3)
	require.Equal(t, s, f.Snapshot())
}

func TestGameFrame_GameOver(t *testing.T) {
	s := testSnapshot()
	s.Food = nil
	s.Adversaries = []rules.Adversary{}
	s.Over = true
	s.Cause = rules.DeathCauseBoardFull

	data, err := proto.Marshal(NewGameFrame(s))
	require.NoError(t, err)
	f := &GameFrame{}
	require.NoError(t, proto.Unmarshal(data, f))
	require.Nil(t, f.Food)
	require.Equal(t, s, f.Snapshot())
}

func TestGameFrame_Empty(t *testing.T) {
	f := &GameFrame{}
	require.Nil(t, f.Head())
	s := f.Snapshot()
	require.NotNil(t, s.Snake)
	require.NotNil(t, s.Adversaries)
	require.Nil(t, s.Food)
}

func TestListGameFramesRequest_NegativeOffset(t *testing.T) {
	data, err := proto.Marshal(&ListGameFramesRequest{ID: "game-1", Limit: 5, Offset: -2})
	require.NoError(t, err)
	req := &ListGameFramesRequest{}
	require.NoError(t, proto.Unmarshal(data, req))
	require.Equal(t, int32(-2), req.Offset)
}
