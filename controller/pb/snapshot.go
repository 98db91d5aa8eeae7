package pb

import "github.com/battlesnakeio/arcade/rules"

// NewPoint converts a board cell.
func NewPoint(c rules.Cell) *Point {
	return &Point{X: int32(c.X), Y: int32(c.Y)}
}

// Cell converts the point back into a board cell.
func (m *Point) Cell() rules.Cell {
	return rules.Cell{X: int(m.X), Y: int(m.Y)}
}

// NewGameFrame converts a snapshot into its wire form.
func NewGameFrame(s *rules.Snapshot) *GameFrame {
	f := &GameFrame{
		ID:        s.ID,
		Turn:      int32(s.Turn),
		Width:     int32(s.Width),
		Height:    int32(s.Height),
		Direction: string(s.Direction),
		Interval:  int32(s.Interval),
		BaseScore: int32(s.BaseScore),
		Score:     int32(s.Score),
		Over:      s.Over,
		Cause:     s.Cause,
	}
	for _, c := range s.Snake {
		f.Snake = append(f.Snake, NewPoint(c))
	}
	if s.Food != nil {
		f.Food = NewPoint(*s.Food)
	}
	for _, a := range s.Adversaries {
		f.Adversaries = append(f.Adversaries, &Adversary{
			Point:     NewPoint(a.Cell),
			Direction: string(a.Direction),
		})
	}
	return f
}

// Snapshot converts the frame back into a snapshot. Empty lists come back
// empty rather than nil, the way the rules hand them out.
func (m *GameFrame) Snapshot() *rules.Snapshot {
	s := &rules.Snapshot{
		ID:          m.ID,
		Turn:        int(m.Turn),
		Width:       int(m.Width),
		Height:      int(m.Height),
		Snake:       make([]rules.Cell, 0, len(m.Snake)),
		Adversaries: make([]rules.Adversary, 0, len(m.Adversaries)),
		Direction:   rules.Direction(m.Direction),
		Interval:    int(m.Interval),
		BaseScore:   int(m.BaseScore),
		Score:       int(m.Score),
		Over:        m.Over,
		Cause:       m.Cause,
	}
	for _, p := range m.Snake {
		s.Snake = append(s.Snake, p.Cell())
	}
	if m.Food != nil {
		c := m.Food.Cell()
		s.Food = &c
	}
	for _, a := range m.Adversaries {
		adv := rules.Adversary{Direction: rules.Direction(a.Direction)}
		if a.Point != nil {
			adv.Cell = a.Point.Cell()
		}
		s.Adversaries = append(s.Adversaries, adv)
	}
	return s
}

// NewGameFrames converts a list of snapshots.
func NewGameFrames(frames []*rules.Snapshot) []*GameFrame {
	out := make([]*GameFrame, 0, len(frames))
	for _, f := range frames {
		out = append(out, NewGameFrame(f))
	}
	return out
}
