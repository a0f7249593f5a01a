package entity

import "torus-snake/game/types"

// Snake is the body sequence, head first, plus its committed and pending directions.
type Snake struct {
	Body      []types.Point
	Direction types.Direction // committed by the last step
	Pending   types.Direction // requested for the next step
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
		Pending:   dir,
	}
}

// Move inserts a new head at the front of the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last segment and returns it.
func (s *Snake) RemoveTail() (types.Point, bool) {
	if len(s.Body) == 0 {
		return types.Point{}, false
	}
	tail := s.Body[len(s.Body)-1]
	s.Body = s.Body[:len(s.Body)-1]
	return tail, true
}

// Grow re-appends a segment at the tail end.
func (s *Snake) Grow(tail types.Point) {
	s.Body = append(s.Body, tail)
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection records the requested direction; invalid values are ignored.
func (s *Snake) SetDirection(dir types.Direction) {
	if !dir.Valid() {
		return
	}
	s.Pending = dir
}

// Commit applies the pending direction unless it would reverse the snake into its neck.
func (s *Snake) Commit() types.Direction {
	if s.Pending.Valid() && !(s.Pending == s.Direction.Opposite() && len(s.Body) > 1) {
		s.Direction = s.Pending
	}
	return s.Direction
}
