package types

import "testing"

func TestWrap(t *testing.T) {
	for _, n := range []int{2, 3, 5, 21} {
		up := Point{X: 0, Y: 0}.Wrap(Up.ToPoint(), n)
		if up != (Point{X: 0, Y: n - 1}) {
			t.Errorf("n=%d: up from y=0 gave %v", n, up)
		}
		right := Point{X: n - 1, Y: 0}.Wrap(Right.ToPoint(), n)
		if right != (Point{X: 0, Y: 0}) {
			t.Errorf("n=%d: right from x=n-1 gave %v", n, right)
		}
		left := Point{X: 0, Y: 1}.Wrap(Left.ToPoint(), n)
		if left != (Point{X: n - 1, Y: 1}) {
			t.Errorf("n=%d: left from x=0 gave %v", n, left)
		}
		down := Point{X: 1, Y: n - 1}.Wrap(Down.ToPoint(), n)
		if down != (Point{X: 1, Y: 0}) {
			t.Errorf("n=%d: down from y=n-1 gave %v", n, down)
		}
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite is %v", d, d.Opposite().Opposite())
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("%v: left then right is %v", d, d.TurnLeft().TurnRight())
		}
		if d.TurnRight().TurnRight() != d.Opposite() {
			t.Errorf("%v: two right turns should reverse", d)
		}
		v, o := d.ToPoint(), d.Opposite().ToPoint()
		if v.X != -o.X || v.Y != -o.Y {
			t.Errorf("%v: opposite vector mismatch %v vs %v", d, v, o)
		}
	}
	if None.Valid() || Direction(9).Valid() {
		t.Error("None and out-of-range directions must be invalid")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", Up, false},
		{"DOWN", Down, false},
		{" Left ", Left, false},
		{"right", Right, false},
		{"north", None, true},
		{"", None, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
