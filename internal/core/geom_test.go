package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        SquareBox(0, 0, 10),
			b:        SquareBox(5, 5, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        SquareBox(0, 0, 10),
			b:        SquareBox(20, 0, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        SquareBox(0, 0, 10),
			b:        SquareBox(0, 20, 10),
			expected: false,
		},
		{
			name:     "edges touch horizontally",
			a:        SquareBox(0, 0, 10),
			b:        SquareBox(10, 0, 10),
			expected: false,
		},
		{
			name:     "edges touch vertically",
			a:        SquareBox(0, 0, 10),
			b:        SquareBox(0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        SquareBox(0, 0, 40),
			b:        SquareBox(3, 3, 4),
			expected: true,
		},
		{
			name:     "overlap on x only",
			a:        Box{X: 0, Y: 0, W: 20, H: 4},
			b:        Box{X: 5, Y: 30, W: 20, H: 4},
			expected: false,
		},
		{
			name:     "barely overlapping",
			a:        SquareBox(0, 0, 10),
			b:        SquareBox(9.99, 9.99, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 100, Y: 50, W: 40, H: 20}

	if b.Left() != 80 || b.Right() != 120 {
		t.Errorf("horizontal edges = (%v, %v), expected (80, 120)", b.Left(), b.Right())
	}
	if b.Top() != 40 || b.Bottom() != 60 {
		t.Errorf("vertical edges = (%v, %v), expected (40, 60)", b.Top(), b.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestProjection(t *testing.T) {
	vp := Viewport{W: 800, H: 600}
	p := NewProjection(vp, 80, 30, 1)

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 1},
		{"center", 400, 300, 40, 16},
		{"bottom-right inside", 799, 599, 79, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := p.Cell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("Cell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestProjectionCellRectMinimumSize(t *testing.T) {
	p := NewProjection(Viewport{W: 800, H: 600}, 80, 30, 0)

	r := p.CellRect(SquareBox(400, 300, 2))
	if r.W < 1 || r.H < 1 {
		t.Errorf("tiny box projected to %dx%d, expected at least 1x1", r.W, r.H)
	}

	r = p.CellRect(SquareBox(400, 300, 80))
	if r.W != 8 || r.H != 4 {
		t.Errorf("80px box projected to %dx%d, expected 8x4", r.W, r.H)
	}
}

func TestProjectionZeroViewport(t *testing.T) {
	p := NewProjection(Viewport{}, 80, 24, 0)
	cx, cy := p.Cell(100, 100)
	if cx != 0 || cy != 0 {
		t.Errorf("zero viewport should collapse to origin, got (%d, %d)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
}
