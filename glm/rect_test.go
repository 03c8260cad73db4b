package glm

import "testing"

func TestRectContains(t *testing.T) {
	rect := RectOf(1920, 0, 1280, 1024)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{1920, 0, true},
		{2000, 100, true},
		{3199, 1023, true},
		{3200, 100, false},
		{2000, 1024, false},
		{1919, 100, false},
		{2000, -1, false},
	}

	for _, tc := range tests {
		if actual := rect.Contains(tc.x, tc.y); actual != tc.expected {
			t.Errorf("Contains(%d, %d): expected %v, got %v", tc.x, tc.y, tc.expected, actual)
		}
	}
}
