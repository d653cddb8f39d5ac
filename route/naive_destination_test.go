package route

import "testing"

func TestNaiveDestinationSides(t *testing.T) {
	target := Target{X: 10, Z: 10, Width: 2, Length: 2}

	cases := []struct {
		name       string
		srcX, srcZ int
		want       Point
	}{
		{"east", 20, 10, Point{X: 12, Z: 10}},
		{"west", 0, 10, Point{X: 9, Z: 10}},
		{"north", 10, 20, Point{X: 10, Z: 12}},
		{"south", 10, 0, Point{X: 10, Z: 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NaiveDestination(tc.srcX, tc.srcZ, target)
			if got != tc.want {
				t.Fatalf("NaiveDestination(%d,%d) = %v, want %v", tc.srcX, tc.srcZ, got, tc.want)
			}
		})
	}
}

func TestNaiveDestinationClampsAlongSide(t *testing.T) {
	target := Target{X: 10, Z: 10, Width: 4, Length: 1}
	// Approaching from due north but offset east of the footprint: the
	// contact point clamps to the footprint's east edge.
	got := NaiveDestination(20, 20, target)
	if got.Z != 11 {
		t.Fatalf("expected the contact tile one past the north edge, got %v", got)
	}
	if got.X < 10 || got.X > 13 {
		t.Fatalf("expected the contact tile clamped within the footprint's X span, got %v", got)
	}
}
