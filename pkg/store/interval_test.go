package store

import "testing"

func TestNextInterval(t *testing.T) {
	cases := []struct {
		prior, delta, want int64
	}{
		{0, 0, 0},
		{0, 10, 10},   // bootstrap: first real delta is taken verbatim
		{10, 10, 10},  // steady state: (10*9+10)/10 = 10
		{10, 0, 10},   // repeated timestamp: unchanged
		{10, 20, 11},  // (10*9+20)/10 = 11
		{11, 40, 13},  // (11*9+40)/10 = 13.9 -> 13 (integer division)
	}
	for _, c := range cases {
		if got := nextInterval(c.prior, c.delta); got != c.want {
			t.Errorf("nextInterval(%d, %d) = %d, want %d", c.prior, c.delta, got, c.want)
		}
	}
}

func TestNextIntervalFixtureSequence(t *testing.T) {
	// Mirrors the worked example: creation at ts=10, then three updates ten
	// apart, four repeats at ts=40, then +20 and +40 deltas.
	var interval int64
	last := int64(10)

	step := func(ts int64) {
		delta := ts - last
		interval = nextInterval(interval, delta)
		last = ts
	}

	step(20)
	if interval != 10 {
		t.Fatalf("after ts=20, interval = %d, want 10", interval)
	}
	step(30)
	step(40)
	if interval != 10 {
		t.Fatalf("after ts=40, interval = %d, want 10", interval)
	}
	for i := 0; i < 4; i++ {
		step(40) // repeated timestamp: no-op
	}
	if interval != 10 {
		t.Fatalf("after repeats, interval = %d, want 10", interval)
	}
	step(60)
	if interval != 11 {
		t.Fatalf("after ts=60 (+20), interval = %d, want 11", interval)
	}
	step(100)
	if interval != 13 {
		t.Fatalf("after ts=100 (+40), interval = %d, want 13", interval)
	}
}
