package service

import (
	"testing"
	"time"
)

func TestIsStrictlyFuture(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		scheduledAt time.Time
		want        bool
	}{
		{"one hour ahead", now.Add(time.Hour), true},
		{"one second ahead", now.Add(time.Second), true},
		{"exactly now", now, false},
		{"in the past", now.Add(-time.Minute), false},
	}

	for _, tc := range cases {
		if got := isStrictlyFuture(tc.scheduledAt, now); got != tc.want {
			t.Errorf("%s: isStrictlyFuture = %v, want %v", tc.name, got, tc.want)
		}
	}
}
