package main

import (
	"testing"
	"time"
)

func TestParseStart(t *testing.T) {
	now := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)

	got, err := parseStart("14:05:30", now)
	if err != nil {
		t.Fatalf("parseStart() error: %v", err)
	}
	want := time.Date(2026, time.March, 3, 14, 5, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseStart() = %v, expected %v", got, want)
	}

	if got, _ := parseStart("", now); !got.Equal(now) {
		t.Errorf("empty start = %v, expected now", got)
	}

	for _, bad := range []string{"14:05", "25:00:00", "noon"} {
		if _, err := parseStart(bad, now); err == nil {
			t.Errorf("parseStart(%q) should fail", bad)
		}
	}
}

func TestSteppingClock(t *testing.T) {
	base := time.Date(2026, time.January, 1, 23, 59, 59, 0, time.UTC)
	c := &steppingClock{base: base}

	first := c.Now()
	if first.Hour != 23 || first.Minute != 59 || first.Second != 59 {
		t.Errorf("first = %+v", first)
	}
	second := c.Now()
	if second.Hour != 0 || second.Minute != 0 || second.Second != 0 || second.YearDay != 2 {
		t.Errorf("second = %+v, expected midnight on day 2", second)
	}
}
