package timeutil

import (
	"testing"
	"time"
)

func TestClock12(t *testing.T) {
	tests := map[string]string{
		"09:00": "9:00 AM",
		"14:30": "2:30 PM",
		"00:05": "12:05 AM",
		"23:59": "11:59 PM",
		"9am":   "9am", // unparseable passes through
	}
	for in, want := range tests {
		if got := Clock12(in); got != want {
			t.Errorf("Clock12(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLongDate(t *testing.T) {
	if got := LongDate("2026-09-01"); got != "Tue, Sep 1" {
		t.Fatalf("LongDate = %q", got)
	}
	if got := LongDate("tomorrow"); got != "tomorrow" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}

func TestDaysIn(t *testing.T) {
	tests := map[string]int{
		"2026-09-15": 30,
		"2026-02-01": 28,
		"2028-02-01": 29, // leap year
		"2026-12-31": 31,
	}
	for in, want := range tests {
		then, err := ParseDate(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got := DaysIn(then); got != want {
			t.Errorf("DaysIn(%s) = %d, want %d", in, got, want)
		}
	}
}

func TestStartDay(t *testing.T) {
	then, err := ParseDate("2026-09-15")
	if err != nil {
		t.Fatal(err)
	}
	// September 2026 starts on a Tuesday.
	if got := StartDay(then); got != time.Tuesday {
		t.Fatalf("StartDay = %v", got)
	}
}

func TestClock(t *testing.T) {
	tests := map[int]string{
		1500: "25:00",
		61:   "01:01",
		0:    "00:00",
		-5:   "00:00",
	}
	for in, want := range tests {
		if got := Clock(in); got != want {
			t.Errorf("Clock(%d) = %q, want %q", in, got, want)
		}
	}
}
