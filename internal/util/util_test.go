package util

import (
	"regexp"
	"testing"
	"time"
)

func TestNewOrderNumber(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 1, 9, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^ORD-20250801-[0-9A-F]{6}$`)

	first := NewOrderNumber(now)
	second := NewOrderNumber(now)

	if !pattern.MatchString(first) {
		t.Fatalf("NewOrderNumber() = %s, want match for %s", first, pattern)
	}
	if first == second {
		t.Fatalf("NewOrderNumber() returned %s twice", first)
	}
}

func TestPtr(t *testing.T) {
	t.Parallel()

	p := Ptr(3)
	if p == nil || *p != 3 {
		t.Fatalf("Ptr(3) = %v", p)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "days and hours", duration: 7*24*time.Hour + 3*time.Hour, expected: "7d3h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
