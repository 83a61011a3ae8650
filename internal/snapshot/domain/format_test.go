package domain

import (
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name    string
		seconds uint64
		want    string
	}{
		{
			name:    "zero seconds",
			seconds: 0,
			want:    "0 days, 00 hrs, 00 mins, 00 secs",
		},
		{
			name:    "one of each unit",
			seconds: 90061,
			want:    "1 days, 01 hrs, 01 mins, 01 secs",
		},
		{
			name:    "under one minute",
			seconds: 59,
			want:    "0 days, 00 hrs, 00 mins, 59 secs",
		},
		{
			name:    "several days",
			seconds: 309659,
			want:    "3 days, 14 hrs, 00 mins, 59 secs",
		},
		{
			name:    "exactly one day",
			seconds: 86400,
			want:    "1 days, 00 hrs, 00 mins, 00 secs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUptime(tt.seconds)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatProcessUptime(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{
			name: "one of each unit drops seconds",
			age:  90061 * time.Second,
			want: "1 days, 01 hrs, 01 mins",
		},
		{
			name: "just started",
			age:  0,
			want: "0 days, 00 hrs, 00 mins",
		},
		{
			name: "clock skew clamps to zero",
			age:  -5 * time.Second,
			want: "0 days, 00 hrs, 00 mins",
		},
		{
			name: "over a day",
			age:  26 * time.Hour,
			want: "1 days, 02 hrs, 00 mins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatProcessUptime(tt.age)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want1 float64
		want2 float64
	}{
		{
			name:  "rounds up",
			value: 42.345,
			want1: 42.3,
			want2: 42.35,
		},
		{
			name:  "rounds down",
			value: 1.2349,
			want1: 1.2,
			want2: 1.23,
		},
		{
			name:  "integral value",
			value: 7,
			want1: 7,
			want2: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round1(tt.value); got != tt.want1 {
				t.Errorf("Round1: expected %v, got %v", tt.want1, got)
			}
			if got := Round2(tt.value); got != tt.want2 {
				t.Errorf("Round2: expected %v, got %v", tt.want2, got)
			}
		})
	}
}

func TestBytesToGiB(t *testing.T) {
	if got := BytesToGiB(1 << 30); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
	if got := BytesToGiB(0); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := Round2(BytesToGiB(8 * 1024 * 1024 * 1024)); got != 8 {
		t.Errorf("expected 8, got %v", got)
	}
}
