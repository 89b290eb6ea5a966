package utils

import (
	"testing"
	"time"
)

func TestTimeUntilText(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		until time.Time
		want  string
	}{
		{"minutes and seconds", now.Add(19*time.Minute + 42*time.Second), "19 minute and 42 second"},
		{"includes hours", now.Add(2*time.Hour + 5*time.Minute + 1*time.Second), "2 hour, 5 minute and 1 second"},
		{"exactly zero", now, "0 minute and 0 second"},
		{"past clamps to zero", now.Add(-time.Minute), "0 minute and 0 second"},
		{"whole minutes", now.Add(20 * time.Minute), "20 minute and 0 second"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeUntilText(now, tc.until); got != tc.want {
				t.Errorf("TimeUntilText() = %q, want %q", got, tc.want)
			}
		})
	}
}
