package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "iso date", raw: "2026-09-15", want: "2026-09-15", ok: true},
		{name: "iso datetime with Z", raw: "2026-09-15T10:30:00Z", want: "2026-09-15", ok: true},
		{name: "iso datetime without Z", raw: "2026-09-15T10:30:00", want: "2026-09-15", ok: true},
		{name: "us slash format", raw: "09/15/2026", want: "2026-09-15", ok: true},
		{name: "long month name", raw: "September 15, 2026", want: "2026-09-15", ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "garbage", raw: "not a date", ok: false},
		{name: "partial", raw: "2026-09", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	t.Run("future date", func(t *testing.T) {
		d := DaysUntil("2026-09-10", now)
		require.NotNil(t, d)
		assert.Equal(t, 10, *d)
	})

	t.Run("past date is negative", func(t *testing.T) {
		d := DaysUntil("2026-08-21", now)
		require.NotNil(t, d)
		assert.Equal(t, -10, *d)
	})

	t.Run("same day", func(t *testing.T) {
		d := DaysUntil("2026-08-31", now)
		require.NotNil(t, d)
		assert.Equal(t, 0, *d)
	})

	t.Run("unparsable is nil", func(t *testing.T) {
		assert.Nil(t, DaysUntil("soon", now))
	})

	t.Run("absent is nil", func(t *testing.T) {
		assert.Nil(t, DaysUntil("", now))
	})
}
