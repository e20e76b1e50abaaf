package flashsale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want Countdown
	}{
		{"two hours out", now.Add(2 * time.Hour), Countdown{2, 0, 0}},
		{"mixed units", now.Add(3*time.Hour + 25*time.Minute + 9*time.Second), Countdown{3, 25, 9}},
		{"sub-second truncates", now.Add(1500 * time.Millisecond), Countdown{0, 0, 1}},
		{"exactly now", now, Countdown{0, 0, 0}},
		{"already expired", now.Add(-time.Second), Countdown{0, 0, 0}},
		{"long expired", now.Add(-48 * time.Hour), Countdown{0, 0, 0}},
		{"over a day stays in hours", now.Add(30 * time.Hour), Countdown{30, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remaining(now, tt.end))
		})
	}
}

func TestSoldPercent(t *testing.T) {
	tests := []struct {
		name  string
		sold  int
		total int
		want  int
	}{
		{"zero sold", 0, 100, 0},
		{"half", 50, 100, 50},
		{"rounds", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"full", 100, 100, 100},
		{"oversold clamps", 150, 100, 100},
		{"zero total", 10, 0, 0},
		{"negative sold", -5, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SoldPercent(tt.sold, tt.total))
		})
	}
}

func TestLive(t *testing.T) {
	now := time.Now()
	sale := FlashSale{IsActive: true, EndTime: now.Add(time.Hour)}
	assert.True(t, sale.Live(now))

	sale.IsActive = false
	assert.False(t, sale.Live(now))

	sale.IsActive = true
	sale.EndTime = now.Add(-time.Minute)
	assert.False(t, sale.Live(now))
}
