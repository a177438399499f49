package dashboard

import (
	"context"
	"fmt"
	"time"
)

// FormatCountdown renders the time left until deadline as HH:MM:SS.
// A reached or passed deadline renders as "ended".
func FormatCountdown(now, deadline time.Time) string {
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return "ended"
	}

	total := int(remaining.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Countdown emits the remaining time once per second until the deadline
// passes or ctx is cancelled. The channel closes after "ended" is sent.
func Countdown(ctx context.Context, deadline time.Time) <-chan string {
	out := make(chan string, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			value := FormatCountdown(time.Now(), deadline)
			select {
			case out <- value:
			case <-ctx.Done():
				return
			}
			if value == "ended" {
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
