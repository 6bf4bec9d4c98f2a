package operations

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"umbreldev/internal/constants"
	"umbreldev/internal/vagrant"
)

// LogStreamer streams compose logs from inside the VM, reconnecting forever
// when the stream drops. Cancellation of the context is the only clean exit.
type LogStreamer struct {
	VM VMClient

	// RetryDelay is the pause between reconnection attempts; defaults to
	// constants.LogsRetryDelay
	RetryDelay time.Duration

	// Out receives the timestamped retry notices; defaults to os.Stderr
	Out io.Writer
}

// Stream runs the retry loop until ctx is cancelled
func (s *LogStreamer) Stream(ctx context.Context) error {
	delay := s.RetryDelay
	if delay <= 0 {
		delay = constants.LogsRetryDelay
	}
	out := s.Out
	if out == nil {
		out = os.Stderr
	}

	for {
		err := s.VM.Exec(ctx, vagrant.ExecRequest{
			Dir:  constants.VMProjectDir,
			Argv: logsCommand(),
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}

		// The stream ends on VM connectivity loss as well as on real
		// failures; both get the same unconditional retry.
		if err != nil {
			fmt.Fprintf(out, "[%s] log stream ended (%v), retrying in %s\n", time.Now().Format(time.RFC3339), err, delay)
		} else {
			fmt.Fprintf(out, "[%s] log stream ended, retrying in %s\n", time.Now().Format(time.RFC3339), delay)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}
