package feed

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/goburrow/serial"

	"specbar/internal/state"
)

// readTimeout bounds each port read so the loop notices context
// cancellation promptly.
const readTimeout = 250 * time.Millisecond

// Open opens the serial device the analyzer firmware transmits on.
// 8N1 framing; only device and baud rate vary.
func Open(device string, baud int) (serial.Port, error) {
	return serial.Open(&serial.Config{
		Address:  device,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  readTimeout,
	})
}

// Run reads the port until the context is cancelled, feeding bytes
// through the reassembler and publishing every complete frame. Read
// timeouts are the idle path, not errors; anything else is logged and
// retried, matching the recoverable-error policy of the rest of the
// app. The port is closed on return.
func Run(ctx context.Context, port io.ReadCloser, store *state.Store) error {
	defer func() { _ = port.Close() }()

	var asm Reassembler
	chunk := make([]byte, 64)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := port.Read(chunk)
		if err != nil {
			if errors.Is(err, serial.ErrTimeout) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("serial read failed: %v", err)
			continue
		}

		for _, b := range chunk[:n] {
			if f, ok := asm.Feed(b); ok {
				store.Publish(f)
			}
		}
	}
}

// Start launches Run on its own goroutine. It returns immediately;
// the goroutine exits when ctx is cancelled.
func Start(ctx context.Context, port io.ReadCloser, store *state.Store) {
	go func() {
		if err := Run(ctx, port, store); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("serial feed stopped: %v", err)
		}
	}()
}
