package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"specbar/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	device := flag.String("device", "", "override serial device (optional)")
	fps := flag.Int("fps", 0, "frames per second (optional, defaults to 40)")
	demo := flag.Bool("demo", false, "start in demo mode regardless of config")
	live := flag.Bool("live", false, "start in live serial mode regardless of config")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Device:     *device,
		FPS:        *fps,
		Demo:       *demo,
		Live:       *live,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "specbar: %v\n", err)
		return 1
	}
	return 0
}
