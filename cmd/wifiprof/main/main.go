package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/wifiprof/cmd/wifiprof"
	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := wifiprof.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		msg := "Error: " + errors.UserMessage(err)
		if style.IsRich(os.Stderr) {
			msg = style.ErrorStyle.Render(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
