package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/hanoi/internal/cli"
	perrors "github.com/matzehuels/hanoi/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context) int {
	c := cli.New(os.Stderr, cli.LogInfo)
	err := c.RootCommand().ExecuteContext(ctx)

	status := perrors.ExitStatus(err)
	switch status {
	case perrors.ExitOK, perrors.ExitInterrupted:
	case perrors.ExitNoSolution:
		fmt.Fprintln(os.Stderr, "no solution:", perrors.UserMessage(err))
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := cli.Hint(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
	}
	return status
}
