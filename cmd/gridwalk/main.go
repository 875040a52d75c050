// Command gridwalk lists every route from a robot to a treasure on a grid
// under a cap on consecutive moves in one direction.
//
// Usage:
//
//	gridwalk [flags] max_distance robot_x robot_y treasure_x treasure_y
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/gridwalk/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr, env)
	stop()

	os.Exit(code)
}
