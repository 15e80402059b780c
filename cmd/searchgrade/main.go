// Command searchgrade grades search-assignment submissions declared in a
// roster manifest.
//
//	searchgrade grade roster.yaml
//	searchgrade watch roster.hcl
//	searchgrade methods
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "searchgrade:", err)
		stop()
		os.Exit(1)
	}
}
