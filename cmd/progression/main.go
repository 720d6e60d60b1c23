// Package main is the collaborator CLI for the progression engine
package main

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

func main() {
	if err := newCLI().execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode reports failures with the gRPC code of the engine error so
// scripts can tell a missing character from a busy one
func exitCode(err error) int {
	st, _ := status.FromError(errors.ToGRPCError(err))
	return int(st.Code())
}
