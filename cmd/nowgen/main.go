package main

import (
	"context"
	"fmt"
	"os"

	"github.com/TFMV/nowgen/cli"
	"github.com/TFMV/nowgen/config"
	"github.com/TFMV/nowgen/pkg/errors"
)

func main() {
	logger, err := config.NewLogger(&config.LoadDefaultConfig().Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	ctx := cli.WithLogger(context.Background(), logger)

	if err := cli.ExecuteWithContext(ctx); err != nil {
		logger.Error().Str("code", errors.GetCode(err)).Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
