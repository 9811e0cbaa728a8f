package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/user/vaultdir/internal/core"
)

func closeCmd() *cli.Command {
	return &cli.Command{
		Name:  "close",
		Usage: "Remove every plaintext candidate, leaving only encrypted files",
		Flags: batchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			session := core.NewSession(cwd, os.Stdout)
			return session.Close(ctx, batchOptions(cmd))
		},
	}
}
