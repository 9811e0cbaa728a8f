package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/user/vaultdir/internal/core"
)

func temporaryCmd() *cli.Command {
	return &cli.Command{
		Name:    "temporary",
		Aliases: []string{"open"},
		Usage:   "Temporarily decrypt files, then re-encrypt after pressing Enter",
		Flags:   batchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			session := core.NewSession(cwd, os.Stdout)
			return session.Temporary(ctx, batchOptions(cmd))
		},
	}
}
