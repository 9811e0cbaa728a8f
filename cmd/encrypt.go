package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/user/vaultdir/internal/core"
)

func encryptCmd() *cli.Command {
	return &cli.Command{
		Name:  "encrypt",
		Usage: "Encrypt every candidate file and write the ignore file",
		Flags: batchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			session := core.NewSession(cwd, os.Stdout)
			return session.Encrypt(ctx, batchOptions(cmd))
		},
	}
}
