package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/user/vaultdir/internal/core"
)

func decryptCmd() *cli.Command {
	return &cli.Command{
		Name:  "decrypt",
		Usage: "Decrypt every candidate file and remove the ignore file",
		Flags: batchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			session := core.NewSession(cwd, os.Stdout)
			return session.Decrypt(ctx, batchOptions(cmd))
		},
	}
}
