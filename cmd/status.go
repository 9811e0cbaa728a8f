package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/user/vaultdir/internal/posture"
)

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the directory posture and per-file state",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"r"},
				Usage:   "Recursively inspect files in subdirectories",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}

			report, err := posture.Inspect(cwd, cmd.Bool("recursive"))
			if err != nil {
				return err
			}

			fmt.Printf("posture: %s\n", report.Posture())

			if len(report.Encrypted) == 0 && len(report.Plaintext) == 0 {
				fmt.Println("no candidate files")
				return nil
			}

			hidden := make(map[string]bool, len(report.Hidden))
			for _, rel := range report.Hidden {
				hidden[rel] = true
			}

			for _, rel := range report.Encrypted {
				fmt.Printf("%-12s%s\n", "encrypted", filepath.FromSlash(rel))
			}
			for _, rel := range report.Plaintext {
				state := "plaintext"
				if hidden[rel] {
					state = "hidden"
				}
				fmt.Printf("%-12s%s\n", state, filepath.FromSlash(rel))
			}
			return nil
		},
	}
}
