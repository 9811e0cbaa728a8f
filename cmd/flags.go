package cmd

import (
	"github.com/urfave/cli/v3"

	"github.com/user/vaultdir/internal/core"
)

// batchFlags are shared by every command that runs a batch over the
// working directory.
func batchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "preview",
			Aliases: []string{"p"},
			Usage:   "Preview the actions to be taken without making any changes",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Print each file as it is processed",
		},
		&cli.BoolFlag{
			Name:    "recursive",
			Aliases: []string{"r"},
			Usage:   "Recursively process files in subdirectories",
		},
		&cli.StringSliceFlag{
			Name:    "include-filetypes",
			Aliases: []string{"i"},
			Usage:   "Only process files with the given extensions (e.g. .yml, .md)",
		},
	}
}

func batchOptions(cmd *cli.Command) core.Options {
	return core.Options{
		Preview:   cmd.Bool("preview"),
		Verbose:   cmd.Bool("verbose"),
		Recursive: cmd.Bool("recursive"),
		FileTypes: cmd.StringSlice("include-filetypes"),
	}
}
