package cmd

import "github.com/urfave/cli/v3"

// NewApp creates the root vaultdir CLI command with all subcommands.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "vaultdir",
		Usage: "Encrypt and decrypt directory contents with Ansible Vault",
		Commands: []*cli.Command{
			encryptCmd(),
			decryptCmd(),
			temporaryCmd(),
			closeCmd(),
			statusCmd(),
		},
	}
}
