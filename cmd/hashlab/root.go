package main

import (
	"context"

	"hashlab/cmd/hashlab/attacks"
	"hashlab/cmd/hashlab/hash"
	"hashlab/cmd/hashlab/server"
	"hashlab/pkg/logger"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Execute() error {
	var verbose bool

	var rootCmd = &cobra.Command{
		Use:   "hashlab",
		Short: "Password hashing and cracking demo backend",
		Long:  `hashlab hashes passwords, designs mutation rule sets and simulates cracking runs against the stored hash`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			log.SetLevel(level)
			logger.SetLevel(level)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(server.NewServerCommand())
	rootCmd.AddCommand(hash.NewHashCommand())
	rootCmd.AddCommand(attacks.NewListAttacksCommand())
	return rootCmd.ExecuteContext(context.Background())
}
