package attacks

import (
	"fmt"
	"io"

	"hashlab/internal/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewListAttacksCommand lists the attack profiles offered by the web page.
func NewListAttacksCommand() *cobra.Command {
	var configPath string

	listAttacksCmd := &cobra.Command{
		Use:   "attacks",
		Short: "List available attack profiles",
		Long:  `List the attack profiles loaded from the attack config directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			listProfiles(cmd.OutOrStdout(), services.NewConfigService(configPath))
			return nil
		},
	}

	listAttacksCmd.Flags().StringVar(&configPath, "config", "./config/attacks", "Attack profile directory path")

	return listAttacksCmd
}

func listProfiles(out io.Writer, configService services.ConfigServiceMethods) {
	profiles := configService.GetAttackProfiles()

	fmt.Fprintln(out, color.New(color.Bold).Sprint("Available Attacks:"))
	fmt.Fprintln(out, "==================")

	for _, profile := range profiles {
		fmt.Fprintf(out, "\n• %s\n", color.HiYellowString(profile.Name))
		fmt.Fprintf(out, "  Hash mode: %d\n", profile.HashMode)
		if profile.Description != "" {
			fmt.Fprintf(out, "  Description: %s\n", profile.Description)
		}
	}
}
