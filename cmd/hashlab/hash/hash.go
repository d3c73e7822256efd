package hash

import (
	"errors"
	"fmt"
	"io"

	"hashlab/internal/dao"
	"hashlab/internal/services"
	"hashlab/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type HashOpts struct {
	Save    bool
	Current bool
	DataDir string
}

// NewHashCommand prints the SHA-256 digest of a password. With --save the
// digest replaces the stored hash in the data directory, exactly as
// POST /generate-hash does.
func NewHashCommand() *cobra.Command {
	opts := &HashOpts{}

	hashCmd := &cobra.Command{
		Use:   "hash [password]",
		Short: "Print the SHA-256 digest of a password",
		Long:  `Print the lowercase hex SHA-256 digest of a password, optionally storing it as the current hash`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			hashService := services.NewHashService(dao.NewFileArtifactDAO(opts.DataDir))
			return run(cmd.OutOrStdout(), hashService, opts, args)
		},
	}

	hashCmd.Flags().BoolVarP(&opts.Save, "save", "s", false, "Store the digest as the current hash")
	hashCmd.Flags().BoolVar(&opts.Current, "current", false, "Print the currently stored hash")
	hashCmd.Flags().StringVarP(&opts.DataDir, "data-dir", "d", ".", "Directory holding the artifact files")

	return hashCmd
}

func run(out io.Writer, hashService services.HashServiceMethods, opts *HashOpts, args []string) error {
	label := color.New(color.FgHiYellow)
	value := color.New(color.FgGreen, color.Bold)

	if opts.Current {
		current, err := hashService.CurrentHash()
		if err != nil {
			return fmt.Errorf("read stored hash: %w", err)
		}
		if current == "" {
			fmt.Fprintln(out, label.Sprint("No hash stored yet"))
			return nil
		}
		fmt.Fprintf(out, "%s %s\n", label.Sprint("stored:"), value.Sprint(current))
		return nil
	}

	if len(args) == 0 || args[0] == "" {
		return errors.New(services.ErrMsgPasswordEmpty)
	}

	digest := services.Digest(args[0])
	if opts.Save {
		stored, err := hashService.GenerateHash(args[0])
		if err != nil {
			return fmt.Errorf("store hash: %w", err)
		}
		logger.Infof("Stored hash in %s", opts.DataDir)
		digest = stored
	}

	fmt.Fprintf(out, "%s %s\n", label.Sprint("sha256:"), value.Sprint(digest))
	if opts.Save {
		fmt.Fprintln(out, color.GreenString("saved as current hash"))
	}
	return nil
}
