package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmeister/py-github/internal/infra/config"
)

func initCmd(a *app) *cobra.Command {
	var dir string
	var toml bool
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .ghxml.yaml (or .ghxml.toml) config file",
		Args:  cobra.NoArgs,
		// Runs before any config exists.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = a.opts.workDir
			}
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}

			format := "yaml"
			if toml {
				format = "toml"
			}
			path, err := config.Init(dir, format, force)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}

	c.Flags().StringVarP(&dir, "dir", "d", "", "directory to write into (default: current directory)")
	c.Flags().BoolVar(&toml, "toml", false, "write TOML instead of YAML")
	c.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return c
}
