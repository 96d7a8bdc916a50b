package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pricegrip/internal/config"
	"pricegrip/internal/output"
)

func (a *app) newConfigCmd() *cobra.Command {
	var initFile, showPath bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Display the configuration after environment and flag overrides.

Examples:
  pricegrip config             # Print the configuration as TOML
  pricegrip config --path      # Show the config file path
  pricegrip config --init      # Write a default config file if none exists`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := a.printer()
			path := a.configSvc.Path()

			switch {
			case showPath:
				printer.Print("%s", path)
				return nil

			case initFile:
				if _, err := os.Stat(path); err == nil {
					printer.Info("Config file already exists: %s", path)
					return nil
				} else if !errors.Is(err, os.ErrNotExist) {
					return configError(err, path)
				}
				if err := a.configSvc.Save(config.DefaultConfig()); err != nil {
					return &output.CLIError{
						Summary:  "Cannot write config file",
						Detail:   err.Error(),
						ExitCode: output.ExitConfigError,
						Err:      err,
					}
				}
				printer.Success("Wrote %s", path)
				return nil
			}

			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				printer.Print("%s", printer.Dim("# "+path+" not found, showing defaults"))
			} else {
				printer.Print("%s", printer.Dim("# "+path))
			}
			_, err = fmt.Fprint(printer.Out(), string(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "write a default config file if missing")
	cmd.Flags().BoolVar(&showPath, "path", false, "show the config file path")
	return cmd
}
