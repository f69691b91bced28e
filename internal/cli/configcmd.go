package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/pagedots/internal/config"
	"github.com/rileyhilliard/pagedots/internal/errors"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print the configuration pagedots would use, as YAML: the config file
found from the current directory (or --config) merged over the defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout(), cfgFile)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting in the config file",
	Long: `Change one setting in the config file, keeping its comments and layout.
Nested keys are dotted and lists are comma-separated.

Examples:
  pagedots config set pages 8
  pagedots config set fill_durations 1s,2s
  pagedots config set colors.current "#ff8800"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfigValue(cmd.OutOrStdout(), cfgFile, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}

func showConfig(w io.Writer, explicit string) error {
	cfg, path, err := config.LoadOrDefault(explicit)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}

	if path == "" {
		fmt.Fprintln(w, "# no config file found, showing defaults")
	} else {
		fmt.Fprintf(w, "# %s\n", path)
	}
	_, err = w.Write(data)
	if err != nil {
		return errors.Wrap(err, "Failed to write config")
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(w)
		return err
	}
	return nil
}

func setConfigValue(w io.Writer, explicit, key, value string) error {
	path, err := config.Find(explicit)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"No config file to change",
			"Run 'pagedots init' to create one")
	}

	if err := config.SetValue(path, key, value); err != nil {
		return err
	}

	fmt.Fprintf(w, "Set %s = %s in %s\n", key, value, path)
	return nil
}
