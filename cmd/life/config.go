package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
)

var (
	flagConfigInit  bool
	flagConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default configuration",
	Long: `Print the built-in configuration as YAML. With --init, write it to
~/.life/configs/life.yaml so it can be edited.

Examples:
  life config > my-life.yaml
  life config --init
  life config --init --force   # overwrite an existing file`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the defaults to the user config file")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing user config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigInit {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	path := config.UserPath()
	if path == "" {
		return errors.New("cannot determine home directory")
	}
	return writeDefaultConfig(path, flagConfigForce)
}

// writeDefaultConfig installs the embedded defaults at path.
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
