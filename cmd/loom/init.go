package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/internal/errors"
)

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a loom.json in the current directory",
		Long: `Create a loom.json with default settings.

Examples:
  loom init
  loom init --name=my-site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")

	return cmd
}

func runInit(name string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	if config.Exists(wd) {
		return errors.New("E501").
			WithDetail("loom.json already exists in " + wd)
	}

	cfg := config.New()
	if name == "" {
		name = filepath.Base(wd)
	}
	cfg.Name = name

	if err := cfg.SaveTo(filepath.Join(wd, config.ConfigFileName)); err != nil {
		return err
	}

	success("created loom.json for %s", name)
	return nil
}
