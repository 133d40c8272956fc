package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the preview server",
		Long: `Start the preview server for the current project.

The server renders the project page at "/", exposes Prometheus
metrics at "/metrics", and pushes snapshot frames to browsers
attached at "/ws".

Examples:
  loom preview
  loom preview --port=8080
  loom preview --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from loom.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from loom.json)")

	return cmd
}

func runPreview(port int, host string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}

	printBanner()
	fmt.Println("  preview")
	fmt.Println()

	srv, err := preview.New(&preview.Config{
		Address: cfg.PreviewAddress(),
		Owner:   projectOwner{},
		Source:  projectSource(cfg),
		Title:   cfg.Preview.Title,
		Pretty:  cfg.Preview.Pretty,
	})
	if err != nil {
		return err
	}

	info("serving http://%s", cfg.PreviewAddress())
	return srv.Run()
}
