package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/export"
)

func exportCmd() *cobra.Command {
	var (
		output    string
		publish   bool
		snapshots bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the project to static HTML",
		Long: `Export the project's routes to static HTML files.

With --publish and an export.s3 target in loom.json, the output
directory is uploaded to S3 after the export.

Examples:
  loom export
  loom export --output=public
  loom export --publish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output, publish, snapshots)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from loom.json)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Upload the export to the configured S3 bucket")
	cmd.Flags().BoolVar(&snapshots, "snapshots", false, "Write snapshot frames next to each page")

	return cmd
}

func runExport(output string, publish, snapshots bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if output != "" {
		cfg.Export.Output = output
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := export.New(export.Config{
		Owner:     projectOwner{},
		Pretty:    cfg.Export.Pretty,
		Snapshots: snapshots,
	})

	outDir := cfg.OutputPath()
	result, err := e.Export(ctx, outDir, []export.Page{
		{Route: "/", Title: cfg.Name, Source: projectSource(cfg)},
	})
	if err != nil {
		return err
	}

	files := 0
	for _, fs := range result.Files {
		files += len(fs)
	}
	success("exported %d files to %s", files, outDir)

	if !publish {
		return nil
	}
	if !cfg.HasPublish() {
		return errors.New("E541").
			WithDetail("no export.s3 target in loom.json").
			WithSuggestion("Set export.s3.bucket and export.s3.region, or drop --publish")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Export.S3.Region))
	if err != nil {
		return errors.New("E541").Wrap(err)
	}

	pub := export.NewS3Publisher(s3.NewFromConfig(awsCfg), cfg.Export.S3.Bucket, cfg.Export.S3.Prefix)
	keys, err := pub.PublishDir(ctx, outDir)
	if err != nil {
		return err
	}
	success("published %d objects to s3://%s", len(keys), cfg.Export.S3.Bucket)
	return nil
}
