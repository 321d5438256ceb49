package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/umget/umget/internal/cli"
	"github.com/umget/umget/internal/download"
	"github.com/umget/umget/internal/extractor"
	"github.com/umget/umget/internal/platform"
	"github.com/umget/umget/internal/selection"
	"github.com/umget/umget/internal/session"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	flagDir     string
	flagSort    bool
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:          "umget",
		Short:        "Interactive video and playlist downloader",
		Version:      version,
		RunE:         run,
		SilenceUsage: true,
	}

	root.Flags().StringVarP(&flagDir, "dir", "d", "", "destination base directory (default: Desktop)")
	root.Flags().BoolVar(&flagSort, "sort-by-size", false, "sort download options by estimated size")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Fetch the yt-dlp binary if the system does not provide one
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("installing yt-dlp: %w", err)
	}
	platform.CheckFFmpeg()

	roots, err := platform.EnsureMediaRoots(flagDir)
	if err != nil {
		return fmt.Errorf("preparing destination directories: %w", err)
	}
	fmt.Printf("Saving downloads under %s\n", roots.Base)

	client := extractor.NewClient()
	downloadSvc := download.NewService(client)
	front := cli.NewTextFrontEnd(os.Stdin, os.Stdout)

	sess := session.New(client, downloadSvc, front, roots, selection.Config{
		SortBySize: flagSort,
	})
	sess.Run(ctx)

	fmt.Println("Goodbye.")
	return nil
}
