package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2/app"
	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"

	"github.com/umget/umget/internal/config"
	"github.com/umget/umget/internal/download"
	"github.com/umget/umget/internal/extractor"
	"github.com/umget/umget/internal/platform"
	"github.com/umget/umget/internal/selection"
	"github.com/umget/umget/internal/session"
	"github.com/umget/umget/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.umget.umget"

func main() {
	fmt.Printf("umget v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow(ui.AppTitle)

	settings := config.NewSettings(myApp)
	if settings.GetVerbose() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Fetch the yt-dlp binary if the system does not provide one
	ytdlp.MustInstall(context.Background(), nil)
	platform.CheckFFmpeg()

	roots, err := platform.EnsureMediaRoots(settings.GetDownloadDirectory())
	if err != nil {
		logrus.Fatalf("failed to prepare destination directories: %v", err)
	}

	client := extractor.NewClient()
	downloadSvc := download.NewService(client)

	rootUI := ui.NewRootUI(myWindow, myApp, roots.Base)
	sess := session.New(client, downloadSvc, rootUI, roots, selection.Config{
		SortBySize: settings.GetSortBySize(),
		MaxOffers:  settings.GetMaxOffers(),
	})

	go sess.Run(context.Background())

	myWindow.ShowAndRun()
}
