package download

import (
	"context"

	"github.com/umget/umget/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(Job))

	// Run executes a plan and blocks until completion or failure.
	Run(ctx context.Context, url string, plan model.DownloadPlan) (Job, error)
}

var _ Downloader = (*Service)(nil)
