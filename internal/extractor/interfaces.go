package extractor

import (
	"context"

	"github.com/umget/umget/internal/model"
)

// Prober issues metadata queries against the extractor backend.
type Prober interface {
	Probe(ctx context.Context, url string, flat bool) (*model.ProbeResult, error)
}

// Runner executes a download plan against the extractor backend.
type Runner interface {
	Download(ctx context.Context, plan model.DownloadPlan, url string, onProgress func(model.Progress)) error
}

var (
	_ Prober = (*Client)(nil)
	_ Runner = (*Client)(nil)
)
