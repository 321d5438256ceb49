package download

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/umget/umget/internal/model"
)

// fakeRunner scripts download outcomes per attempt and can emit progress.
type fakeRunner struct {
	errs     []error // outcome per attempt, nil = success
	calls    int
	progress []model.Progress // emitted on every attempt
	started  chan struct{}    // closed-ish signal, optional
	release  chan struct{}    // blocks the attempt when set
}

func (f *fakeRunner) Download(ctx context.Context, plan model.DownloadPlan, url string, onProgress func(model.Progress)) error {
	f.calls++
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	for _, p := range f.progress {
		if onProgress != nil {
			onProgress(p)
		}
	}
	if f.calls <= len(f.errs) {
		return f.errs[f.calls-1]
	}
	return nil
}

func TestRun_Completes(t *testing.T) {
	runner := &fakeRunner{progress: []model.Progress{
		{DownloadedBytes: 10, TotalBytes: 100},
		{DownloadedBytes: 100, TotalBytes: 100},
	}}
	service := NewService(runner)

	var updates []Job
	service.SetUpdateCallback(func(j Job) { updates = append(updates, j) })

	plan := model.DownloadPlan{Selector: "137+140", OutputTemplate: "/tmp/%(title)s.%(ext)s"}
	job, err := service.Run(context.Background(), "https://example.com/watch?v=x", plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if job.Status != JobStatusCompleted {
		t.Errorf("final status = %s, expected Completed", job.Status)
	}
	if job.ID == "" {
		t.Error("job should get an ID")
	}
	if runner.calls != 1 {
		t.Errorf("runner called %d times, expected 1", runner.calls)
	}

	// Ordered lifecycle: Starting, Downloading, two progress, Completed.
	if len(updates) != 5 {
		t.Fatalf("expected 5 updates, got %d", len(updates))
	}
	if updates[0].Status != JobStatusStarting || updates[1].Status != JobStatusDownloading {
		t.Errorf("lifecycle prefix = %s, %s", updates[0].Status, updates[1].Status)
	}
	if updates[3].Progress.DownloadedBytes != 100 {
		t.Errorf("progress updates out of order: %+v", updates[3].Progress)
	}
	if updates[4].Status != JobStatusCompleted {
		t.Errorf("last update = %s, expected Completed", updates[4].Status)
	}
}

func TestRun_RetriesOnceThenSucceeds(t *testing.T) {
	runner := &fakeRunner{errs: []error{errors.New("transient")}}
	service := NewService(runner)
	service.backoff = time.Millisecond

	job, err := service.Run(context.Background(), "https://example.com/v", model.DownloadPlan{Selector: "best"})
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if runner.calls != 2 {
		t.Errorf("runner called %d times, expected 2", runner.calls)
	}
	if job.Status != JobStatusCompleted {
		t.Errorf("final status = %s", job.Status)
	}
}

func TestRun_FailsAfterRetry(t *testing.T) {
	runner := &fakeRunner{errs: []error{errors.New("first"), errors.New("ERROR: last line")}}
	service := NewService(runner)
	service.backoff = time.Millisecond

	job, err := service.Run(context.Background(), "https://example.com/v", model.DownloadPlan{Selector: "best"})
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}

	var de *model.DownloadError
	if !errors.As(err, &de) {
		t.Errorf("error should be a DownloadError, got %T", err)
	}
	if model.LastLine(err) != "ERROR: last line" {
		t.Errorf("display summary = %q", model.LastLine(err))
	}
	if job.Status != JobStatusFailed || job.LastError == "" {
		t.Errorf("final job = %+v", job)
	}
}

func TestRun_RejectsConcurrentJob(t *testing.T) {
	runner := &fakeRunner{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	service := NewService(runner)

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.Run(context.Background(), "https://example.com/a", model.DownloadPlan{Selector: "best"})
	}()

	<-runner.started
	if _, err := service.Run(context.Background(), "https://example.com/b", model.DownloadPlan{Selector: "best"}); err == nil {
		t.Error("second job while one is in flight should be rejected")
	}

	close(runner.release)
	<-done
}

func TestJobStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   JobStatus
		finished bool
	}{
		{JobStatusPending, false},
		{JobStatusStarting, false},
		{JobStatusDownloading, false},
		{JobStatusCompleted, true},
		{JobStatusFailed, true},
	}

	for _, test := range tests {
		if got := test.status.IsFinished(); got != test.finished {
			t.Errorf("IsFinished(%s) = %v, expected %v", test.status, got, test.finished)
		}
	}
}
