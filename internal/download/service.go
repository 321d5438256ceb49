package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/umget/umget/internal/extractor"
	"github.com/umget/umget/internal/model"
)

// Retry constants
const (
	MaxRetries   = 1
	RetryBackoff = 2 * time.Second
)

const jobIDPrefix = "job-"

// JobStatus represents the status of a download job
type JobStatus string

const (
	JobStatusPending     JobStatus = "Pending"
	JobStatusStarting    JobStatus = "Starting"
	JobStatusDownloading JobStatus = "Downloading"
	JobStatusCompleted   JobStatus = "Completed"
	JobStatusFailed      JobStatus = "Failed"
)

// String returns the string representation of JobStatus
func (s JobStatus) String() string {
	return string(s)
}

// IsFinished returns true if the job is in a terminal state
func (s JobStatus) IsFinished() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Job is one download invocation: a plan, its URL, and its observed state.
type Job struct {
	ID         string
	URL        string
	Plan       model.DownloadPlan
	Status     JobStatus
	Progress   model.Progress
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Service runs download jobs. At most one job is in flight at a time; the
// session pipeline is single-owner and sequential, so no further locking is
// needed beyond the in-flight guard.
type Service struct {
	runner   extractor.Runner
	mu       sync.Mutex
	active   bool
	onUpdate func(Job) // callback for front-end updates
	backoff  time.Duration
}

// NewService creates a download service backed by the given runner.
func NewService(runner extractor.Runner) *Service {
	return &Service{
		runner:  runner,
		backoff: RetryBackoff,
	}
}

// SetUpdateCallback sets the callback invoked on every job state or progress
// change. Callbacks are invoked in order from the job's goroutine.
func (s *Service) SetUpdateCallback(callback func(Job)) {
	s.onUpdate = callback
}

// Run executes a plan and blocks until it finishes. It returns the final job
// state; the error mirrors Job.LastError for callers that branch on failure.
// An in-flight download cannot be cancelled, only awaited (or the context
// abandoned by process exit).
func (s *Service) Run(ctx context.Context, url string, plan model.DownloadPlan) (Job, error) {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return Job{}, fmt.Errorf("a download is already in progress")
	}
	s.active = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.active = false
		s.mu.Unlock()
	}()

	job := Job{
		ID:        generateJobID(),
		URL:       url,
		Plan:      plan,
		Status:    JobStatusStarting,
		StartedAt: time.Now(),
	}
	s.notify(job)

	job.Status = JobStatusDownloading
	s.notify(job)

	err := s.downloadWithRetry(ctx, &job)

	job.FinishedAt = time.Now()
	if err != nil {
		job.Status = JobStatusFailed
		job.LastError = err.Error()
		s.notify(job)
		return job, &model.DownloadError{Err: err}
	}

	job.Status = JobStatusCompleted
	s.notify(job)
	return job, nil
}

// downloadWithRetry attempts the transfer, retrying once after a short
// backoff unless the context is gone.
func (s *Service) downloadWithRetry(ctx context.Context, job *Job) error {
	var lastErr error

	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(s.backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			logrus.Infof("download: retrying job %s, attempt %d", job.ID, attempt+1)
		}

		err := s.runner.Download(ctx, job.Plan, job.URL, func(p model.Progress) {
			job.Progress = p
			s.notify(*job)
		})
		if err == nil {
			return nil
		}

		lastErr = err
		logrus.Warnf("download: attempt %d failed for job %s: %v", attempt+1, job.ID, err)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return lastErr
}

// notify calls the update callback if set
func (s *Service) notify(job Job) {
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}

// generateJobID generates a unique job ID using UUID v7 for time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(jobIDPrefix+"%d", time.Now().UnixNano())
	}
	return jobIDPrefix + id.String()
}
