package superstaq

import (
	"context"

	"github.com/sirupsen/logrus"
)

var jobLogger = logrus.New()

// Job statuses considered terminal. The server has historically reported
// completion as both "completed" and "Done".
const (
	StatusReady     = "ready"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusDone      = "Done"
	StatusError     = "error"
	StatusCanceled  = "canceled"
	StatusFailed    = "failed"
)

// Job is a handle on a submitted unit of work. The id is fixed at creation;
// the rest of the payload is refreshed from the server.
type Job struct {
	client jobClient
	job    JobResponse
}

// jobClient is the slice of the API a Job needs to refresh itself.
type jobClient interface {
	GetJob(ctx context.Context, jobID string) (JobResponse, error)
}

func newJob(client jobClient, resp JobResponse) *Job {
	return &Job{client: client, job: resp}
}

// ID returns the opaque job id assigned at submission.
func (j *Job) ID() string { return j.job.JobID }

// Status returns the job status as of the last refresh.
func (j *Job) Status() string { return j.job.Status }

// Target returns the execution target the job was submitted to.
func (j *Job) Target() string { return j.job.Target }

// Done reports whether the job has reached a terminal state.
func (j *Job) Done() bool {
	switch j.job.Status {
	case StatusCompleted, StatusDone, StatusError, StatusCanceled, StatusFailed:
		return true
	}
	return false
}

// Counts returns the measurement histogram, outcome bitstring to count.
// It prefers the sample map and falls back to the histogram payload.
func (j *Job) Counts() map[string]int64 {
	if len(j.job.Samples) > 0 {
		return j.job.Samples
	}
	return j.job.Data.Histogram
}

// Refresh re-fetches the job payload from the server. A job already in a
// terminal state is left untouched.
func (j *Job) Refresh(ctx context.Context) error {
	if j.Done() {
		return nil
	}
	resp, err := j.client.GetJob(ctx, j.job.JobID)
	if err != nil {
		return err
	}
	jobLogger.WithFields(logrus.Fields{"job_id": resp.JobID, "status": resp.Status}).Debug("refreshed job")
	j.job = resp
	return nil
}
