package superstaq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJobClient struct {
	calls int
	resp  JobResponse
}

func (c *countingJobClient) GetJob(context.Context, string) (JobResponse, error) {
	c.calls++
	return c.resp, nil
}

func TestJob_Done(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: StatusReady, want: false},
		{status: StatusRunning, want: false},
		{status: StatusCompleted, want: true},
		{status: StatusDone, want: true},
		{status: StatusError, want: true},
		{status: StatusCanceled, want: true},
		{status: StatusFailed, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			job := newJob(nil, JobResponse{Status: tt.status})
			assert.Equal(t, tt.want, job.Done())
		})
	}
}

func TestJob_Counts(t *testing.T) {
	resp := JobResponse{Samples: map[string]int64{"11": 3}}
	resp.Data.Histogram = map[string]int64{"00": 9}
	job := newJob(nil, resp)
	// The sample map wins over the histogram payload.
	assert.Equal(t, map[string]int64{"11": 3}, job.Counts())

	var histOnly JobResponse
	histOnly.Data.Histogram = map[string]int64{"00": 9}
	assert.Equal(t, map[string]int64{"00": 9}, newJob(nil, histOnly).Counts())
}

func TestJob_Refresh(t *testing.T) {
	client := &countingJobClient{resp: JobResponse{JobID: "job_id", Status: StatusCompleted}}
	job := newJob(client, JobResponse{JobID: "job_id", Status: StatusRunning})

	require.NoError(t, job.Refresh(context.Background()))
	assert.Equal(t, StatusCompleted, job.Status())
	assert.Equal(t, 1, client.calls)

	// Terminal jobs do not hit the server again.
	require.NoError(t, job.Refresh(context.Background()))
	assert.Equal(t, 1, client.calls)
}
