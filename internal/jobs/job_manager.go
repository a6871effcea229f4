package jobs

import (
	"fmt"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the scheduled jobs of the depot.
type JobManager struct {
	jobs map[string]Job
	// order keeps start order; jobs are stopped in reverse.
	order []string
}

func NewJobManager() *JobManager {
	return &JobManager{jobs: make(map[string]Job)}
}

// Register adds a job under name. Registering a name twice replaces the earlier job.
func (jm *JobManager) Register(name string, job Job) {
	if _, ok := jm.jobs[name]; !ok {
		jm.order = append(jm.order, name)
	}
	jm.jobs[name] = job
}

// StartAll starts every registered job. If one fails to start, the jobs already
// started are stopped and the error is returned.
func (jm *JobManager) StartAll() error {
	for i, name := range jm.order {
		if err := jm.jobs[name].Start(); err != nil {
			for j := i - 1; j >= 0; j-- {
				jm.jobs[jm.order[j]].Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", name, err)
		}
	}

	return nil
}

// StopAll stops all jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.order) - 1; i >= 0; i-- {
		jm.jobs[jm.order[i]].Stop()
	}
}
