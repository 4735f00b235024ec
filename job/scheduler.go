package job

import (
	"context"
	"fmt"
	"sync"
	"time"

	"feedhub/utils/logger"
	"feedhub/utils/metrics"
)

// Job is a periodic task such as the ingestion sweep.
type Job struct {
	Name     string
	Interval time.Duration
	// Timeout bounds one run; zero leaves the run bounded only by the scheduler context.
	Timeout time.Duration
	Fn      func(ctx context.Context) error
}

// JobStatus is the outcome of the most recent run of a job.
type JobStatus struct {
	Name         string        `json:"name"`
	Runs         int           `json:"runs"`
	Failures     int           `json:"failures"`
	LastRunAt    *time.Time    `json:"last_run_at,omitempty"`
	LastDuration time.Duration `json:"last_duration_ns"`
	LastError    string        `json:"last_error,omitempty"`
}

// JobScheduler runs each job once at start and then on its interval until the context ends.
type JobScheduler struct {
	jobs []Job
	wg   sync.WaitGroup
	now  func() time.Time

	mu     sync.Mutex
	status map[string]*JobStatus
}

func NewJobScheduler() *JobScheduler {
	return &JobScheduler{
		now:    time.Now,
		status: make(map[string]*JobStatus),
	}
}

func (s *JobScheduler) Add(j Job) {
	s.mu.Lock()
	s.status[j.Name] = &JobStatus{Name: j.Name}
	s.mu.Unlock()
	s.jobs = append(s.jobs, j)
}

func (s *JobScheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, j)
	}
}

func (s *JobScheduler) loop(ctx context.Context, j Job) {
	defer s.wg.Done()

	ctx = logger.WithOperation(ctx, j.Name)
	s.run(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Logger.InfoContext(ctx, "Scheduled job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.run(ctx, j)
		}
	}
}

func (s *JobScheduler) run(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	runCtx := ctx
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	startedAt := s.now()
	err := invoke(runCtx, j.Fn)
	s.record(j.Name, startedAt, time.Since(startedAt), err)

	if err != nil {
		metrics.RecordScheduledRun(j.Name, "failed")
		logger.Logger.ErrorContext(ctx, "Scheduled job failed", "job", j.Name, "error", err)
		return
	}
	metrics.RecordScheduledRun(j.Name, "succeeded")
}

// invoke turns a panic in fn into an error so one bad run does not end the job's loop.
func invoke(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return fn(ctx)
}

func (s *JobScheduler) record(name string, startedAt time.Time, elapsed time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.status[name]
	if !ok {
		st = &JobStatus{Name: name}
		s.status[name] = st
	}
	st.Runs++
	st.LastRunAt = &startedAt
	st.LastDuration = elapsed
	st.LastError = ""
	if err != nil {
		st.Failures++
		st.LastError = err.Error()
	}
}

// Status reports every registered job in registration order.
func (s *JobScheduler) Status() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]JobStatus, 0, len(s.jobs))
	for _, j := range s.jobs {
		st := *s.status[j.Name]
		if st.LastRunAt != nil {
			at := *st.LastRunAt
			st.LastRunAt = &at
		}
		out = append(out, st)
	}
	return out
}

// Shutdown blocks until every job loop has returned.
func (s *JobScheduler) Shutdown() {
	s.wg.Wait()
}
