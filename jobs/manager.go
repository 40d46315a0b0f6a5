// Package jobs provides background job processing functionality.
package jobs

import (
	"context"
	"sync"

	"viewvault/logger"
	"viewvault/models"
)

// JobManager handles background job execution
type JobManager struct {
	prefetchJob *PrefetchJob
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	running     bool
	mu          sync.RWMutex
}

// NewJobManager creates a new job manager
func NewJobManager(prefetchJob *PrefetchJob) *JobManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &JobManager{
		prefetchJob: prefetchJob,
		ctx:         ctx,
		cancel:      cancel,
		running:     false,
	}
}

// Start begins the job manager background processing. Every category of
// both media types is prefetched once.
func (jm *JobManager) Start() {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	if jm.running {
		logger.Info("Job manager is already running")
		return
	}
	if jm.ctx.Err() != nil {
		logger.Info("Job manager has been stopped, not starting")
		return
	}

	jm.running = true
	logger.Info("Starting job manager")

	jm.wg.Add(1)
	go jm.runStartupPrefetch()
}

// Stop cancels in-flight jobs, including triggered prefetches, and waits for
// them to return. No job can be started afterwards.
func (jm *JobManager) Stop() {
	jm.mu.Lock()
	if jm.ctx.Err() == nil {
		logger.Info("Stopping job manager")
	}
	jm.cancel()
	jm.running = false
	jm.mu.Unlock()

	// Wait for all jobs to finish
	jm.wg.Wait()
	logger.Info("Job manager stopped")
}

// IsRunning returns whether the job manager is currently running
func (jm *JobManager) IsRunning() bool {
	jm.mu.RLock()
	defer jm.mu.RUnlock()
	return jm.running
}

// TriggerPrefetch immediately warms every category of one media type.
// It is a no-op once the manager has been stopped.
func (jm *JobManager) TriggerPrefetch(mediaType models.MediaType) bool {
	if jm.prefetchJob == nil {
		logger.Warn("Cannot trigger prefetch: no prefetch job configured")
		return false
	}

	jm.mu.RLock()
	defer jm.mu.RUnlock()
	if jm.ctx.Err() != nil {
		return false
	}

	jm.wg.Add(1)
	go func() {
		defer jm.wg.Done()
		jm.prefetchJob.Run(jm.ctx, mediaType)
	}()
	return true
}

// Wait blocks until every started job has returned
func (jm *JobManager) Wait() {
	jm.wg.Wait()
}

func (jm *JobManager) runStartupPrefetch() {
	defer jm.wg.Done()

	if jm.prefetchJob == nil {
		logger.Info("No prefetch job configured, skipping startup prefetch")
		return
	}

	for _, mediaType := range []models.MediaType{models.MediaTypeMovie, models.MediaTypeTV} {
		jm.prefetchJob.Run(jm.ctx, mediaType)
	}
}
