package jobs

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"viewvault/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLister returns one result per call and remembers what was asked
type recordingLister struct {
	mu    sync.Mutex
	calls []PrefetchTarget
	pages []int
	empty bool
}

func (r *recordingLister) record(mediaType models.MediaType, category, timeWindow string, page int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, PrefetchTarget{MediaType: mediaType, Category: category, TimeWindow: timeWindow})
	r.pages = append(r.pages, page)
}

func (r *recordingLister) MoviesByCategory(_ context.Context, category, timeWindow string, page int) models.Page[models.MovieInList] {
	r.record(models.MediaTypeMovie, category, timeWindow, page)
	if r.empty {
		return models.EmptyPage[models.MovieInList](page)
	}
	return models.Page[models.MovieInList]{Results: []models.MovieInList{{ID: 1}}, Page: page}
}

func (r *recordingLister) TVByCategory(_ context.Context, category, timeWindow string, page int) models.Page[models.TVInList] {
	r.record(models.MediaTypeTV, category, timeWindow, page)
	if r.empty {
		return models.EmptyPage[models.TVInList](page)
	}
	return models.Page[models.TVInList]{Results: []models.TVInList{{ID: 1}}, Page: page}
}

func (r *recordingLister) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// blockingLister holds every lookup until its context is cancelled
type blockingLister struct {
	calls   atomic.Int32
	once    sync.Once
	entered chan struct{}
}

func newBlockingLister() *blockingLister {
	return &blockingLister{entered: make(chan struct{})}
}

func (b *blockingLister) block(ctx context.Context) {
	b.calls.Add(1)
	b.once.Do(func() { close(b.entered) })
	<-ctx.Done()
}

func (b *blockingLister) MoviesByCategory(ctx context.Context, _, _ string, page int) models.Page[models.MovieInList] {
	b.block(ctx)
	return models.EmptyPage[models.MovieInList](page)
}

func (b *blockingLister) TVByCategory(ctx context.Context, _, _ string, page int) models.Page[models.TVInList] {
	b.block(ctx)
	return models.EmptyPage[models.TVInList](page)
}

func setupTestJobManager(t *testing.T) (*JobManager, *recordingLister, func()) {
	lister := &recordingLister{}
	jm := NewJobManager(NewPrefetchJob(lister, lister))

	// Return cleanup function
	cleanup := func() {
		jm.Stop()
	}

	return jm, lister, cleanup
}

func TestTargets(t *testing.T) {
	movieTargets := Targets(models.MediaTypeMovie)
	assert.Len(t, movieTargets, 6)
	assert.Contains(t, movieTargets, PrefetchTarget{MediaType: models.MediaTypeMovie, Category: "trending", TimeWindow: "day"})
	assert.Contains(t, movieTargets, PrefetchTarget{MediaType: models.MediaTypeMovie, Category: "trending", TimeWindow: "week"})
	assert.Contains(t, movieTargets, PrefetchTarget{MediaType: models.MediaTypeMovie, Category: "now_playing", TimeWindow: "day"})

	tvTargets := Targets(models.MediaTypeTV)
	assert.Len(t, tvTargets, 6)
	assert.Contains(t, tvTargets, PrefetchTarget{MediaType: models.MediaTypeTV, Category: "on_the_air", TimeWindow: "day"})

	assert.Empty(t, Targets(models.MediaType("book")))
}

func TestPrefetchJob_Run(t *testing.T) {
	lister := &recordingLister{}
	job := NewPrefetchJob(lister, lister)

	warmed := job.Run(context.Background(), models.MediaTypeTV)
	assert.Equal(t, 6, warmed)
	assert.Equal(t, Targets(models.MediaTypeTV), lister.calls)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, lister.pages)
}

func TestPrefetchJob_Run_MoviesWithoutPage(t *testing.T) {
	lister := &recordingLister{}
	job := NewPrefetchJob(lister, lister)

	assert.Equal(t, 6, job.Run(context.Background(), models.MediaTypeMovie))
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, lister.pages)
}

func TestPrefetchJob_Run_EmptyResultsNotCounted(t *testing.T) {
	lister := &recordingLister{empty: true}
	job := NewPrefetchJob(lister, lister)

	assert.Zero(t, job.Run(context.Background(), models.MediaTypeMovie))
	assert.Equal(t, 6, lister.count())
}

func TestPrefetchJob_Run_CancelledContext(t *testing.T) {
	lister := &recordingLister{}
	job := NewPrefetchJob(lister, lister)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Zero(t, job.Run(ctx, models.MediaTypeMovie))
	assert.Zero(t, lister.count())
}

func TestPrefetchJob_Run_MissingLister(t *testing.T) {
	lister := &recordingLister{}
	job := NewPrefetchJob(nil, lister)

	assert.Zero(t, job.Run(context.Background(), models.MediaTypeMovie))
	assert.Equal(t, 6, job.Run(context.Background(), models.MediaTypeTV))
}

func TestJobManager_NewJobManager(t *testing.T) {
	jm, _, cleanup := setupTestJobManager(t)
	defer cleanup()

	assert.NotNil(t, jm)
	assert.NotNil(t, jm.prefetchJob)
	assert.False(t, jm.IsRunning())
	assert.NotNil(t, jm.ctx)
	assert.NotNil(t, jm.cancel)
}

func TestJobManager_StartPrefetchesEverything(t *testing.T) {
	jm, lister, cleanup := setupTestJobManager(t)
	defer cleanup()

	jm.Start()
	assert.True(t, jm.IsRunning())

	jm.Wait()
	assert.Equal(t, 12, lister.count())

	jm.Stop()
	assert.False(t, jm.IsRunning())
}

func TestJobManager_DoubleStart(t *testing.T) {
	jm, lister, cleanup := setupTestJobManager(t)
	defer cleanup()

	jm.Start()
	jm.Start() // Second start should be ignored
	assert.True(t, jm.IsRunning())

	jm.Wait()
	assert.Equal(t, 12, lister.count())
}

func TestJobManager_DoubleStop(t *testing.T) {
	jm, _, cleanup := setupTestJobManager(t)
	defer cleanup()

	jm.Start()
	jm.Stop()
	assert.False(t, jm.IsRunning())

	jm.Stop() // Second stop should be ignored
	assert.False(t, jm.IsRunning())
}

func TestJobManager_StopWithoutStart(t *testing.T) {
	jm, _, cleanup := setupTestJobManager(t)
	defer cleanup()

	jm.Stop()
	assert.False(t, jm.IsRunning())
}

func TestJobManager_TriggerPrefetch(t *testing.T) {
	jm, lister, cleanup := setupTestJobManager(t)
	defer cleanup()

	assert.True(t, jm.TriggerPrefetch(models.MediaTypeMovie))
	jm.Wait()
	assert.Equal(t, 6, lister.count())
}

func TestJobManager_TriggerAfterStop(t *testing.T) {
	jm, lister, cleanup := setupTestJobManager(t)
	defer cleanup()

	jm.Start()
	jm.Stop()
	before := lister.count()

	assert.False(t, jm.TriggerPrefetch(models.MediaTypeTV))
	assert.Equal(t, before, lister.count())
}

func TestJobManager_TriggerAfterStopWithoutStart(t *testing.T) {
	jm, lister, cleanup := setupTestJobManager(t)
	defer cleanup()

	jm.Stop()

	assert.False(t, jm.TriggerPrefetch(models.MediaTypeTV))
	assert.Zero(t, lister.count())
	assert.Error(t, jm.ctx.Err())
}

func TestJobManager_StopWaitsForTriggeredPrefetch(t *testing.T) {
	lister := newBlockingLister()
	jm := NewJobManager(NewPrefetchJob(lister, lister))

	require.True(t, jm.TriggerPrefetch(models.MediaTypeTV))
	<-lister.entered

	stopped := make(chan struct{})
	go func() {
		jm.Stop()
		close(stopped)
	}()

	// Stop cancels the context, which lets the blocked lookup return
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after cancelling the triggered prefetch")
	}
	assert.Equal(t, int32(1), lister.calls.Load())
	assert.False(t, jm.TriggerPrefetch(models.MediaTypeMovie))
}

func TestJobManager_StartAfterStop(t *testing.T) {
	jm, lister, cleanup := setupTestJobManager(t)
	defer cleanup()

	jm.Stop()
	jm.Start()

	assert.False(t, jm.IsRunning())
	jm.Wait()
	assert.Zero(t, lister.count())
}

func TestJobManager_TriggerWithoutJob(t *testing.T) {
	jm := NewJobManager(nil)

	assert.False(t, jm.TriggerPrefetch(models.MediaTypeMovie))

	jm.Start()
	jm.Stop()
	assert.False(t, jm.IsRunning())
}

func TestJobManager_ConcurrentTriggers(t *testing.T) {
	jm, lister, cleanup := setupTestJobManager(t)
	defer cleanup()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jm.TriggerPrefetch(models.MediaTypeTV)
		}()
	}
	wg.Wait()
	jm.Wait()

	assert.Equal(t, 30, lister.count())
}
