package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexasta/internal/config"
	"lexasta/internal/domain"
	"lexasta/internal/port"
)

func TestAnalysisQueue_PushRejectsWhenFull(t *testing.T) {
	q := NewAnalysisQueue(1)
	require.NoError(t, q.Push(AnalysisJob{}))
	assert.ErrorIs(t, q.Push(AnalysisJob{}), domain.ErrQueueFull)
	assert.Equal(t, 1, q.Len())
}

func TestAnalysisWorker_RunsQueuedBatches(t *testing.T) {
	runner := &fakeRunner{record: unifiedRecord()}
	queue := NewAnalysisQueue(4)
	svc := newService(runner, queue, nil)
	ctx := context.Background()

	id := svc.Create(ctx).ID
	_, err := svc.AddFiles(ctx, id, []FileInput{textFile("avviso.txt")})
	require.NoError(t, err)
	require.NoError(t, svc.Analyze(port.WithAPIKey(ctx, "sk-ant-user"), id))

	workerCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	worker := NewAnalysisWorker(queue, svc, config.WorkerConfig{Concurrency: 2, RunTimeoutSecs: 5}, nil)
	go func() {
		worker.Start(workerCtx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		snap, err := svc.Get(ctx, id)
		return err == nil && snap.State == domain.BatchDone
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	runner.mu.Lock()
	defer runner.mu.Unlock()
	assert.Equal(t, []string{"sk-ant-user"}, runner.apiKeys)

	// The batch is runnable again once its run finished.
	assert.NoError(t, svc.Analyze(ctx, id))
}

func TestAnalysisWorker_FailedRunLeavesBatchFailed(t *testing.T) {
	runner := &fakeRunner{err: domain.ErrNoDocumentAnalyzed}
	queue := NewAnalysisQueue(1)
	svc := newService(runner, queue, nil)
	ctx := context.Background()

	id := svc.Create(ctx).ID
	_, err := svc.AddFiles(ctx, id, []FileInput{textFile("avviso.txt")})
	require.NoError(t, err)
	require.NoError(t, svc.Analyze(ctx, id))

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go NewAnalysisWorker(queue, svc, config.WorkerConfig{Concurrency: 1}, nil).Start(workerCtx)

	require.Eventually(t, func() bool {
		snap, err := svc.Get(ctx, id)
		return err == nil && snap.State == domain.BatchFailed
	}, 2*time.Second, 10*time.Millisecond)

	snap, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ErrNoDocumentAnalyzed.Error(), snap.Error)
}
