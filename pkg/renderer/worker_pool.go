package renderer

import (
	"bytes"
	"io"
	"runtime"
	"sync"
)

// RowTask represents a single-row rendering task for the worker pool
type RowTask struct {
	Row int
}

// RowResult contains the rendered pixel lines for one row
type RowResult struct {
	Row     int
	Pixels  []byte
	Samples int
	Err     error
}

// WorkerPool manages parallel row rendering. Rows are independent because
// each carries its own sampler; only the reassembly into row-major order is
// serialized.
type WorkerPool struct {
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool for the given raytracer. Queues are
// buffered for every row, so workers never block on a slow consumer.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := raytracer.camera.ImageHeight()
	return &WorkerPool{
		raytracer:   raytracer,
		taskQueue:   make(chan RowTask, rows),
		resultQueue: make(chan RowResult, rows),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop closes the task queue, waits for in-flight rows, and closes the
// result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop: render each claimed row into a private
// buffer with that row's deterministic sampler
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		var buf bytes.Buffer
		samples, err := wp.raytracer.renderRow(task.Row, wp.raytracer.rowSampler(task.Row), &buf)

		wp.resultQueue <- RowResult{
			Row:     task.Row,
			Pixels:  buf.Bytes(),
			Samples: samples,
			Err:     err,
		}
	}
}

// RenderParallel renders the scene across numWorkers goroutines
// (0 = CPU count) and writes the rows in row-major order. Output is
// byte-identical to Render because rows use the same per-row samplers.
func (rt *Raytracer) RenderParallel(w io.Writer, numWorkers int) (RenderStats, error) {
	stats := newRenderStats(rt.camera)
	height := rt.camera.ImageHeight()

	pool := NewWorkerPool(rt, numWorkers)
	pool.Start()
	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}
	pool.Stop()

	// Reassemble rows before writing anything: the wire format is strictly
	// ordered, and a failed row must surface before later output
	rows := make([][]byte, height)
	remaining := height
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Err != nil {
			return stats, result.Err
		}
		rows[result.Row] = result.Pixels
		stats.addRow(result.Samples)
		remaining--
		rt.logf("\rScanlines remaining: %d ", remaining)
	}

	if err := rt.writeHeader(w); err != nil {
		return stats, err
	}
	for _, row := range rows {
		if _, err := w.Write(row); err != nil {
			return stats, err
		}
	}

	rt.logf("\rDone.                 \n")
	stats.finalize()
	return stats, nil
}
