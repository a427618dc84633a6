package meshing

import (
	"context"
	"fmt"
	"sync"

	"isoedit/internal/logging"
	"isoedit/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// stripJob asks a worker to march one run of columns
type stripJob struct {
	Sampler   Sampler
	Threshold float32
	X0, X1    int64
	Y0, Y1    int64
	Index     int
	// Result channel - will be sent the result when done
	ResultChan chan<- stripResult
}

// stripResult contains the result of a strip job
type stripResult struct {
	Index int
	Mesh  *Mesh
	Cells int
}

// WorkerPool marches wide fields on several goroutines. The sampler must be
// safe for concurrent reads while a March call is running.
type WorkerPool struct {
	jobQueue chan stripJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new pool with the given number of workers
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan stripJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	// Start worker goroutines
	for i := range workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// worker is the worker goroutine that processes strip jobs
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			m, cells := marchColumns(job.Sampler, job.Threshold, job.X0, job.X1, job.Y0, job.Y1)

			// Send result back
			select {
			case job.ResultChan <- stripResult{Index: job.Index, Mesh: m, Cells: cells}:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// March produces exactly what March(s, threshold) does, splitting the
// columns into one strip per worker and joining the strips in x order.
func (p *WorkerPool) March(ctx context.Context, s Sampler, threshold float32) (*Mesh, error) {
	defer profiling.Track("meshing.WorkerPool.March")()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	minX, minY, maxX, maxY := s.Extent()
	x0, x1 := int64(minX)-1, int64(maxX)+1
	y0, y1 := int64(minY)-1, int64(maxY)+1

	columns := x1 - x0 + 1
	strips := int64(p.workers)
	if strips > columns {
		strips = columns
	}
	width := (columns + strips - 1) / strips

	results := make(chan stripResult, strips)
	n := 0
	for sx := x0; sx <= x1; sx += width {
		job := stripJob{
			Sampler:    s,
			Threshold:  threshold,
			X0:         sx,
			X1:         min(sx+width-1, x1),
			Y0:         y0,
			Y1:         y1,
			Index:      n,
			ResultChan: results,
		}
		select {
		case p.jobQueue <- job:
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.ctx.Done():
			return nil, fmt.Errorf("meshing: worker pool shut down")
		}
		n++
	}

	parts := make([]*Mesh, n)
	cells := 0
	for range n {
		select {
		case r := <-results:
			parts[r.Index] = r.Mesh
			cells += r.Cells
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.ctx.Done():
			return nil, fmt.Errorf("meshing: worker pool shut down")
		}
	}

	m := joinMeshes(parts)
	logging.Logger().Debug("marched field",
		"cells", cells,
		"strips", n,
		"triangles", m.TriangleCount(),
		"threshold", threshold,
	)
	return m, nil
}

// joinMeshes concatenates parts, rebasing each part's indices.
func joinMeshes(parts []*Mesh) *Mesh {
	var total int
	for _, part := range parts {
		total += len(part.Positions)
	}
	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, total),
		Normals:   make([]mgl32.Vec3, 0, total),
		Indices:   make([]uint32, 0, total),
	}
	for _, part := range parts {
		base := uint32(len(m.Positions))
		m.Positions = append(m.Positions, part.Positions...)
		m.Normals = append(m.Normals, part.Normals...)
		for _, i := range part.Indices {
			m.Indices = append(m.Indices, base+i)
		}
	}
	return m
}

// Shutdown stops the workers and waits for them to exit
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
