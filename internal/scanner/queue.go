package scanner

import (
	"sync"

	"github.com/robgonnella/netscope/internal/probe"
)

// jobQueue FIFO of jobs shared by every worker of a single scan
type jobQueue struct {
	jobs []probe.Job
	mux  sync.Mutex
}

func newJobQueue(jobs []probe.Job) *jobQueue {
	queued := make([]probe.Job, len(jobs))
	copy(queued, jobs)

	return &jobQueue{jobs: queued}
}

// pop returns the next job, ok is false once the queue is drained
func (q *jobQueue) pop() (job probe.Job, ok bool) {
	q.mux.Lock()
	defer q.mux.Unlock()

	if len(q.jobs) == 0 {
		return probe.Job{}, false
	}

	job = q.jobs[0]
	q.jobs = q.jobs[1:]

	return job, true
}

// indexedResult a probe result tagged with its job's index
type indexedResult struct {
	index  int
	result probe.Result
}

// resultSet results deposited by workers in completion order
type resultSet struct {
	results []indexedResult
	mux     sync.Mutex
}

func newResultSet(size int) *resultSet {
	return &resultSet{results: make([]indexedResult, 0, size)}
}

func (s *resultSet) add(index int, result probe.Result) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.results = append(s.results, indexedResult{index: index, result: result})
}

func (s *resultSet) all() []indexedResult {
	s.mux.Lock()
	defer s.mux.Unlock()

	out := make([]indexedResult, len(s.results))
	copy(out, s.results)

	return out
}
