// Implements the ReadyQueue, which holds the processes Round Robin will dispatch next.
// Processes are enqueued on arrival and again after each unfinished time slice.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of processes with membership tracking,
// so a process can never be queued twice at the same time.
type ReadyQueue struct {
	queue  []*Process        // FIFO queue of processes
	queued map[*Process]bool // membership flags
}

// NewReadyQueue returns an empty ReadyQueue.
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{
		queue:  make([]*Process, 0),
		queued: make(map[*Process]bool),
	}
}

// Enqueue adds a process to the back of the queue.
// Returns false, leaving the queue unchanged, if p is already queued.
func (rq *ReadyQueue) Enqueue(p *Process) bool {
	if p == nil {
		panic("Enqueue: p must not be nil")
	}
	if rq.queued[p] {
		return false
	}
	rq.queue = append(rq.queue, p)
	rq.queued[p] = true
	return true
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	head := rq.queue[0]
	rq.queue = rq.queue[1:]
	delete(rq.queued, head)
	return head
}

// Contains reports whether p is currently queued.
func (rq *ReadyQueue) Contains(p *Process) bool {
	return rq.queued[p]
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(fmt.Sprint(p.ID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
