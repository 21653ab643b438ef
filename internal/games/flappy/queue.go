package flappy

// ObstacleQueue is a fixed-capacity FIFO of obstacles kept in spawn order.
// Pushing onto a full queue evicts the oldest obstacle.
type ObstacleQueue struct {
	items []Obstacle
	head  int
	size  int
}

// NewObstacleQueue creates an empty queue holding at most capacity obstacles.
func NewObstacleQueue(capacity int) ObstacleQueue {
	if capacity < 1 {
		capacity = 1
	}
	return ObstacleQueue{items: make([]Obstacle, capacity)}
}

// Push appends o. When the queue was full it returns the evicted head and true.
func (q *ObstacleQueue) Push(o Obstacle) (Obstacle, bool) {
	if q.size == len(q.items) {
		evicted := q.items[q.head]
		q.items[q.head] = o
		q.head = (q.head + 1) % len(q.items)
		return evicted, true
	}

	q.items[(q.head+q.size)%len(q.items)] = o
	q.size++
	return Obstacle{}, false
}

// Len returns the number of queued obstacles.
func (q *ObstacleQueue) Len() int {
	return q.size
}

// Cap returns the queue capacity.
func (q *ObstacleQueue) Cap() int {
	return len(q.items)
}

// At returns the i-th oldest obstacle for in-place updates.
// It panics if i is out of range.
func (q *ObstacleQueue) At(i int) *Obstacle {
	if i < 0 || i >= q.size {
		panic("flappy: obstacle index out of range")
	}
	return &q.items[(q.head+i)%len(q.items)]
}

// All returns a copy of the queued obstacles, oldest first.
func (q *ObstacleQueue) All() []Obstacle {
	out := make([]Obstacle, 0, q.size)
	for i := 0; i < q.size; i++ {
		out = append(out, *q.At(i))
	}
	return out
}

// Clear drops every obstacle.
func (q *ObstacleQueue) Clear() {
	clear(q.items)
	q.head = 0
	q.size = 0
}
