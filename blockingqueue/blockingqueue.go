package blockingqueue

import (
    "context"
    "fmt"
    "strings"
    "sync"
    "time"

    "code.hybscloud.com/atomix"
    "github.com/pkg/errors"

    base "github.com/xyhelper/boundedqueue"
)

// Queue is a fixed-capacity, concurrency-safe FIFO with a drop-oldest
// overflow policy. Push never blocks; when the queue is full the oldest
// element is evicted. Pop blocks while the queue is empty, PopWithTimeout and
// PopContext bound that wait.
//
// A single mutex guards the storage for the whole of every operation, and a
// condition variable on that mutex parks waiting consumers.
//
// All methods are safe for concurrent use by multiple goroutines.
type Queue[T any] struct {
    mu       sync.Mutex
    cv       *sync.Cond
    r        *base.Ring[T]
    capacity int
    stats    counters
}

type counters struct {
    pushed   atomix.Uint64
    popped   atomix.Uint64
    dropped  atomix.Uint64
    timeouts atomix.Uint64
}

// Stats is a snapshot of a queue's lifetime counters.
type Stats struct {
    Pushed   uint64 // elements accepted by Push/PushMany
    Popped   uint64 // elements returned to consumers
    Dropped  uint64 // elements evicted by overflow
    Timeouts uint64 // PopWithTimeout calls that expired
}

// New creates a blocking queue holding at most capacity elements.
//
// It panics with an error wrapping boundedqueue.ErrInvalidCapacity when
// capacity < 1.
func New[T any](capacity int) *Queue[T] {
    q := &Queue[T]{r: base.NewRing[T](capacity), capacity: capacity}
    q.cv = sync.NewCond(&q.mu)
    return q
}

// Push appends v to the tail, evicting the oldest element first if the queue
// is full. Wakes at most one goroutine blocked in a pop.
func (q *Queue[T]) Push(v T) {
    q.mu.Lock()
    q.push(v)
    q.cv.Signal()
    q.mu.Unlock()
}

// PushMany appends items in order under one lock acquisition and wakes one
// waiter per item.
func (q *Queue[T]) PushMany(items ...T) {
    q.mu.Lock()
    for _, v := range items {
        q.push(v)
        q.cv.Signal()
    }
    q.mu.Unlock()
}

func (q *Queue[T]) push(v T) {
    if _, dropped := q.r.Enqueue(v); dropped {
        q.stats.dropped.AddAcqRel(1)
    }
    q.stats.pushed.AddAcqRel(1)
}

// take removes the head. Caller holds q.mu and has checked non-emptiness.
func (q *Queue[T]) take() T {
    v, _ := q.r.Dequeue()
    q.stats.popped.AddAcqRel(1)
    return v
}

// Pop removes and returns the head value, blocking indefinitely while the
// queue is empty. Use PopWithTimeout or PopContext when the wait must be
// bounded.
func (q *Queue[T]) Pop() T {
    q.mu.Lock()
    defer q.mu.Unlock()
    for q.r.IsEmpty() {
        q.cv.Wait() // releases and re-acquires q.mu
    }
    return q.take()
}

// PopWithTimeout is Pop bounded by d.
//
// If no element arrives within d it returns the zero value and an error
// matching ErrTimeout; the queue is left unmodified. A non-positive d makes a
// single non-blocking attempt.
func (q *Queue[T]) PopWithTimeout(d time.Duration) (T, error) {
    ctx, cancel := context.WithTimeout(context.Background(), d)
    defer cancel()
    v, err := q.PopContext(ctx)
    if err != nil {
        q.stats.timeouts.AddAcqRel(1)
        return v, errors.Wrapf(ErrTimeout, "queue empty for %s", d)
    }
    return v, nil
}

// PopContext blocks until an element is available or ctx is done. On success
// returns (value, nil). On cancellation returns the zero value and ctx.Err().
//
// An element that is present when the waiter wakes is always returned, even
// if ctx expired at the same time.
func (q *Queue[T]) PopContext(ctx context.Context) (T, error) {
    if ctx == nil {
        ctx = context.Background()
    }
    q.mu.Lock()
    defer q.mu.Unlock()
    // Fast path
    if !q.r.IsEmpty() {
        return q.take(), nil
    }
    if err := ctx.Err(); err != nil {
        var zero T
        return zero, err
    }
    // Wake every waiter when ctx ends. Broadcasting under q.mu keeps the
    // wakeup from landing between the ctx check and Wait below.
    stop := context.AfterFunc(ctx, func() {
        q.mu.Lock()
        q.cv.Broadcast()
        q.mu.Unlock()
    })
    defer stop()
    for q.r.IsEmpty() {
        if err := ctx.Err(); err != nil {
            var zero T
            return zero, err
        }
        q.cv.Wait()
    }
    return q.take(), nil
}

// TryPop removes and returns the head value without blocking.
// Returns (zero, ErrWouldBlock) when the queue is empty.
func (q *Queue[T]) TryPop() (T, error) {
    q.mu.Lock()
    defer q.mu.Unlock()
    if q.r.IsEmpty() {
        var zero T
        return zero, ErrWouldBlock
    }
    return q.take(), nil
}

// Peek returns the head value without removing it. ok is false when empty.
func (q *Queue[T]) Peek() (v T, ok bool) {
    q.mu.Lock()
    v, ok = q.r.Peek()
    q.mu.Unlock()
    return
}

// Count returns the number of elements currently queued.
func (q *Queue[T]) Count() int {
    q.mu.Lock()
    n := q.r.Len()
    q.mu.Unlock()
    return n
}

// Capacity returns the fixed maximum number of elements. It takes no lock.
func (q *Queue[T]) Capacity() int { return q.capacity }

// Clear removes all elements from the queue. Cleared elements are not
// counted as dropped.
func (q *Queue[T]) Clear() {
    q.mu.Lock()
    q.r.Clear()
    q.mu.Unlock()
}

// Snapshot returns a copy of the queued elements, oldest first.
func (q *Queue[T]) Snapshot() []T {
    q.mu.Lock()
    defer q.mu.Unlock()
    return q.r.ToSlice()
}

// String renders the queue as "[e1,e2,...]", or "Queue is empty".
func (q *Queue[T]) String() string {
    q.mu.Lock()
    defer q.mu.Unlock()
    if q.r.IsEmpty() {
        return "Queue is empty"
    }
    var sb strings.Builder
    sb.WriteByte('[')
    i := 0
    for v := range q.r.All() {
        if i > 0 {
            sb.WriteByte(',')
        }
        fmt.Fprint(&sb, v)
        i++
    }
    sb.WriteByte(']')
    return sb.String()
}

// Stats returns the lifetime counters. It takes no lock, so counters read
// while other goroutines operate on the queue may be mutually inconsistent.
func (q *Queue[T]) Stats() Stats {
    return Stats{
        Pushed:   q.stats.pushed.LoadAcquire(),
        Popped:   q.stats.popped.LoadAcquire(),
        Dropped:  q.stats.dropped.LoadAcquire(),
        Timeouts: q.stats.timeouts.LoadAcquire(),
    }
}
