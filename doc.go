// Package boundedqueue provides a generic fixed-capacity FIFO ring with a
// drop-oldest overflow policy.
//
// Ring is the storage core: Enqueue never fails, and when the ring is full the
// oldest element is evicted to make room for the new one. Ring does no
// locking of its own. For a concurrency-safe queue with blocking and timed
// consumption use the blockingqueue subpackage, which guards a Ring with a
// single mutex and a condition variable.
//
// # Blocking pattern
//
// The blockingqueue package follows the usual monitor pattern:
//   - Push signals one waiter after it stores an element.
//   - Consumers wait in a loop and re-test emptiness on every wakeup, so
//     spurious wakeups never return early.
//   - Deadlines and cancellation come from a context; a context.AfterFunc
//     broadcasts under the lock so timed waiters can observe expiry.
package boundedqueue
