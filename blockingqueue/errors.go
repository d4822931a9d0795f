package blockingqueue

import (
    "context"

    "code.hybscloud.com/iox"
    "github.com/pkg/errors"
)

// ErrTimeout is matched (via errors.Is) by the error PopWithTimeout returns
// when the queue stayed empty for the whole requested duration.
var ErrTimeout = errors.New("blockingqueue: timeout waiting for element")

// ErrWouldBlock is returned by TryPop when the queue is empty. It is a
// control flow signal, not a failure; it aliases iox.ErrWouldBlock.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrCanceled is returned by PopContext when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is returned by PopContext when the context deadline expires.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsTimeout reports whether err came from an expired PopWithTimeout.
func IsTimeout(err error) bool {
    return errors.Is(err, ErrTimeout)
}

// IsWouldBlock reports whether err indicates TryPop found the queue empty.
func IsWouldBlock(err error) bool {
    return iox.IsWouldBlock(err)
}

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
    return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
