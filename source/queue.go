package source

import (
	"sync"

	"github.com/dhamidi/kobol/data"
)

// Emit hands a token to the consumer. It returns false once the consumer
// has closed the queue, at which point the producer should stop.
type Emit func(tok *data.Token) bool

// Queue is a Source fed by a producer running on its own goroutine. Tokens
// travel over a bounded channel, so the producer blocks when it runs too far
// ahead and the consumer blocks until a token or the end of input arrives.
// Unread tokens stay on the consumer side.
type Queue struct {
	tokens chan *data.Token
	quit   chan struct{}
	done   chan struct{}
	once   sync.Once
	err    error
	pushed Buffer
}

// Go starts produce on a new goroutine and returns the queue it feeds. The
// error returned by produce is reported by Err once the queue is drained.
func Go(size int, produce func(emit Emit) error) *Queue {
	if size < 1 {
		size = 1
	}
	q := &Queue{
		tokens: make(chan *data.Token, size),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go func() {
		q.err = produce(q.emit)
		close(q.done)
		close(q.tokens)
	}()
	return q
}

func (q *Queue) emit(tok *data.Token) bool {
	select {
	case q.tokens <- tok:
		return true
	case <-q.quit:
		return false
	}
}

func (q *Queue) Next() *data.Token {
	if tok, ok := q.pushed.Pop(); ok {
		return tok
	}
	tok, ok := <-q.tokens
	if !ok {
		return nil
	}
	return tok
}

func (q *Queue) Unread(tok *data.Token) {
	q.pushed.Push(tok)
}

func (q *Queue) Err() error {
	select {
	case <-q.done:
		return q.err
	default:
		return nil
	}
}

// Close tells the producer to stop and releases its goroutine.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.quit)
	})
}
