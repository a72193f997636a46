package promise

// Result carries the outcome of an asynchronous task.
type Result[E any] struct {
	Value E
	Err   error
}

// Go runs task in its own goroutine and returns a channel that
// yields the single Result and is then closed.
func Go[E any](task func() (E, error)) <-chan Result[E] {
	resultCh := make(chan Result[E], 1)

	go func() {
		value, err := task()
		resultCh <- Result[E]{Value: value, Err: err}
		close(resultCh)
	}()

	return resultCh
}
