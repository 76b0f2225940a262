package channel_utils

import "sync"

// MergeChannels fans every input channel into a single output channel,
// closing it once all inputs are exhausted. The output is unbuffered, so
// consumers exert backpressure on the drains.
//
// Drains run on dedicated goroutines, never on a shared bounded pool: a
// drain parks until the consumer reads, and parking pool workers on that
// wait can exhaust the pool before the consumer starts.
func MergeChannels[T any](inputs ...<-chan T) <-chan T {
	merged := make(chan T)

	var pending sync.WaitGroup
	pending.Add(len(inputs))

	for _, input := range inputs {
		input := input
		go func() {
			defer pending.Done()
			for value := range input {
				merged <- value
			}
		}()
	}

	go func() {
		pending.Wait()
		close(merged)
	}()

	return merged
}
