// Package channels has small generic helpers for goroutines that consume a
// channel inside an errgroup.
package channels

type errGroupFunc = func() error

// Process reads each item from input and passes it to action. If action returns
// an error, it stops and returns that, otherwise it returns nil when input is
// closed.
func Process[T any](input <-chan T, action func(T) error) error {
	for item := range input {
		if err := action(item); err != nil {
			return err
		}
	}
	return nil
}

// Processor wraps Process to simplify errgroup setup
func Processor[T any](input <-chan T, action func(T) error) errGroupFunc {
	return func() error {
		return Process(input, action)
	}
}

// Forwarder returns a non-blocking sink that feeds output, dropping items when
// output is full. It suits observers that must never stall the producer.
func Forwarder[T any](output chan<- T) func(T) {
	return func(item T) {
		select {
		case output <- item:
		default:
		}
	}
}
