// Package progress defines the progress-update types shared between the
// convolution algorithms, the orchestration layer, and the CLI display.
package progress

// Update carries a single progress report from a running convolver.
type Update struct {
	// ConvolverIndex identifies which of the concurrently running
	// convolvers sent the update.
	ConvolverIndex int
	// Value is the completion fraction, 0.0 to 1.0.
	Value float64
}

// Callback receives completion fractions from a running algorithm.
type Callback func(value float64)

// ChannelCallback returns a Callback that forwards updates for the given
// convolver index onto ch without ever blocking the computation: when the
// channel buffer is full the update is dropped, since a newer value will
// follow.
func ChannelCallback(ch chan<- Update, index int) Callback {
	return func(value float64) {
		select {
		case ch <- Update{ConvolverIndex: index, Value: value}:
		default:
		}
	}
}
