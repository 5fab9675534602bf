package driver

// NoAccumulator reports that Select was called with a Context carrying no
// Accumulator.
type NoAccumulator struct{}

func (e *NoAccumulator) Error() string {
	return "driver: select: context has no accumulator"
}
