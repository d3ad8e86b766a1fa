package eviction

// EphemeralFIFOPolicy is a FIFO policy whose entries survive exactly one
// read: a successful Get removes the entry before returning it. Peek and
// Keys observe entries without consuming them.
type EphemeralFIFOPolicy struct {
	*FIFOPolicy
}

// NewEphemeralFIFO creates an ephemeral FIFO policy with the given capacity.
func NewEphemeralFIFO(capacity int) (*EphemeralFIFOPolicy, error) {
	fifo, err := NewFIFO(capacity)
	if err != nil {
		return nil, err
	}
	return &EphemeralFIFOPolicy{FIFOPolicy: fifo}, nil
}

// Get retrieves a value and removes the entry, so a second Get of the
// same key reports absence.
func (e *EphemeralFIFOPolicy) Get(key string) (any, bool) {
	value, ok := e.entries.Get(key)
	if !ok {
		return nil, false
	}
	e.entries.Delete(key)
	return value, true
}
