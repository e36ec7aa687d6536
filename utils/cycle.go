package utils

// CycleDetector remembers the hashes of recent generations to spot still lifes and
// short oscillators
type CycleDetector struct {
	size    int
	history []string
}

// NewCycleDetector keeps up to size recent hashes
func NewCycleDetector(size int) *CycleDetector {
	return &CycleDetector{size: max(1, size)}
}

// Observe checks hash against the remembered generations, then records it.
// It returns the period of the repeat (1 for a still life), or 0 if hash is new.
func (d *CycleDetector) Observe(hash string) (period int) {
	for i := len(d.history) - 1; i >= 0; i-- {
		if d.history[i] == hash {
			period = len(d.history) - i
			break
		}
	}

	d.history = append(d.history, hash)
	if len(d.history) > d.size {
		d.history = d.history[1:]
	}
	return period
}

// Reset forgets every recorded hash
func (d *CycleDetector) Reset() {
	d.history = nil
}
