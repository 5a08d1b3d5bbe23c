package parallel

// A partition divides an index range [0, count) into a fixed number of
// contiguous chunks whose sizes differ by at most one. The count%chunks
// larger chunks come first, so that chunk boundaries are a closed-form
// function of the chunk number.
type partition struct {
	fraction int
	leftover int
}

func newPartition(count, chunks int) partition {
	return partition{
		fraction: count / chunks,
		leftover: count % chunks,
	}
}

// at returns the half-open index range of the given chunk.
func (p partition) at(chunk int) (low, high int) {
	if chunk < p.leftover {
		low = (p.fraction + 1) * chunk
		return low, low + p.fraction + 1
	}
	low = (p.fraction+1)*p.leftover + p.fraction*(chunk-p.leftover)
	return low, low + p.fraction
}
