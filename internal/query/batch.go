package query

// batches splits items into contiguous chunks of at most size elements. The
// last chunk may be shorter. Chunking preserves order, so concatenating
// per-chunk responses reproduces the submission order without re-sorting.
func batches[T any](items []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
