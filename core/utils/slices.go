package utils

// Chunk splits items into consecutive batches of at most size elements.
// Order is preserved and only the last batch may be shorter. A non-positive
// size yields a single batch.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		size = len(items)
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end:end])
	}
	return batches
}

// Sum adds up a slice of integers.
func Sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
