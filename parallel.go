package diversity

import "sync"

// PdistParallel computes the same condensed distance vector as Pdist using
// multiple goroutines. numWorkers controls the degree of parallelism; if
// <= 1, it falls back to the single-threaded Pdist.
//
// Rows are split into contiguous ranges, one range per worker; worker w
// computes fn(counts[i], counts[j]) for all j > i in its range. Condensed
// slots for distinct rows never overlap, so no synchronization is needed
// for writes and the result is bitwise identical to Pdist.
func PdistParallel(counts [][]float64, fn DistanceFunc, numWorkers int) ([]float64, error) {
	n := len(counts)
	if numWorkers <= 1 || n <= 1 {
		return Pdist(counts, fn)
	}

	out := make([]float64, condensedLen(n))

	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				base := condensedIndex(n, i, i+1)
				for j := i + 1; j < n; j++ {
					out[base+j-i-1] = fn(counts[i], counts[j])
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return out, nil
}
