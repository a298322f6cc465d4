package cleave

// forkJoin runs fa and fb to completion and returns both results. When
// the pool has a free slot, fb runs on a new goroutine while fa runs on
// the calling goroutine; otherwise both run inline, in order. Either
// way forkJoin blocks until both tasks have finished.
//
// A panic in either task is captured as a *PanicError and surfaces as
// the returned error; it is never swallowed. When both tasks fail, the
// left task's error wins, keeping fault selection deterministic.
func forkJoin[A, B any](w *Workers, fa func() (A, error), fb func() (B, error)) (A, B, error) {
	var (
		bVal B
		bErr error
	)

	if w != nil && w.TryAcquire() {
		done := make(chan struct{})
		go func() {
			defer close(done)
			defer w.Release()
			bVal, bErr = runRecovered(fb)
		}()

		aVal, aErr := runRecovered(fa)
		<-done

		if aErr != nil {
			return aVal, bVal, aErr
		}
		return aVal, bVal, bErr
	}

	aVal, aErr := runRecovered(fa)
	bVal, bErr = runRecovered(fb)
	if aErr != nil {
		return aVal, bVal, aErr
	}
	return aVal, bVal, bErr
}
