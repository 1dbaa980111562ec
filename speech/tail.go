package speech

import "sync"

// stderrLimit bounds how much diagnostic output is kept from a recognizer.
const stderrLimit = 4 << 10

// tailWriter is an io.Writer that keeps the last max bytes written. It is
// safe for concurrent use.
type tailWriter struct {
	mu  sync.Mutex
	buf []byte
	max int
}

func newTailWriter(max int) *tailWriter {
	return &tailWriter{max: max}
}

func (w *tailWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	if len(w.buf) > w.max {
		// Copy to release the old backing array.
		trimmed := make([]byte, w.max)
		copy(trimmed, w.buf[len(w.buf)-w.max:])
		w.buf = trimmed
	}
	return len(p), nil
}

// String returns the retained tail.
func (w *tailWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return string(w.buf)
}
