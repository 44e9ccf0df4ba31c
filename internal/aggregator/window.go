package aggregator

// window is a fixed-capacity ring of run totals with a running sum.
type window struct {
	values []int
	idx    int
	count  int
	sum    int
}

func newWindow(capacity int) *window {
	if capacity <= 0 {
		capacity = 1
	}
	return &window{values: make([]int, capacity)}
}

// Push adds v, evicting the oldest value once the window is full.
func (w *window) Push(v int) {
	if w.count == len(w.values) {
		w.sum -= w.values[w.idx]
	} else {
		w.count++
	}
	w.values[w.idx] = v
	w.sum += v
	w.idx = (w.idx + 1) % len(w.values)
}

func (w *window) Full() bool { return w.count == len(w.values) }

func (w *window) Sum() int { return w.sum }
