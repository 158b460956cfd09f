package tensor

// T3 is a dense 3-index float64 table backed by one row-major buffer.
//
// Layout: cell (i,j,k) lives at data[(i·d2+j)·d3+k].
type T3 struct {
	d1, d2, d3 int
	data       []float64
}

// NewT3 allocates a zeroed d1×d2×d3 table.
// To cover inclusive bounds 0..max, pass max+1 for that axis.
func NewT3(d1, d2, d3 int) *T3 {
	return &T3{d1: d1, d2: d2, d3: d3, data: make([]float64, d1*d2*d3)}
}

// At returns the cell value at (i,j,k).
func (t *T3) At(i, j, k int) float64 {
	return t.data[(i*t.d2+j)*t.d3+k]
}

// Set stores v at (i,j,k).
func (t *T3) Set(i, j, k int, v float64) {
	t.data[(i*t.d2+j)*t.d3+k] = v
}

// Dims returns the axis lengths (d1, d2, d3).
func (t *T3) Dims() (int, int, int) {
	return t.d1, t.d2, t.d3
}

// Fill sets every cell to v.
func (t *T3) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// T4 is a dense 4-index float64 table backed by one row-major buffer.
//
// Layout: cell (i,j,k,l) lives at data[((i·d2+j)·d3+k)·d4+l].
type T4 struct {
	d1, d2, d3, d4 int
	data           []float64
}

// NewT4 allocates a zeroed d1×d2×d3×d4 table.
func NewT4(d1, d2, d3, d4 int) *T4 {
	return &T4{d1: d1, d2: d2, d3: d3, d4: d4, data: make([]float64, d1*d2*d3*d4)}
}

// At returns the cell value at (i,j,k,l).
func (t *T4) At(i, j, k, l int) float64 {
	return t.data[((i*t.d2+j)*t.d3+k)*t.d4+l]
}

// Set stores v at (i,j,k,l).
func (t *T4) Set(i, j, k, l int, v float64) {
	t.data[((i*t.d2+j)*t.d3+k)*t.d4+l] = v
}

// Add accumulates v into the cell at (i,j,k,l).
func (t *T4) Add(i, j, k, l int, v float64) {
	t.data[((i*t.d2+j)*t.d3+k)*t.d4+l] += v
}

// Dims returns the axis lengths (d1, d2, d3, d4).
func (t *T4) Dims() (int, int, int, int) {
	return t.d1, t.d2, t.d3, t.d4
}

// I3 is a dense 3-index int table backed by one row-major buffer.
type I3 struct {
	d1, d2, d3 int
	data       []int
}

// NewI3 allocates a zeroed d1×d2×d3 int table.
func NewI3(d1, d2, d3 int) *I3 {
	return &I3{d1: d1, d2: d2, d3: d3, data: make([]int, d1*d2*d3)}
}

// At returns the cell value at (i,j,k).
func (t *I3) At(i, j, k int) int {
	return t.data[(i*t.d2+j)*t.d3+k]
}

// Set stores v at (i,j,k).
func (t *I3) Set(i, j, k int, v int) {
	t.data[(i*t.d2+j)*t.d3+k] = v
}

// Dims returns the axis lengths (d1, d2, d3).
func (t *I3) Dims() (int, int, int) {
	return t.d1, t.d2, t.d3
}

// Clone returns an independent deep copy of the table.
func (t *I3) Clone() *I3 {
	c := &I3{d1: t.d1, d2: t.d2, d3: t.d3, data: make([]int, len(t.data))}
	copy(c.data, t.data)
	return c
}

// Equal reports whether both tables have identical dimensions and cells.
func (t *I3) Equal(o *I3) bool {
	if o == nil || t.d1 != o.d1 || t.d2 != o.d2 || t.d3 != o.d3 {
		return false
	}
	for i := range t.data {
		if t.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
