package feasibility

// indexDeque is a double-ended queue of prefix indices backed by one slice.
// Pushes only happen at the back and at most n+1 times per burst round, so a
// moving head over a pre-sized buffer gives O(1) operations with no
// reallocation; reset rewinds it for the next round.
type indexDeque struct {
	buf  []int
	head int
}

func newIndexDeque(capacity int) *indexDeque {
	return &indexDeque{buf: make([]int, 0, capacity)}
}

func (d *indexDeque) reset() {
	d.buf = d.buf[:0]
	d.head = 0
}

func (d *indexDeque) empty() bool { return d.head == len(d.buf) }
func (d *indexDeque) front() int  { return d.buf[d.head] }
func (d *indexDeque) back() int   { return d.buf[len(d.buf)-1] }

func (d *indexDeque) pushBack(i int) { d.buf = append(d.buf, i) }
func (d *indexDeque) popFront()      { d.head++ }
func (d *indexDeque) popBack()       { d.buf = d.buf[:len(d.buf)-1] }
