package modal

import "sync"

// Point is a pointer position on the rendering surface.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned box. X+W and Y+H are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// PointerDownFunc handles a pointer-down event at a position.
type PointerDownFunc func(Point)

type listener struct {
	id uint64
	fn PointerDownFunc
}

// Document is the global pointer-down event source of a rendering surface.
// Listeners are invoked in registration order.
type Document struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []listener
}

// NewDocument creates a Document with no listeners.
func NewDocument() *Document {
	return &Document{}
}

// OnPointerDown registers fn and returns the subscription that removes it.
func (d *Document) OnPointerDown(fn PointerDownFunc) *Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	d.listeners = append(d.listeners, listener{id: d.nextID, fn: fn})
	return &Subscription{doc: d, id: d.nextID}
}

// DispatchPointerDown delivers a pointer-down event to every listener
// registered at the time of the call. Listeners may release themselves.
func (d *Document) DispatchPointerDown(p Point) {
	d.mu.Lock()
	snapshot := make([]listener, len(d.listeners))
	copy(snapshot, d.listeners)
	d.mu.Unlock()

	for _, l := range snapshot {
		l.fn(p)
	}
}

// Listeners returns the number of registered listeners.
func (d *Document) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

func (d *Document) remove(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Subscription is a registered pointer-down listener.
type Subscription struct {
	doc  *Document
	id   uint64
	once sync.Once
}

// Release removes the listener. It is safe to call more than once.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.doc.remove(s.id)
	})
}
