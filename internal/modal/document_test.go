package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	assert.True(t, r.Contains(Point{X: 2, Y: 3}))
	assert.True(t, r.Contains(Point{X: 5, Y: 4}))
	assert.False(t, r.Contains(Point{X: 6, Y: 4}), "right edge is exclusive")
	assert.False(t, r.Contains(Point{X: 2, Y: 5}), "bottom edge is exclusive")
	assert.False(t, r.Contains(Point{X: 1, Y: 3}))
	assert.True(t, Rect{}.Empty())
}

func TestDocument_DispatchInRegistrationOrder(t *testing.T) {
	doc := NewDocument()
	var got []string
	doc.OnPointerDown(func(Point) { got = append(got, "first") })
	doc.OnPointerDown(func(Point) { got = append(got, "second") })

	doc.DispatchPointerDown(Point{})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestSubscription_ReleaseIsIdempotent(t *testing.T) {
	doc := NewDocument()
	calls := 0
	sub := doc.OnPointerDown(func(Point) { calls++ })
	other := doc.OnPointerDown(func(Point) {})

	sub.Release()
	sub.Release()
	doc.DispatchPointerDown(Point{})

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, doc.Listeners())

	other.Release()
	assert.Equal(t, 0, doc.Listeners())
}

func TestSubscription_ReleaseDuringDispatch(t *testing.T) {
	doc := NewDocument()
	var sub *Subscription
	calls := 0
	sub = doc.OnPointerDown(func(Point) {
		calls++
		sub.Release()
	})

	doc.DispatchPointerDown(Point{})
	doc.DispatchPointerDown(Point{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, doc.Listeners())
}

func TestSubscription_NilRelease(t *testing.T) {
	var sub *Subscription
	assert.NotPanics(t, sub.Release)
}
