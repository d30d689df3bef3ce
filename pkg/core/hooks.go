package core

// Listenable is a value cell that accepts change listeners, such as
// reactive.Property.
type Listenable[T any] interface {
	AddListener(fn func(T)) (unsubscribe func())
}

// Listen subscribes fn to src for as long as e stays attached.
//
// Example:
//
//	core.Listen(preview, field.Value(), func(g rendering.Gradient) {
//	    preview.Regenerate(g)
//	})
func Listen[T any](e Element, src Listenable[T], fn func(T)) {
	unsub := src.AddListener(fn)
	e.OnDetach(unsub)
}

// UseDisposable ties the lifetime of d to e: d.Dispose runs when e is
// detached.
func UseDisposable[D Disposable](e Element, d D) D {
	e.OnDetach(d.Dispose)
	return d
}

// Disposable is implemented by resources that must be released.
type Disposable interface {
	Dispose()
}
