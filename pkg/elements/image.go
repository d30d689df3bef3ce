package elements

import (
	"image"

	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/reactive"
)

// Image shows a bitmap, such as a gradient or curve preview.
type Image struct {
	core.ElementBase
	image         *reactive.Property[image.Image]
	Width, Height int
}

// NewImage returns an image element sized width x height.
func NewImage(img image.Image, width, height int) *Image {
	return &Image{
		image:  reactive.NewPropertyWithEquality(img, func(a, b image.Image) bool { return a == b }),
		Width:  width,
		Height: height,
	}
}

// Image returns the observed bitmap.
func (i *Image) Image() *reactive.Property[image.Image] { return i.image }

// Window is a self-contained tree shown in a separate surface.
type Window struct {
	core.ElementBase
	Title string
}

// NewWindow returns a window holding content.
func NewWindow(title string, content core.Element) *Window {
	w := &Window{Title: title}
	core.AppendChild(w, content)
	return w
}

// Content returns the window body, or nil.
func (w *Window) Content() core.Element {
	if c := w.Children(); len(c) > 0 {
		return c[0]
	}
	return nil
}

// WindowLauncher owns a lazily built window. The window becomes a child
// of the launcher while open, so it is synchronized with the tree.
type WindowLauncher struct {
	core.ElementBase
	Title  string
	build  func() core.Element
	window *Window
}

// NewWindowLauncher returns a launcher whose window content comes from
// build on every Open.
func NewWindowLauncher(title string, build func() core.Element) *WindowLauncher {
	return &WindowLauncher{Title: title, build: build}
}

// Open builds the window if it is not open yet and returns it.
func (l *WindowLauncher) Open() *Window {
	if l.window != nil && !l.window.IsDetached() {
		return l.window
	}
	l.window = NewWindow(l.Title, core.SafeBuild(nil, l.build))
	core.AppendChild(l, l.window)
	return l.window
}

// Close detaches the window.
func (l *WindowLauncher) Close() {
	if l.window == nil {
		return
	}
	l.window.Detach()
	l.window = nil
}

// IsOpen reports whether the window is showing.
func (l *WindowLauncher) IsOpen() bool {
	return l.window != nil && !l.window.IsDetached()
}

// Window returns the open window, or nil.
func (l *WindowLauncher) Window() *Window {
	if !l.IsOpen() {
		return nil
	}
	return l.window
}

// DisplayValue returns the launcher title.
func (l *WindowLauncher) DisplayValue() string { return l.Title }
