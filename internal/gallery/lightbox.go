package gallery

// Lightbox opens zoom overlays for the gallery's main image. Every open
// creates a fresh overlay; the lightbox itself holds no overlay state.
type Lightbox struct {
	gallery *Gallery
	keys    *Keyboard
}

// NewLightbox creates a lightbox over the given gallery. A nil gallery makes
// the lightbox inert: Open always returns nil.
func NewLightbox(g *Gallery, keys *Keyboard) *Lightbox {
	return &Lightbox{gallery: g, keys: keys}
}

// Open creates an overlay showing the current main image at larger scale.
// Returns nil when there is no main image to show.
//
// The overlay subscribes to Escape for as long as it is open and drops the
// subscription the moment it closes, whichever path closes it. Repeated
// opens therefore never accumulate key listeners.
func (l *Lightbox) Open() *Overlay {
	if l.gallery == nil || l.gallery.MainSource() == "" {
		return nil
	}

	o := &Overlay{source: l.gallery.MainSource()}

	if l.keys != nil {
		o.cancelKey = l.keys.Subscribe(func(key Key) {
			if key == KeyEscape {
				o.close()
			}
		})
	}

	return o
}

// Overlay is one open zoom view. It closes on a click anywhere on it or on
// Escape, whichever comes first; afterwards it is dead and both paths are
// no-ops.
type Overlay struct {
	source    string
	closed    bool
	cancelKey func()
	onClose   []func()
}

// Source returns the image source the overlay displays.
func (o *Overlay) Source() string {
	return o.source
}

// Closed reports whether the overlay has been dismissed.
func (o *Overlay) Closed() bool {
	return o.closed
}

// Click dismisses the overlay. Clicks on an already-closed overlay do nothing.
func (o *Overlay) Click() {
	o.close()
}

// OnClose registers a handler invoked once when the overlay closes.
func (o *Overlay) OnClose(fn func()) {
	o.onClose = append(o.onClose, fn)
}

func (o *Overlay) close() {
	if o.closed {
		return
	}
	o.closed = true

	if o.cancelKey != nil {
		o.cancelKey()
		o.cancelKey = nil
	}

	for _, fn := range o.onClose {
		fn()
	}
	o.onClose = nil
}
