package gallery

import "testing"

func TestLightbox_OpenShowsCurrentMainImage(t *testing.T) {
	g := New("/img/notebook-1.jpg", testThumbs())
	keys := NewKeyboard()
	lb := NewLightbox(g, keys)

	o := lb.Open()
	if o == nil {
		t.Fatal("expected an overlay")
	}
	if got := o.Source(); got != "/img/notebook-1.jpg" {
		t.Errorf("overlay source = %q", got)
	}

	// A later open reflects the gallery's new main image.
	o.Click()
	g.Select("t3")
	o2 := lb.Open()
	if got := o2.Source(); got != "/img/notebook-3.jpg" {
		t.Errorf("second overlay source = %q", got)
	}
}

func TestLightbox_InertWithoutMainImage(t *testing.T) {
	keys := NewKeyboard()

	if o := NewLightbox(nil, keys).Open(); o != nil {
		t.Error("nil gallery must be inert")
	}
	if o := NewLightbox(New("", nil), keys).Open(); o != nil {
		t.Error("empty main image must be inert")
	}
	if keys.Subscribers() != 0 {
		t.Error("inert opens must not subscribe to keys")
	}
}

func TestOverlay_CloseOnClick(t *testing.T) {
	g := New("/img/notebook-1.jpg", testThumbs())
	keys := NewKeyboard()

	o := NewLightbox(g, keys).Open()
	closes := 0
	o.OnClose(func() { closes++ })

	o.Click()
	if !o.Closed() {
		t.Fatal("overlay still open after click")
	}
	if closes != 1 {
		t.Errorf("close handlers ran %d times, want 1", closes)
	}

	// Clicking a dead overlay does nothing.
	o.Click()
	if closes != 1 {
		t.Errorf("close handlers re-ran on dead overlay: %d", closes)
	}
}

func TestOverlay_CloseOnEscape(t *testing.T) {
	g := New("/img/notebook-1.jpg", testThumbs())
	keys := NewKeyboard()

	o := NewLightbox(g, keys).Open()
	closes := 0
	o.OnClose(func() { closes++ })

	keys.Press("Enter")
	if o.Closed() {
		t.Fatal("non-Escape key closed the overlay")
	}

	keys.Press(KeyEscape)
	if !o.Closed() {
		t.Fatal("Escape did not close the overlay")
	}

	// The key subscription must be gone: another Escape is a no-op and the
	// dispatcher holds no stale listener.
	keys.Press(KeyEscape)
	if closes != 1 {
		t.Errorf("close logic ran %d times, want exactly 1", closes)
	}
	if keys.Subscribers() != 0 {
		t.Errorf("dispatcher still holds %d subscriptions after close", keys.Subscribers())
	}
}

func TestOverlay_NoListenerAccumulationAcrossOpens(t *testing.T) {
	g := New("/img/notebook-1.jpg", testThumbs())
	keys := NewKeyboard()
	lb := NewLightbox(g, keys)

	for i := 0; i < 5; i++ {
		o := lb.Open()
		if i%2 == 0 {
			o.Click()
		} else {
			keys.Press(KeyEscape)
		}
	}

	if keys.Subscribers() != 0 {
		t.Errorf("%d stale key subscriptions after repeated opens", keys.Subscribers())
	}
}

func TestOverlay_EscapeOnlyClosesOpenOverlay(t *testing.T) {
	g := New("/img/notebook-1.jpg", testThumbs())
	keys := NewKeyboard()
	lb := NewLightbox(g, keys)

	first := lb.Open()
	first.Click()

	second := lb.Open()
	keys.Press(KeyEscape)

	if !second.Closed() {
		t.Error("Escape did not close the open overlay")
	}
	if keys.Subscribers() != 0 {
		t.Errorf("%d subscriptions left", keys.Subscribers())
	}
}
