package gallery

import "testing"

func testThumbs() []Thumbnail {
	return []Thumbnail{
		{ID: "t1", Source: "/img/notebook-1.jpg"},
		{ID: "t2", Source: "/img/notebook-2.jpg"},
		{ID: "t3", Source: "/img/notebook-3.jpg"},
	}
}

func TestGallery_Select(t *testing.T) {
	g := New("/img/notebook-1.jpg", testThumbs())

	if got := g.SelectedID(); got != "" {
		t.Errorf("expected no initial selection, got %q", got)
	}

	if !g.Select("t2") {
		t.Fatal("Select returned false for a known thumbnail")
	}
	if got := g.MainSource(); got != "/img/notebook-2.jpg" {
		t.Errorf("main source = %q, want thumbnail source", got)
	}
	if got := g.SelectedID(); got != "t2" {
		t.Errorf("selected = %q, want t2", got)
	}

	// Selecting another thumbnail moves the single selection.
	g.Select("t3")
	if got := g.SelectedID(); got != "t3" {
		t.Errorf("selected = %q, want t3", got)
	}
	if got := g.MainSource(); got != "/img/notebook-3.jpg" {
		t.Errorf("main source = %q, want t3 source", got)
	}
}

func TestGallery_SelectUnknownID(t *testing.T) {
	g := New("/img/notebook-1.jpg", testThumbs())
	g.Select("t2")

	if g.Select("nope") {
		t.Error("Select returned true for an unknown thumbnail")
	}
	if got := g.SelectedID(); got != "t2" {
		t.Errorf("unknown ID must not move selection, got %q", got)
	}
	if got := g.MainSource(); got != "/img/notebook-2.jpg" {
		t.Errorf("unknown ID must not swap the main image, got %q", got)
	}
}

func TestGallery_Empty(t *testing.T) {
	g := New("/img/main.jpg", nil)

	if g.Select("anything") {
		t.Error("Select on an empty gallery must be a no-op")
	}
	if got := g.MainSource(); got != "/img/main.jpg" {
		t.Errorf("main source changed on empty gallery: %q", got)
	}
}

func TestGallery_OnSwap(t *testing.T) {
	g := New("/img/notebook-1.jpg", testThumbs())

	var events []SwapEvent
	g.OnSwap(func(ev SwapEvent) { events = append(events, ev) })

	g.Select("t2")
	g.Select("nope")
	g.Select("t2")

	if len(events) != 2 {
		t.Fatalf("expected 2 swap events, got %d", len(events))
	}
	if events[0].ThumbnailID != "t2" || events[0].Source != "/img/notebook-2.jpg" {
		t.Errorf("unexpected event: %+v", events[0])
	}
}
