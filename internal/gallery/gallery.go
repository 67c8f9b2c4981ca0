// Package gallery models the product page's image interactions: the
// thumbnail-driven main image, the zoom overlay, and the thumbnail strip
// scroller. State lives here explicitly so the invariants (single selected
// thumbnail, no stale key listeners) are enforced by the types rather than
// by sweeping over page elements.
package gallery

// Thumbnail is one selectable gallery thumbnail carrying its image source.
type Thumbnail struct {
	ID     string
	Source string
}

// SwapEvent is emitted when a thumbnail selection changes the main image.
type SwapEvent struct {
	ThumbnailID string
	Source      string
}

// Gallery tracks the main display image and which thumbnail is selected.
// Selection is a single field, so at most one thumbnail is ever selected.
type Gallery struct {
	thumbs     []Thumbnail
	mainSource string
	selectedID string
	onSwap     []func(SwapEvent)
}

// New creates a gallery showing mainSource with the given thumbnails.
// No thumbnail starts selected.
func New(mainSource string, thumbs []Thumbnail) *Gallery {
	return &Gallery{
		thumbs:     thumbs,
		mainSource: mainSource,
	}
}

// Select makes the thumbnail with the given ID the selected one and swaps
// the main image to its source. Unknown IDs are ignored; the previous
// selection and main image stay as they were.
func (g *Gallery) Select(id string) bool {
	for _, t := range g.thumbs {
		if t.ID != id {
			continue
		}

		g.selectedID = t.ID
		g.mainSource = t.Source

		ev := SwapEvent{ThumbnailID: t.ID, Source: t.Source}
		for _, fn := range g.onSwap {
			fn(ev)
		}
		return true
	}
	return false
}

// SelectedID returns the selected thumbnail's ID, empty when none is.
func (g *Gallery) SelectedID() string {
	return g.selectedID
}

// MainSource returns the current main image source.
func (g *Gallery) MainSource() string {
	return g.mainSource
}

// Thumbnails returns the thumbnails in display order.
func (g *Gallery) Thumbnails() []Thumbnail {
	return g.thumbs
}

// OnSwap registers a handler invoked after every main image swap.
func (g *Gallery) OnSwap(fn func(SwapEvent)) {
	g.onSwap = append(g.onSwap, fn)
}
