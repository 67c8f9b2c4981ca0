package gallery

// FallbackItemWidth is used when the strip has no items to measure.
const FallbackItemWidth = 120

// ScrollRequest is one scroll instruction for the thumbnail strip. Smooth
// requests are animated by the presentation layer and are fire-and-forget:
// nothing waits on them.
type ScrollRequest struct {
	Delta  int
	Smooth bool
}

// Carousel scrolls a horizontal thumbnail strip one item width at a time.
// The item width is measured once, from the first item at construction.
type Carousel struct {
	itemWidth int
	offset    int
	maxOffset int
}

// NewCarousel builds a carousel for a strip with the given item widths
// inside a viewport. The step is the first item's width, or
// FallbackItemWidth for an empty strip.
func NewCarousel(itemWidths []int, viewportWidth int) *Carousel {
	itemWidth := FallbackItemWidth
	if len(itemWidths) > 0 && itemWidths[0] > 0 {
		itemWidth = itemWidths[0]
	}

	content := 0
	for _, w := range itemWidths {
		content += w
	}

	maxOffset := content - viewportWidth
	if maxOffset < 0 {
		maxOffset = 0
	}

	return &Carousel{itemWidth: itemWidth, maxOffset: maxOffset}
}

// ItemWidth returns the measured scroll step.
func (c *Carousel) ItemWidth() int {
	return c.itemWidth
}

// Offset returns the strip's current scroll offset.
func (c *Carousel) Offset() int {
	return c.offset
}

// Next scrolls one item width toward the end of the strip.
func (c *Carousel) Next() ScrollRequest {
	return c.scrollBy(c.itemWidth)
}

// Prev scrolls one item width toward the start of the strip.
func (c *Carousel) Prev() ScrollRequest {
	return c.scrollBy(-c.itemWidth)
}

// scrollBy issues the request and applies it to the tracked offset, clamped
// to the strip's bounds the way a real scroll container clamps.
func (c *Carousel) scrollBy(delta int) ScrollRequest {
	c.offset += delta
	if c.offset < 0 {
		c.offset = 0
	}
	if c.offset > c.maxOffset {
		c.offset = c.maxOffset
	}

	return ScrollRequest{Delta: delta, Smooth: true}
}
