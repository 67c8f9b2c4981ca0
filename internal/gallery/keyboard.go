package gallery

// Key identifies a keyboard key by its event name.
type Key string

// KeyEscape closes an open overlay.
const KeyEscape Key = "Escape"

// Keyboard fans key presses out to subscribers. It stands in for the page's
// keydown listener: components subscribe while they need keys and must
// cancel when done, so closed overlays never see another press.
type Keyboard struct {
	subs map[int]func(Key)
	next int
}

// NewKeyboard creates an empty dispatcher.
func NewKeyboard() *Keyboard {
	return &Keyboard{subs: make(map[int]func(Key))}
}

// Press delivers a key to every current subscriber.
func (k *Keyboard) Press(key Key) {
	for _, fn := range k.subs {
		fn(key)
	}
}

// Subscribe registers a handler and returns its cancel function.
// Cancel is idempotent.
func (k *Keyboard) Subscribe(fn func(Key)) (cancel func()) {
	id := k.next
	k.next++
	k.subs[id] = fn

	return func() {
		delete(k.subs, id)
	}
}

// Subscribers returns the number of live subscriptions.
func (k *Keyboard) Subscribers() int {
	return len(k.subs)
}
