package chartkit

import "container/list"

type labelKey struct {
	font Font
	text string
}

// labelCache is a bounded least-recently-used cache of rendered tick labels.
// The key includes the exact label text, so a hit can never hand back a
// rendering of different text. Style changes (font, color, rotation) must
// clear the whole cache; see Axis.invalidateLabelCache.
type labelCache struct {
	capacity int
	entries  map[labelKey]*list.Element
	order    *list.List
}

type labelEntry struct {
	key   labelKey
	label Label
}

func newLabelCache(capacity int) *labelCache {
	if capacity < 1 {
		capacity = 1
	}
	return &labelCache{
		capacity: capacity,
		entries:  make(map[labelKey]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *labelCache) get(key labelKey) (Label, bool) {
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*labelEntry).label, true
}

func (c *labelCache) put(key labelKey, label Label) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*labelEntry).label = label
		c.order.MoveToFront(el)
		return
	}
	c.entries[key] = c.order.PushFront(&labelEntry{key: key, label: label})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*labelEntry).key)
	}
}

func (c *labelCache) clear() {
	c.entries = make(map[labelKey]*list.Element, c.capacity)
	c.order.Init()
}

func (c *labelCache) len() int {
	return c.order.Len()
}
