package chartkit

import "testing"

func TestLabelCacheEvictsOldest(t *testing.T) {
	c := newLabelCache(2)
	f := Font{Size: 10}
	c.put(labelKey{font: f, text: "a"}, testLabel{})
	c.put(labelKey{font: f, text: "b"}, testLabel{})
	c.put(labelKey{font: f, text: "c"}, testLabel{})
	if c.len() != 2 {
		t.Fatalf("len = %d, want 2", c.len())
	}
	if _, ok := c.get(labelKey{font: f, text: "a"}); ok {
		t.Fatal("oldest entry survived eviction")
	}
	if _, ok := c.get(labelKey{font: f, text: "c"}); !ok {
		t.Fatal("newest entry missing")
	}
}

func TestLabelCacheGetRefreshesRecency(t *testing.T) {
	c := newLabelCache(2)
	f := Font{Size: 10}
	c.put(labelKey{font: f, text: "a"}, testLabel{})
	c.put(labelKey{font: f, text: "b"}, testLabel{})
	c.get(labelKey{font: f, text: "a"})
	c.put(labelKey{font: f, text: "c"}, testLabel{})
	if _, ok := c.get(labelKey{font: f, text: "a"}); !ok {
		t.Fatal("recently used entry was evicted")
	}
	if _, ok := c.get(labelKey{font: f, text: "b"}); ok {
		t.Fatal("least recently used entry survived")
	}
}

func TestLabelCacheKeyIncludesFont(t *testing.T) {
	c := newLabelCache(4)
	small := labelKey{font: Font{Size: 10}, text: "5"}
	big := labelKey{font: Font{Size: 20}, text: "5"}
	c.put(small, testLabel{size: Pt(7, 12)})
	if _, ok := c.get(big); ok {
		t.Fatal("different font hit the same entry")
	}
}

func TestLabelCacheClear(t *testing.T) {
	c := newLabelCache(4)
	c.put(labelKey{font: Font{Size: 10}, text: "x"}, testLabel{})
	c.clear()
	if c.len() != 0 {
		t.Fatalf("len after clear = %d", c.len())
	}
}
