package inventory

// List holds the takeoff items, newest first.
type List struct {
	items []Item
}

func NewList() *List {
	return &List{}
}

// Add stores a new item built from draft at the front of the list.
func (l *List) Add(d Draft) Item {
	it := d.item()
	l.items = append([]Item{it}, l.items...)
	return it
}

// Remove deletes the item with id and reports whether it existed.
func (l *List) Remove(id string) bool {
	for i, it := range l.items {
		if it.ID == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// AdjustQty changes an item's quantity by delta, never going below 1.
func (l *List) AdjustQty(id string, delta int) bool {
	for i := range l.items {
		if l.items[i].ID != id {
			continue
		}
		qty := l.items[i].Qty + delta
		if qty < 1 {
			qty = 1
		}
		l.items[i].Qty = qty
		return true
	}
	return false
}

// Get returns the item with id.
func (l *List) Get(id string) (Item, bool) {
	for _, it := range l.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func (l *List) Clear() {
	l.items = nil
}

// Items returns a copy of the items, newest first.
func (l *List) Items() []Item {
	if len(l.items) == 0 {
		return nil
	}
	dup := make([]Item, len(l.items))
	copy(dup, l.items)
	return dup
}

func (l *List) Len() int {
	return len(l.items)
}

// TotalQty sums the quantities of every item.
func (l *List) TotalQty() int {
	total := 0
	for _, it := range l.items {
		total += it.Qty
	}
	return total
}
