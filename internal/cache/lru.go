package cache

// entry is a node in the doubly-linked recency list. It carries the key so
// the oldest entry can be deleted from the index map in O(1).
type entry[K comparable, V any] struct {
	key   K
	value V
	size  int64
	prev  *entry[K, V]
	next  *entry[K, V]
}

// recencyList orders entries by last use. The head is the most recently
// used entry, the tail the least recently used. Not safe for concurrent
// use; the owning Cache holds the lock.
type recencyList[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	len  int
}

// pushFront links e at the front.
func (l *recencyList[K, V]) pushFront(e *entry[K, V]) {
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.len++
}

// moveToFront marks e as most recently used.
func (l *recencyList[K, V]) moveToFront(e *entry[K, V]) {
	if e == l.head {
		return
	}
	l.unlink(e)
	l.pushFront(e)
}

// oldest returns the least recently used entry, or nil.
func (l *recencyList[K, V]) oldest() *entry[K, V] {
	return l.tail
}

func (l *recencyList[K, V]) clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// unlink removes e from the list.
func (l *recencyList[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}

	e.prev = nil
	e.next = nil
	l.len--
}
