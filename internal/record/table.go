package record

import "slices"

// table 是按键唯一的记录集合，写入即按键覆盖
type table[K comparable, V any] struct {
	rows map[K]V
}

func newTable[K comparable, V any]() table[K, V] {
	return table[K, V]{rows: make(map[K]V)}
}

func (t *table[K, V]) put(key K, value V) (previous V, replaced bool) {
	previous, replaced = t.rows[key]
	t.rows[key] = value
	return previous, replaced
}

func (t *table[K, V]) get(key K) (V, bool) {
	value, ok := t.rows[key]
	return value, ok
}

func (t *table[K, V]) remove(key K) bool {
	if _, ok := t.rows[key]; !ok {
		return false
	}
	delete(t.rows, key)
	return true
}

func (t *table[K, V]) removeWhere(match func(V) bool) int {
	removed := 0
	for key, value := range t.rows {
		if match(value) {
			delete(t.rows, key)
			removed++
		}
	}
	return removed
}

func (t *table[K, V]) len() int {
	return len(t.rows)
}

func (t *table[K, V]) sorted(compare func(a, b V) int) []V {
	values := make([]V, 0, len(t.rows))
	for _, value := range t.rows {
		values = append(values, value)
	}
	slices.SortFunc(values, compare)
	return values
}
