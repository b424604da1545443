package diag

import (
	"fmt"
	"sort"
)

// Bag накапливает маркеры с верхним пределом.
type Bag struct {
	items []Marker
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Marker, 0, max),
		max:   uint16(max),
	}
}

// Add добавляет маркер, учитывая лимит.
// Возвращает false, если маркер не добавлен (достигнут лимит).
func (b *Bag) Add(m Marker) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, m)
	return true
}

// HasErrors возвращает true, если есть хотя бы один маркер с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы один маркер с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice маркеров.
// ВАЖНО: не модифицируйте возвращаемый срез!
func (b *Bag) Items() []Marker {
	return b.items
}

// Sort сортирует маркеры по позиции, затем severity (desc), затем коду
// для стабильного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		mi, mj := b.items[i], b.items[j]
		if mi.StartLine != mj.StartLine {
			return mi.StartLine < mj.StartLine
		}
		if mi.StartCol != mj.StartCol {
			return mi.StartCol < mj.StartCol
		}
		if mi.Severity != mj.Severity {
			return mi.Severity > mj.Severity
		}
		return mi.Code < mj.Code
	})
}

// простая дедупликация (по Code+позиции)
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Marker, 0, len(b.items))
	for _, m := range b.items {
		key := fmt.Sprintf("%s:%d:%d:%d:%d", m.Code, m.StartLine, m.StartCol, m.EndLine, m.EndCol)
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, m)
	}
	b.items = newitems
}
