package pricing

// CostItem is a named cost entry in a model's ledger.
type CostItem struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// Ledger is the mutable, ordered list of cost entries feeding a pricing
// model. Insertion order is display order only; it carries no computational
// meaning.
type Ledger []CostItem

// Add appends an entry to the ledger.
func (l *Ledger) Add(item CostItem) {
	*l = append(*l, item)
}

// RemoveAt deletes the entry at index i, preserving order.
// Out-of-range indexes are ignored.
func (l *Ledger) RemoveAt(i int) {
	if i < 0 || i >= len(*l) {
		return
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
}

// UpdateAt replaces the entry at index i.
// Out-of-range indexes are ignored.
func (l *Ledger) UpdateAt(i int, item CostItem) {
	if i < 0 || i >= len(*l) {
		return
	}
	(*l)[i] = item
}

// Total sums the cost of every entry.
func (l Ledger) Total() float64 {
	total := 0.0
	for _, item := range l {
		total += item.Cost
	}
	return total
}

func validLedger(name string, l Ledger) error {
	for i, item := range l {
		if err := validFinite(name, item.Cost); err != nil {
			return invalidInputf("%s[%d] (%s) cost must be a finite non-negative number", name, i, item.Name)
		}
	}
	return nil
}
