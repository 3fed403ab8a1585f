package pricing

import "github.com/google/uuid"

// Line is a priced catalog entry or request item as seen by the calculator.
type Line struct {
	ID         uuid.UUID
	PricePaise int64
	Active     bool
}

// Selection is the set of identifiers a customer picked. Identifiers that do
// not resolve to an eligible line are ignored.
type Selection struct {
	ItemIDs   []uuid.UUID
	AddonIDs  []uuid.UUID
	BundleIDs []uuid.UUID
}

// Cart is a Selection resolved against the request's items and the catalog.
type Cart struct {
	Items  []Line
	Addons []Line
	Bundle *Line
}

type Totals struct {
	Subtotal int64
	Addons   int64
	Bundles  int64
	Package  int64
	Tax      int64
	Total    int64
}

// Resolve keeps, in selection order, each selected item that belongs to the
// request, each selected active addon, and the first selected active bundle.
// Duplicate identifiers count once.
func Resolve(items []Line, sel Selection, addons, bundles []Line) Cart {
	var cart Cart
	cart.Items = pick(items, sel.ItemIDs, false)
	cart.Addons = pick(addons, sel.AddonIDs, true)
	if picked := pick(bundles, sel.BundleIDs, true); len(picked) > 0 {
		b := picked[0]
		cart.Bundle = &b
	}
	return cart
}

// Totals sums the cart and adds the fixed package charge. Prices are tax
// inclusive so Tax is always zero.
func (c Cart) Totals(packageCharge int64) Totals {
	var t Totals
	for _, it := range c.Items {
		t.Subtotal += it.PricePaise
	}
	for _, a := range c.Addons {
		t.Addons += a.PricePaise
	}
	if c.Bundle != nil {
		t.Bundles = c.Bundle.PricePaise
	}
	if packageCharge > 0 {
		t.Package = packageCharge
	}
	t.Total = t.Subtotal + t.Addons + t.Bundles + t.Package + t.Tax
	return t
}

// ComputeTotal resolves sel and returns the totals including packageCharge.
func ComputeTotal(items []Line, sel Selection, addons, bundles []Line, packageCharge int64) Totals {
	return Resolve(items, sel, addons, bundles).Totals(packageCharge)
}

func pick(lines []Line, ids []uuid.UUID, requireActive bool) []Line {
	if len(ids) == 0 || len(lines) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]Line, len(lines))
	for _, l := range lines {
		byID[l.ID] = l
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	var out []Line
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		l, ok := byID[id]
		if !ok || (requireActive && !l.Active) || l.PricePaise < 0 {
			continue
		}
		out = append(out, l)
	}
	return out
}
