package category

import (
	"context"
	"sort"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// ParentStat is one root category's share of the grand total.
type ParentStat struct {
	Id      ulid.ULID       `json:"id"`
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
}

// ChildStat is one leaf category's amount and share of its root's total.
type ChildStat struct {
	Id      ulid.ULID       `json:"id"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
	IconURL string          `json:"iconUrl"`
}

type ChildGroup struct {
	ParentName string      `json:"parentName"`
	Children   []ChildStat `json:"children"`
}

// Breakdown is the two-level percentage tree produced by a rollup.
type Breakdown struct {
	ParentStats []ParentStat `json:"parentStats"`
	ChildStats  []ChildGroup `json:"childStats"`
}

// RollupResolver aggregates per-leaf-category amounts bottom-up into a
// parent/child percentage tree. It holds no state across calls.
type RollupResolver struct {
	Lookup Lookup
	Icons  IconResolver
}

func NewRollupResolver(lookup Lookup, icons IconResolver) *RollupResolver {
	return &RollupResolver{Lookup: lookup, Icons: icons}
}

type resolvedLeaf struct {
	leaf   *Category
	parent *Category
	amount decimal.Decimal
}

// Rollup resolves every category id in amounts, attributes each amount
// to exactly one leaf and one root, and computes percentages rounded to
// four decimal places before scaling to 0-100. A zero denominator
// yields a zero percentage. An id that does not resolve is returned as
// an error; nothing is skipped.
func (r *RollupResolver) Rollup(ctx context.Context, amounts map[ulid.ULID]decimal.Decimal) (*Breakdown, error) {
	if len(amounts) == 0 {
		return &Breakdown{ParentStats: []ParentStat{}, ChildStats: []ChildGroup{}}, nil
	}

	grandTotal := decimal.Zero
	leaves := make([]resolvedLeaf, 0, len(amounts))
	for id, amount := range amounts {
		leaf, err := r.Lookup.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		parent, err := r.Lookup.GetParent(ctx, id)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, resolvedLeaf{leaf: leaf, parent: parent, amount: amount})
		grandTotal = grandTotal.Add(amount)
	}

	byParent := make(map[ulid.ULID][]resolvedLeaf)
	parentOrder := make([]*Category, 0)
	for _, l := range leaves {
		if _, seen := byParent[l.parent.Id]; !seen {
			parentOrder = append(parentOrder, l.parent)
		}
		byParent[l.parent.Id] = append(byParent[l.parent.Id], l)
	}

	parentTotals := make(map[ulid.ULID]decimal.Decimal, len(byParent))
	for id, group := range byParent {
		total := decimal.Zero
		for _, l := range group {
			total = total.Add(l.amount)
		}
		parentTotals[id] = total
	}

	sort.SliceStable(parentOrder, func(i, j int) bool {
		ti, tj := parentTotals[parentOrder[i].Id], parentTotals[parentOrder[j].Id]
		if !ti.Equal(tj) {
			return ti.GreaterThan(tj)
		}
		return parentOrder[i].Name < parentOrder[j].Name
	})

	breakdown := &Breakdown{
		ParentStats: make([]ParentStat, 0, len(parentOrder)),
		ChildStats:  make([]ChildGroup, 0, len(parentOrder)),
	}
	for _, parent := range parentOrder {
		group := byParent[parent.Id]
		sort.SliceStable(group, func(i, j int) bool {
			if !group[i].amount.Equal(group[j].amount) {
				return group[i].amount.GreaterThan(group[j].amount)
			}
			return group[i].leaf.Name < group[j].leaf.Name
		})

		parentTotal := parentTotals[parent.Id]
		children := make([]ChildStat, 0, len(group))
		for _, l := range group {
			children = append(children, ChildStat{
				Id:      l.leaf.Id,
				Name:    l.leaf.Name,
				Amount:  l.amount,
				Percent: percentOf(l.amount, parentTotal),
				IconURL: r.Icons.Resolve(l.leaf.IconRef),
			})
		}

		breakdown.ParentStats = append(breakdown.ParentStats, ParentStat{
			Id:      parent.Id,
			Name:    parent.Name,
			Percent: percentOf(parentTotal, grandTotal),
		})
		breakdown.ChildStats = append(breakdown.ChildStats, ChildGroup{
			ParentName: parent.Name,
			Children:   children,
		})
	}

	return breakdown, nil
}

// percentOf is round(part/whole, 4) * 100 with a zero-division guard.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Round(4).Mul(decimal.NewFromInt(100))
}
