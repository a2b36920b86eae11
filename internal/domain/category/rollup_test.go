package category_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/Memoyu/Mbill/internal/domain/category"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
)

type fakeLookup struct {
	nodes   map[ulid.ULID]*category.Category
	parents map[ulid.ULID]*category.Category
}

func (f *fakeLookup) Get(_ context.Context, id ulid.ULID) (*category.Category, error) {
	if c, ok := f.nodes[id]; ok {
		return c, nil
	}
	return nil, appErrors.ErrCategoryNotFound
}

func (f *fakeLookup) GetParent(_ context.Context, id ulid.ULID) (*category.Category, error) {
	if p, ok := f.parents[id]; ok {
		return p, nil
	}
	return nil, appErrors.ErrCategoryNotFound
}

type fakeIcons struct{}

func (fakeIcons) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	return "https://files.test/" + ref
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// two roots (Food, Transport), Food has two leaves, Transport one.
func fixtureLookup() (*fakeLookup, map[string]ulid.ULID) {
	ids := map[string]ulid.ULID{
		"food":      ulid.Make(),
		"transport": ulid.Make(),
		"lunch":     ulid.Make(),
		"snacks":    ulid.Make(),
		"taxi":      ulid.Make(),
	}

	food := &category.Category{Id: ids["food"], Name: "Food"}
	transport := &category.Category{Id: ids["transport"], Name: "Transport"}
	foodID, transportID := ids["food"], ids["transport"]

	lookup := &fakeLookup{
		nodes: map[ulid.ULID]*category.Category{
			ids["lunch"]:  {Id: ids["lunch"], Name: "Lunch", ParentId: &foodID, IconRef: "lunch.png"},
			ids["snacks"]: {Id: ids["snacks"], Name: "Snacks", ParentId: &foodID, IconRef: "snacks.png"},
			ids["taxi"]:   {Id: ids["taxi"], Name: "Taxi", ParentId: &transportID, IconRef: "taxi.png"},
		},
		parents: map[ulid.ULID]*category.Category{
			ids["lunch"]:  food,
			ids["snacks"]: food,
			ids["taxi"]:   transport,
		},
	}
	return lookup, ids
}

func TestRollupTwoLevelTree(t *testing.T) {
	t.Parallel()

	lookup, ids := fixtureLookup()
	resolver := category.NewRollupResolver(lookup, fakeIcons{})

	amounts := map[ulid.ULID]decimal.Decimal{
		ids["lunch"]:  dec("300"),
		ids["snacks"]: dec("100"),
		ids["taxi"]:   dec("600"),
	}

	breakdown, err := resolver.Rollup(context.Background(), amounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(breakdown.ParentStats) != 2 {
		t.Fatalf("expected 2 parents, got %d", len(breakdown.ParentStats))
	}

	// Transport (600 of 1000) sorts first.
	if breakdown.ParentStats[0].Name != "Transport" {
		t.Fatalf("first parent = %s", breakdown.ParentStats[0].Name)
	}
	if !breakdown.ParentStats[0].Percent.Equal(dec("60")) {
		t.Fatalf("Transport percent = %s", breakdown.ParentStats[0].Percent)
	}
	if !breakdown.ParentStats[1].Percent.Equal(dec("40")) {
		t.Fatalf("Food percent = %s", breakdown.ParentStats[1].Percent)
	}

	var food *category.ChildGroup
	for i := range breakdown.ChildStats {
		if breakdown.ChildStats[i].ParentName == "Food" {
			food = &breakdown.ChildStats[i]
		}
	}
	if food == nil {
		t.Fatal("missing Food child group")
	}
	if len(food.Children) != 2 {
		t.Fatalf("expected 2 food children, got %d", len(food.Children))
	}
	if food.Children[0].Name != "Lunch" || !food.Children[0].Percent.Equal(dec("75")) {
		t.Fatalf("lunch stat = %+v", food.Children[0])
	}
	if food.Children[1].Name != "Snacks" || !food.Children[1].Percent.Equal(dec("25")) {
		t.Fatalf("snacks stat = %+v", food.Children[1])
	}
	if food.Children[0].IconURL != "https://files.test/lunch.png" {
		t.Fatalf("icon url = %s", food.Children[0].IconURL)
	}
}

func TestRollupPercentagesSumToHundred(t *testing.T) {
	t.Parallel()

	lookup, ids := fixtureLookup()
	resolver := category.NewRollupResolver(lookup, fakeIcons{})

	// Amounts that do not divide evenly; 4-decimal rounding keeps the
	// sums within a basis point of 100.
	amounts := map[ulid.ULID]decimal.Decimal{
		ids["lunch"]:  dec("33.33"),
		ids["snacks"]: dec("66.67"),
		ids["taxi"]:   dec("99.99"),
	}

	breakdown, err := resolver.Rollup(context.Background(), amounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tolerance := dec("0.02")

	parentSum := decimal.Zero
	for _, p := range breakdown.ParentStats {
		parentSum = parentSum.Add(p.Percent)
	}
	if parentSum.Sub(dec("100")).Abs().GreaterThan(tolerance) {
		t.Fatalf("parent percents sum to %s", parentSum)
	}

	for _, group := range breakdown.ChildStats {
		childSum := decimal.Zero
		for _, c := range group.Children {
			childSum = childSum.Add(c.Percent)
		}
		if childSum.Sub(dec("100")).Abs().GreaterThan(tolerance) {
			t.Fatalf("%s children sum to %s", group.ParentName, childSum)
		}
	}
}

func TestRollupEmptyInput(t *testing.T) {
	t.Parallel()

	lookup, _ := fixtureLookup()
	resolver := category.NewRollupResolver(lookup, fakeIcons{})

	breakdown, err := resolver.Rollup(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(breakdown.ParentStats) != 0 || len(breakdown.ChildStats) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", breakdown)
	}
}

func TestRollupZeroTotalGuard(t *testing.T) {
	t.Parallel()

	lookup, ids := fixtureLookup()
	resolver := category.NewRollupResolver(lookup, fakeIcons{})

	amounts := map[ulid.ULID]decimal.Decimal{
		ids["lunch"]: decimal.Zero,
	}

	breakdown, err := resolver.Rollup(context.Background(), amounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !breakdown.ParentStats[0].Percent.IsZero() {
		t.Fatalf("expected zero percent, got %s", breakdown.ParentStats[0].Percent)
	}
	if !breakdown.ChildStats[0].Children[0].Percent.IsZero() {
		t.Fatalf("expected zero child percent, got %s", breakdown.ChildStats[0].Children[0].Percent)
	}
}

func TestRollupUnresolvableCategoryIsFatal(t *testing.T) {
	t.Parallel()

	lookup, _ := fixtureLookup()
	resolver := category.NewRollupResolver(lookup, fakeIcons{})

	amounts := map[ulid.ULID]decimal.Decimal{
		ulid.Make(): dec("10"),
	}

	_, err := resolver.Rollup(context.Background(), amounts)
	if err == nil {
		t.Fatal("expected error for unresolvable category")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrCategoryNotFound.Code {
		t.Fatalf("expected CATEGORY_NOT_FOUND, got %v", err)
	}
}
