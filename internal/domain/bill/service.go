package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/Memoyu/Mbill/internal/domain/asset"
	"github.com/Memoyu/Mbill/internal/domain/category"
	"github.com/Memoyu/Mbill/internal/domain/preorder"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
	"github.com/Memoyu/Mbill/internal/pkg"
	"github.com/Memoyu/Mbill/internal/pkg/calendar"
)

// Service implements bill recording and the aggregation operations
// built on top of it: day and month listings, range day counts, period
// totals, the expense category breakdown and the weekly/monthly expense
// trends. All monetary arithmetic is exact decimal; amounts are only
// formatted at the response boundary.
type Service struct {
	Store      Store
	PreOrders  preorder.Store
	Categories category.Lookup
	Assets     asset.Lookup
	Icons      category.IconResolver
	Rollup     *category.RollupResolver
}

func NewService(
	store Store,
	preOrders preorder.Store,
	categories category.Lookup,
	assets asset.Lookup,
	icons category.IconResolver,
) *Service {
	return &Service{
		Store:      store,
		PreOrders:  preOrders,
		Categories: categories,
		Assets:     assets,
		Icons:      icons,
		Rollup:     category.NewRollupResolver(categories, icons),
	}
}

func (s *Service) Create(ctx context.Context, b *Bill) (*Bill, error) {
	if !b.Type.Valid() {
		return nil, appErrors.NewValidationError("type", "unknown bill type")
	}
	if !b.Amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "amount must be positive")
	}
	if (b.Type == TypeExpense || b.Type == TypeIncome) && b.CategoryId == nil {
		return nil, appErrors.NewValidationError("categoryId", "expense and income bills require a category")
	}
	if b.CategoryId != nil {
		if _, err := s.Categories.Get(ctx, *b.CategoryId); err != nil {
			return nil, err
		}
	}
	if _, err := s.Assets.Get(ctx, b.AssetId); err != nil {
		return nil, err
	}
	if b.TargetAssetId != nil {
		if _, err := s.Assets.Get(ctx, *b.TargetAssetId); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	b.Id = pkg.GenerateULID()
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.Store.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, b *Bill) (*Bill, error) {
	existing, err := s.getOwned(ctx, b.Id, b.OwnerId)
	if err != nil {
		return nil, err
	}
	if !b.Type.Valid() {
		return nil, appErrors.NewValidationError("type", "unknown bill type")
	}
	if !b.Amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "amount must be positive")
	}
	if (b.Type == TypeExpense || b.Type == TypeIncome) && b.CategoryId == nil {
		return nil, appErrors.NewValidationError("categoryId", "expense and income bills require a category")
	}
	if b.CategoryId != nil {
		if _, err := s.Categories.Get(ctx, *b.CategoryId); err != nil {
			return nil, err
		}
	}
	if _, err := s.Assets.Get(ctx, b.AssetId); err != nil {
		return nil, err
	}

	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now().UTC()

	if err := s.Store.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id, ownerID ulid.ULID) error {
	if _, err := s.getOwned(ctx, id, ownerID); err != nil {
		return err
	}
	return s.Store.SoftDelete(ctx, id, ownerID)
}

// GetDetail returns a single bill with its category and asset names
// resolved.
func (s *Service) GetDetail(ctx context.Context, id, ownerID ulid.ULID) (*Detail, error) {
	b, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		Id:            b.Id,
		OwnerId:       b.OwnerId,
		Type:          b.Type,
		Amount:        b.Amount,
		Time:          b.Time,
		AssetId:       b.AssetId,
		TargetAssetId: b.TargetAssetId,
		Description:   b.Description,
	}

	if b.CategoryId != nil {
		c, err := s.Categories.Get(ctx, *b.CategoryId)
		if err != nil {
			return nil, err
		}
		detail.Category = c.Name
		detail.CategoryIcon = s.Icons.Resolve(c.IconRef)
	}

	a, err := s.Assets.Get(ctx, b.AssetId)
	if err != nil {
		return nil, err
	}
	detail.Asset = a.Name

	return detail, nil
}

// GetByDay lists a single calendar day's bills, enriched for display
// and ordered by the given sort. The result keeps the day-bucket
// envelope so callers get the day-of-month and weekday label alongside
// the items.
func (s *Service) GetByDay(ctx context.Context, ownerID ulid.ULID, day time.Time, opts ListOptions, sort Sort) (*DayBucket, error) {
	begin, end := calendar.DayWindow(day)

	f := Filter{OwnerId: &ownerID, Begin: begin, End: end}
	opts.apply(&f)

	bills, err := s.Store.Query(ctx, f, sort)
	if err != nil {
		return nil, err
	}

	views, err := s.toViews(ctx, bills)
	if err != nil {
		return nil, err
	}

	return &DayBucket{
		Day:     day.Day(),
		Weekday: day.Weekday().String(),
		Items:   views,
	}, nil
}

// GetByMonthPaged pages through a month's bills and groups each page
// into day buckets. Buckets appear in the order their first bill
// appears on the page, so the sort drives the bucket order too.
func (s *Service) GetByMonthPaged(ctx context.Context, ownerID ulid.ULID, year, month int, opts ListOptions, sort Sort, pagination *pkg.PaginationParams) (*pkg.PaginatedResponse[DayBucket], error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	begin, end := calendar.MonthWindow(year, time.Month(month))
	f := Filter{OwnerId: &ownerID, Begin: begin, End: end}
	opts.apply(&f)

	pagination = pkg.NormalizePagination(pagination)

	bills, total, err := s.Store.QueryPaged(ctx, f, sort, pagination)
	if err != nil {
		return nil, err
	}

	buckets := make([]DayBucket, 0)
	index := make(map[int]int)
	for _, b := range bills {
		view, err := s.toView(ctx, b)
		if err != nil {
			return nil, err
		}
		day := b.Time.Day()
		i, ok := index[day]
		if !ok {
			i = len(buckets)
			index[day] = i
			buckets = append(buckets, DayBucket{
				Day:     day,
				Weekday: b.Time.Weekday().String(),
			})
		}
		buckets[i].Items = append(buckets[i].Items, view)
	}

	return pkg.NewPaginatedResponse(buckets, pagination.Page, pagination.Limit, total), nil
}

// GetDaysWithBills returns, for a date range, every calendar day
// carrying at least one matching bill together with its bill count.
// The range widens to whole months: the window runs from the first day
// of begin's month through the last day of end's month. Days without
// bills are absent, never zero-count entries.
func (s *Service) GetDaysWithBills(ctx context.Context, ownerID ulid.ULID, begin, end time.Time, opts ListOptions) ([]DayCount, error) {
	rangeBegin, _ := calendar.MonthWindow(begin.Year(), begin.Month())
	_, rangeEnd := calendar.MonthWindow(end.Year(), end.Month())
	if rangeEnd.Before(rangeBegin) {
		return nil, appErrors.NewValidationError("end", "end must not precede begin")
	}

	f := Filter{OwnerId: &ownerID, Begin: rangeBegin, End: rangeEnd}
	opts.apply(&f)

	bills, err := s.Store.Query(ctx, f, Sort{Field: SortByTime, Direction: SortAsc})
	if err != nil {
		return nil, err
	}

	counts := make([]DayCount, 0)
	index := make(map[[3]int]int)
	for _, b := range bills {
		key := [3]int{b.Time.Year(), int(b.Time.Month()), b.Time.Day()}
		i, ok := index[key]
		if !ok {
			i = len(counts)
			index[key] = i
			counts = append(counts, DayCount{Year: key[0], Month: key[1], Day: key[2]})
		}
		counts[i].Count++
	}
	return counts, nil
}

// GetMonthTotal sums a month's expense and income bills. Repayments and
// transfers move money between accounts and count toward neither total.
func (s *Service) GetMonthTotal(ctx context.Context, ownerID ulid.ULID, year, month int) (*MonthTotal, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	begin, end := calendar.MonthWindow(year, time.Month(month))
	bills, err := s.Store.Query(ctx, Filter{OwnerId: &ownerID, Begin: begin, End: end}, DefaultSort())
	if err != nil {
		return nil, err
	}

	expense, income := sumByType(bills)
	return &MonthTotal{
		Expense: pkg.FormatAmount(expense),
		Income:  pkg.FormatAmount(income),
	}, nil
}

// GetYearTotal sums a year's expense and income bills and the year's
// planned pre-order outlays.
func (s *Service) GetYearTotal(ctx context.Context, ownerID ulid.ULID, year int) (*YearTotal, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	begin, end := calendar.YearWindow(year)
	bills, err := s.Store.Query(ctx, Filter{OwnerId: &ownerID, Begin: begin, End: end}, DefaultSort())
	if err != nil {
		return nil, err
	}
	expense, income := sumByType(bills)

	preOrders, err := s.PreOrders.QueryByYear(ctx, ownerID, year)
	if err != nil {
		return nil, err
	}
	planned := decimal.Zero
	for _, p := range preOrders {
		planned = planned.Add(p.Amount)
	}

	return &YearTotal{
		Expense:  pkg.FormatAmount(expense),
		Income:   pkg.FormatAmount(income),
		PreOrder: pkg.FormatAmount(planned),
	}, nil
}

// GetExpenseCategoryStats aggregates a month's expense bills per leaf
// category and rolls them up into the two-level percentage breakdown.
// An expense bill without a category is a data fault and aborts the
// aggregation.
func (s *Service) GetExpenseCategoryStats(ctx context.Context, ownerID ulid.ULID, year, month int) (*category.Breakdown, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	begin, end := calendar.MonthWindow(year, time.Month(month))
	expenseType := TypeExpense
	bills, err := s.Store.Query(ctx, Filter{OwnerId: &ownerID, Begin: begin, End: end, Type: &expenseType}, DefaultSort())
	if err != nil {
		return nil, err
	}

	amounts := make(map[ulid.ULID]decimal.Decimal)
	for _, b := range bills {
		if b.CategoryId == nil {
			return nil, appErrors.ErrCategoryNotFound.WithDetails(map[string]interface{}{
				"billId": b.Id.String(),
			})
		}
		amounts[*b.CategoryId] = amounts[*b.CategoryId].Add(b.Amount)
	}

	return s.Rollup.Rollup(ctx, amounts)
}

// GetWeeklyExpenseTrend sums a month's expenses per calendar week. The
// month is fetched once and attributed to the week windows in memory;
// weeks without expenses report a zero amount.
func (s *Service) GetWeeklyExpenseTrend(ctx context.Context, ownerID ulid.ULID, year, month int) ([]TrendPoint, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	windows := calendar.WeeksOfMonth(year, time.Month(month))

	begin, end := calendar.MonthWindow(year, time.Month(month))
	expenseType := TypeExpense
	bills, err := s.Store.Query(ctx, Filter{OwnerId: &ownerID, Begin: begin, End: end, Type: &expenseType}, DefaultSort())
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(windows))
	for _, w := range windows {
		points = append(points, TrendPoint{
			Label:     fmt.Sprintf("%d/%d-%d/%d", int(w.Start.Month()), w.Start.Day(), int(w.End.Month()), w.End.Day()),
			Amount:    sumWithin(bills, w),
			StartDate: w.Start,
			EndDate:   w.End,
		})
	}
	return points, nil
}

// maxTrendMonths bounds the backward walk of the monthly trend so a
// caller-supplied count cannot force an unbounded multi-year scan.
const maxTrendMonths = 24

// GetMonthlyExpenseTrend sums expenses per month for the count months
// ending at the anchor month, most recent first. One store query covers
// the whole span.
func (s *Service) GetMonthlyExpenseTrend(ctx context.Context, ownerID ulid.ULID, year, month, count int) ([]TrendPoint, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	if count < 1 || count > maxTrendMonths {
		return nil, appErrors.NewValidationError("count", "count must be between 1 and 24")
	}

	windows := calendar.LastNMonths(year, time.Month(month), count)

	oldest := windows[len(windows)-1]
	newest := windows[0]
	expenseType := TypeExpense
	bills, err := s.Store.Query(ctx, Filter{OwnerId: &ownerID, Begin: oldest.Start, End: newest.End, Type: &expenseType}, DefaultSort())
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(windows))
	for _, w := range windows {
		points = append(points, TrendPoint{
			Label:     fmt.Sprintf("%d/%d", w.Start.Year(), int(w.Start.Month())),
			Amount:    sumWithin(bills, w),
			StartDate: w.Start,
			EndDate:   w.End,
		})
	}
	return points, nil
}

func (s *Service) getOwned(ctx context.Context, id, ownerID ulid.ULID) (*Bill, error) {
	b, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.OwnerId != ownerID {
		return nil, appErrors.ErrBillNotFound
	}
	return b, nil
}

func (s *Service) toViews(ctx context.Context, bills []*Bill) ([]View, error) {
	views := make([]View, 0, len(bills))
	for _, b := range bills {
		view, err := s.toView(ctx, b)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// toView enriches a bill for display. A missing category is a
// data-integrity fault, never silently skipped.
func (s *Service) toView(ctx context.Context, b *Bill) (View, error) {
	view := View{
		Id:          b.Id,
		Type:        b.Type,
		Amount:      b.Amount,
		Time:        b.Time.Format("15:04"),
		AssetId:     b.AssetId,
		Description: b.Description,
	}
	if b.CategoryId != nil {
		c, err := s.Categories.Get(ctx, *b.CategoryId)
		if err != nil {
			return View{}, err
		}
		view.Category = c.Name
		view.CategoryIcon = s.Icons.Resolve(c.IconRef)
	}
	return view, nil
}

func sumByType(bills []*Bill) (expense, income decimal.Decimal) {
	expense, income = decimal.Zero, decimal.Zero
	for _, b := range bills {
		switch b.Type {
		case TypeExpense:
			expense = expense.Add(b.Amount)
		case TypeIncome:
			income = income.Add(b.Amount)
		}
	}
	return expense, income
}

func sumWithin(bills []*Bill, w calendar.Window) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bills {
		if w.Contains(b.Time) {
			total = total.Add(b.Amount)
		}
	}
	return total
}

func validateMonth(year, month int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return appErrors.NewValidationError("month", "month must be between 1 and 12")
	}
	return nil
}

func validateYear(year int) error {
	if year < 1 {
		return appErrors.NewValidationError("year", "year must be positive")
	}
	return nil
}
