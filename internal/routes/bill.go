package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/Memoyu/Mbill/internal/contracts"
	"github.com/Memoyu/Mbill/internal/domain/bill"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
	"github.com/Memoyu/Mbill/internal/pkg"
)

func (h *Handler) CreateBill(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.BillCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	b, err := billFromRequest(ownerID, req.Type, req.Amount, req.Time, req.CategoryId, req.AssetId, req.TargetAssetId, req.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}

	created, err := h.BillService.Create(c.Request.Context(), b)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BillCreateResponse{
		Message: "bill created",
		Bill:    created,
	})
}

func (h *Handler) UpdateBill(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	billID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid bill id"))
		return
	}

	var req contracts.BillUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	b, err := billFromRequest(ownerID, req.Type, req.Amount, req.Time, req.CategoryId, req.AssetId, req.TargetAssetId, req.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}
	b.Id = billID

	updated, err := h.BillService.Update(c.Request.Context(), b)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillUpdateResponse{
		Message: "bill updated",
		Bill:    updated,
	})
}

func (h *Handler) DeleteBill(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	billID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid bill id"))
		return
	}

	if err := h.BillService.Delete(c.Request.Context(), billID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "bill deleted"})
}

func (h *Handler) GetBillDetail(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	billID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid bill id"))
		return
	}

	detail, err := h.BillService.GetDetail(c.Request.Context(), billID, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillDetailResponse{Bill: detail})
}

func (h *Handler) GetBillsByDay(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	day := time.Now().UTC()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("date", "expected format 2006-01-02"))
			return
		}
		day = parsed
	}

	opts, err := parseListOptions(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sort, err := bill.ParseSort(c.Query("sort"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	bucket, err := h.BillService.GetByDay(c.Request.Context(), ownerID, day, opts, sort)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillDayListResponse{
		Day:   bucket,
		Total: len(bucket.Items),
	})
}

func (h *Handler) GetBillsByMonth(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	year, month := yearMonthQuery(c)

	opts, err := parseListOptions(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sort, err := bill.ParseSort(c.Query("sort"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	page, err := h.BillService.GetByMonthPaged(c.Request.Context(), ownerID, year, month, opts, sort, h.parsePagination(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillMonthPageResponse{PaginatedResponse: page})
}

func (h *Handler) GetBillDays(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	begin, err := time.Parse("2006-01-02", c.Query("begin"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("begin", "expected format 2006-01-02"))
		return
	}
	endDay, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("end", "expected format 2006-01-02"))
		return
	}
	end := endDay.AddDate(0, 0, 1).Add(-time.Second)

	opts, err := parseListOptions(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	days, err := h.BillService.GetDaysWithBills(c.Request.Context(), ownerID, begin, end, opts)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillDayCountsResponse{Days: days})
}

func billFromRequest(ownerID ulid.ULID, typ string, amount decimal.Decimal, at time.Time, categoryID, assetID, targetAssetID, description string) (*bill.Bill, error) {
	b := &bill.Bill{
		OwnerId:     ownerID,
		Time:        at.UTC(),
		Type:        bill.Type(typ),
		Amount:      amount,
		Description: description,
	}

	var err error
	if categoryID != "" {
		parsed, parseErr := pkg.ParseULID(categoryID)
		if parseErr != nil {
			return nil, appErrors.NewValidationError("categoryId", "invalid category id")
		}
		b.CategoryId = &parsed
	}

	b.AssetId, err = pkg.ParseULID(assetID)
	if err != nil {
		return nil, appErrors.NewValidationError("assetId", "invalid asset id")
	}

	if targetAssetID != "" {
		parsed, parseErr := pkg.ParseULID(targetAssetID)
		if parseErr != nil {
			return nil, appErrors.NewValidationError("targetAssetId", "invalid target asset id")
		}
		b.TargetAssetId = &parsed
	}

	return b, nil
}

func parseListOptions(c *gin.Context) (bill.ListOptions, error) {
	var opts bill.ListOptions

	if t := c.Query("type"); t != "" {
		typ := bill.Type(t)
		if !typ.Valid() {
			return bill.ListOptions{}, appErrors.NewValidationError("type", "unknown bill type")
		}
		opts.Type = &typ
	}

	if id := c.Query("categoryId"); id != "" {
		parsed, err := pkg.ParseULID(id)
		if err != nil {
			return bill.ListOptions{}, appErrors.NewValidationError("categoryId", "invalid category id")
		}
		opts.CategoryId = &parsed
	}

	if id := c.Query("assetId"); id != "" {
		parsed, err := pkg.ParseULID(id)
		if err != nil {
			return bill.ListOptions{}, appErrors.NewValidationError("assetId", "invalid asset id")
		}
		opts.AssetId = &parsed
	}

	return opts, nil
}

func yearMonthQuery(c *gin.Context) (int, int) {
	now := time.Now().UTC()
	year := now.Year()
	month := int(now.Month())

	if y := c.Query("year"); y != "" {
		if parsed, err := pkg.ParseInt(y); err == nil && parsed > 0 {
			year = parsed
		}
	}
	if m := c.Query("month"); m != "" {
		if parsed, err := pkg.ParseInt(m); err == nil {
			month = parsed
		}
	}
	return year, month
}
