package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Memoyu/Mbill/internal/contracts"
	"github.com/Memoyu/Mbill/internal/pkg"
)

func (h *Handler) GetMonthTotal(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	year, month := yearMonthQuery(c)

	total, err := h.BillService.GetMonthTotal(c.Request.Context(), ownerID, year, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MonthTotalResponse{Total: total})
}

func (h *Handler) GetYearTotal(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	year, _ := yearMonthQuery(c)

	total, err := h.BillService.GetYearTotal(c.Request.Context(), ownerID, year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.YearTotalResponse{Total: total})
}

func (h *Handler) GetExpenseCategoryStats(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	year, month := yearMonthQuery(c)

	breakdown, err := h.BillService.GetExpenseCategoryStats(c.Request.Context(), ownerID, year, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ExpenseCategoryStatsResponse{Breakdown: breakdown})
}

func (h *Handler) GetWeeklyExpenseTrend(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	year, month := yearMonthQuery(c)

	points, err := h.BillService.GetWeeklyExpenseTrend(c.Request.Context(), ownerID, year, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ExpenseTrendResponse{Points: points})
}

func (h *Handler) GetMonthlyExpenseTrend(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	year, month := yearMonthQuery(c)

	count := 6
	if v := c.Query("count"); v != "" {
		if parsed, err := pkg.ParseInt(v); err == nil {
			count = parsed
		}
	}

	points, err := h.BillService.GetMonthlyExpenseTrend(c.Request.Context(), ownerID, year, month, count)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ExpenseTrendResponse{Points: points})
}
