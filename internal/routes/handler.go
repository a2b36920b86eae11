package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/Memoyu/Mbill/internal/domain/asset"
	"github.com/Memoyu/Mbill/internal/domain/bill"
	"github.com/Memoyu/Mbill/internal/domain/category"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
	"github.com/Memoyu/Mbill/internal/logger"
	"github.com/Memoyu/Mbill/internal/pkg"
)

type Handler struct {
	BillService     *bill.Service
	CategoryService *category.Service
	AssetService    *asset.Service
}

func (h *Handler) GetOwnerIDFromContext(c *gin.Context) (ulid.ULID, error) {
	ownerIDStr, exists := c.Get("owner_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	ownerID, err := pkg.ParseULID(ownerIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return ownerID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
