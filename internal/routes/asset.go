package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Memoyu/Mbill/internal/contracts"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
	"github.com/Memoyu/Mbill/internal/pkg"
)

func (h *Handler) ListAssets(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	assets, err := h.AssetService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AssetListResponse{
		Assets: assets,
		Total:  len(assets),
	})
}

func (h *Handler) GetAsset(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	assetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid asset id"))
		return
	}

	a, err := h.AssetService.GetByID(c.Request.Context(), assetID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if a.OwnerId != ownerID {
		h.respondError(c, appErrors.ErrAssetNotFound)
		return
	}

	c.JSON(http.StatusOK, contracts.AssetResponse{Asset: a})
}
