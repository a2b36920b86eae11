package contracts

import "github.com/Memoyu/Mbill/internal/domain/asset"

type AssetListResponse struct {
	Assets []*asset.Asset `json:"assets"`
	Total  int            `json:"total"`
}

type AssetResponse struct {
	Asset *asset.Asset `json:"asset"`
}
