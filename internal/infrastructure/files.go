package infrastructure

import (
	"strings"

	"github.com/Memoyu/Mbill/config"
	"github.com/Memoyu/Mbill/internal/domain/category"
)

// FileResolver turns stored icon references into absolute URLs under
// the configured file base. References that are already absolute pass
// through untouched.
type FileResolver struct {
	BaseURL string
}

var _ category.IconResolver = (*FileResolver)(nil)

func NewFileResolver(cfg *config.Config) *FileResolver {
	return &FileResolver{BaseURL: strings.TrimSuffix(cfg.Files.BaseURL, "/")}
}

func (r *FileResolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return r.BaseURL + "/" + strings.TrimPrefix(ref, "/")
}
