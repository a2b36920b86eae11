package category

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Category is a node in the two-level bill category tree. Root
// categories have no parent; leaf categories reference exactly one root.
type Category struct {
	Id        ulid.ULID  `json:"id"`
	Name      string     `json:"name"`
	ParentId  *ulid.ULID `json:"parentId"`
	IconRef   string     `json:"iconRef"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (c *Category) IsRoot() bool {
	return c.ParentId == nil
}

// View is a category enriched with its resolved icon URL.
type View struct {
	Id       ulid.ULID  `json:"id"`
	Name     string     `json:"name"`
	ParentId *ulid.ULID `json:"parentId"`
	IconURL  string     `json:"iconUrl"`
}
