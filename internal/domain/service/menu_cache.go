package service

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuScopeAll is the cache scope of the global public menu list.
const MenuScopeAll = "all"

// MenuScopeVendor returns the cache scope of one vendor's public menu list.
func MenuScopeVendor(vendorID uuid.UUID) string {
	return "vendor:" + vendorID.String()
}

// MenuCache caches public menu listings. A miss is reported with ok=false and a nil error.
type MenuCache interface {
	GetMenus(ctx context.Context, scope string) (menus []*entity.Menu, ok bool, err error)
	SetMenus(ctx context.Context, scope string, menus []*entity.Menu) error
	Invalidate(ctx context.Context, scopes ...string) error
}
