package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"foodmarket/config"
	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	maxMenuNameLength        = 100
	maxMenuDescriptionLength = 1000
)

type menuService struct {
	txManager  repository.TransactionManager
	menuRepo   repository.MenuRepository
	vendorRepo repository.VendorRepository
	cache      service.MenuCache
	sheet      service.Spreadsheet
	qrService  service.QRCodeService
	baseURL    string
	logger     *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	MenuRepo    repository.MenuRepository
	VendorRepo  repository.VendorRepository
	Cache       service.MenuCache
	Spreadsheet service.Spreadsheet
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMenuService creates the menu catalogue usecase.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		txManager:  params.TxManager,
		menuRepo:   params.MenuRepo,
		vendorRepo: params.VendorRepo,
		cache:      params.Cache,
		sheet:      params.Spreadsheet,
		qrService:  params.QRService,
		baseURL:    publicBaseURL(params.Config),
		logger:     params.Logger,
	}
}

func publicBaseURL(cfg *config.Config) string {
	if cfg == nil {
		return "http://localhost"
	}
	if base := strings.TrimRight(cfg.HTTP.PublicBaseURL, "/"); base != "" {
		return base
	}

	return fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAll returns every vendor's menus, served from cache when possible.
func (srv *menuService) ListAll(ctx context.Context) ([]*entity.Menu, error) {
	return srv.cachedMenus(ctx, service.MenuScopeAll, srv.menuRepo.List)
}

// ListByVendor returns the public menu of one vendor.
func (srv *menuService) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Menu, error) {
	if _, err := srv.vendorRepo.FindByID(ctx, vendorID); err != nil {
		return nil, translateError(err, "failed to find vendor")
	}

	return srv.cachedMenus(ctx, service.MenuScopeVendor(vendorID), func(ctx context.Context) ([]*entity.Menu, error) {
		return srv.menuRepo.ListByVendor(ctx, vendorID)
	})
}

// cachedMenus reads through the cache. Cache failures only cost a database read.
func (srv *menuService) cachedMenus(ctx context.Context, scope string, load func(context.Context) ([]*entity.Menu, error)) ([]*entity.Menu, error) {
	menus, ok, err := srv.cache.GetMenus(ctx, scope)
	if err != nil {
		srv.log(ctx).Warn("Menu cache read failed", slog.String("scope", scope), slog.Any("error", err))
	}
	if ok {
		return menus, nil
	}

	menus, err = load(ctx)
	if err != nil {
		return nil, translateError(err, "failed to list menus")
	}

	if err := srv.cache.SetMenus(ctx, scope, menus); err != nil {
		srv.log(ctx).Warn("Menu cache write failed", slog.String("scope", scope), slog.Any("error", err))
	}

	return menus, nil
}

func (srv *menuService) invalidate(ctx context.Context, vendorID uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, service.MenuScopeAll, service.MenuScopeVendor(vendorID)); err != nil {
		srv.log(ctx).Warn("Menu cache invalidation failed", slog.Any("vendorID", vendorID), slog.Any("error", err))
	}
}

func (srv *menuService) Get(ctx context.Context, menuID uuid.UUID) (*entity.Menu, error) {
	menu, err := srv.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		return nil, translateError(err, "failed to find menu")
	}

	return menu, nil
}

// ListOwn bypasses the cache so a vendor always sees current stock.
func (srv *menuService) ListOwn(ctx context.Context, vendorID uuid.UUID) ([]*entity.Menu, error) {
	menus, err := srv.menuRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, translateError(err, "failed to list vendor menus")
	}

	return menus, nil
}

func (srv *menuService) Create(ctx context.Context, vendorID uuid.UUID, input *usecase.MenuInput) (*entity.Menu, error) {
	menu, err := newMenu(vendorID, input)
	if err != nil {
		return nil, err
	}

	if err := srv.menuRepo.Create(ctx, menu); err != nil {
		return nil, translateError(err, "failed to create menu")
	}
	srv.invalidate(ctx, vendorID)

	srv.log(ctx).Info("Menu created", slog.Any("vendorID", vendorID), slog.Any("menuID", menu.ID))

	return menu, nil
}

func (srv *menuService) Update(ctx context.Context, vendorID, menuID uuid.UUID, input *usecase.MenuInput) (*entity.Menu, error) {
	menu, err := newMenu(vendorID, input)
	if err != nil {
		return nil, err
	}
	menu.ID = menuID

	// The repository matches on vendor and id, so another vendor's menu reads as not found.
	if err := srv.menuRepo.Update(ctx, menu); err != nil {
		return nil, translateError(err, "failed to update menu")
	}
	srv.invalidate(ctx, vendorID)

	updated, err := srv.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		return nil, translateError(err, "failed to reload menu")
	}

	return updated, nil
}

func (srv *menuService) Delete(ctx context.Context, vendorID, menuID uuid.UUID) error {
	if err := srv.menuRepo.Delete(ctx, vendorID, menuID); err != nil {
		return translateError(err, "failed to delete menu")
	}
	srv.invalidate(ctx, vendorID)

	srv.log(ctx).Info("Menu deleted", slog.Any("vendorID", vendorID), slog.Any("menuID", menuID))

	return nil
}

// Import creates one menu per valid spreadsheet row. Invalid rows are reported, not fatal.
func (srv *menuService) Import(ctx context.Context, vendorID uuid.UUID, workbook io.Reader) (*usecase.ImportMenusOutput, error) {
	rows, rowErrors, err := srv.sheet.ParseMenus(workbook)
	if err != nil {
		return nil, domainerrors.ErrMenuImportInvalid.WithDetails(err.Error())
	}

	output := &usecase.ImportMenusOutput{Skipped: rowErrors}
	menus := make([]*entity.Menu, 0, len(rows))
	for _, row := range rows {
		menu, err := newMenu(vendorID, &usecase.MenuInput{
			Name:                  row.Name,
			Description:           row.Description,
			Price:                 row.Price,
			Quantity:              row.Quantity,
			IsRecurring:           row.IsRecurring,
			FrequencyOfRecurrence: row.FrequencyOfRecurrence,
		})
		if err != nil {
			output.Skipped = append(output.Skipped, service.RowError{Row: row.Row, Reason: errorDetails(err)})

			continue
		}
		menus = append(menus, menu)
	}

	if len(menus) == 0 {
		output.Created = []*entity.Menu{}

		return output, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.MenuRepo().CreateBatch(ctx, menus)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store imported menus")
	}
	srv.invalidate(ctx, vendorID)

	output.Created = menus
	srv.log(ctx).Info("Menus imported",
		slog.Any("vendorID", vendorID),
		slog.Int("created", len(output.Created)),
		slog.Int("skipped", len(output.Skipped)),
	)

	return output, nil
}

// MenuQRCode renders a PNG pointing at the vendor's public menu page.
func (srv *menuService) MenuQRCode(ctx context.Context, vendorID uuid.UUID) ([]byte, error) {
	if _, err := srv.vendorRepo.FindByID(ctx, vendorID); err != nil {
		return nil, translateError(err, "failed to find vendor")
	}

	menuURL := fmt.Sprintf("%s/vendor/%s/menu", srv.baseURL, vendorID)
	png, err := srv.qrService.GenerateMenuQR(vendorID, menuURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate menu QR code")
	}

	return png, nil
}

func newMenu(vendorID uuid.UUID, input *usecase.MenuInput) (*entity.Menu, error) {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case len(name) > maxMenuNameLength:
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must be at most 100 characters")
	case len(input.Description) > maxMenuDescriptionLength:
		return nil, domainerrors.ErrValidationFailed.WithDetails("description must be at most 1000 characters")
	case input.Price <= 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	case input.Price > entity.MaxMenuPrice:
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("price must be at most %d", entity.MaxMenuPrice))
	case input.Quantity < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	frequency := strings.TrimSpace(input.FrequencyOfRecurrence)
	if !input.IsRecurring {
		frequency = ""
	}

	return &entity.Menu{
		VendorID:              vendorID,
		Name:                  name,
		Description:           strings.TrimSpace(input.Description),
		Price:                 input.Price,
		Quantity:              input.Quantity,
		IsRecurring:           input.IsRecurring,
		FrequencyOfRecurrence: frequency,
	}, nil
}

func errorDetails(err error) string {
	if appErr, ok := errors.AsType[*domainerrors.BaseError](err); ok && appErr.Details() != "" {
		return appErr.Details()
	}

	return err.Error()
}
