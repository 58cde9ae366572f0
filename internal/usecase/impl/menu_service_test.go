package impl

import (
	"bytes"
	"context"
	"testing"

	"foodmarket/config"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/domain/service"
	mockRepo "foodmarket/internal/mocks/repository"
	mockSvc "foodmarket/internal/mocks/service"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type menuServiceFixtures struct {
	service    usecase.MenuUsecase
	txManager  *mockRepo.MockTransactionManager
	repos      *txRepos
	menuRepo   *mockRepo.MockMenuRepository
	vendorRepo *mockRepo.MockVendorRepository
	cache      *mockSvc.MockMenuCache
	sheet      *mockSvc.MockSpreadsheet
	qrService  *mockSvc.MockQRCodeService
}

func createTestMenuService(t *testing.T) menuServiceFixtures {
	cfg := &config.Config{}
	cfg.HTTP.PublicBaseURL = "https://market.example.com/"

	fx := menuServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		repos:      newTxRepos(t),
		menuRepo:   mockRepo.NewMockMenuRepository(t),
		vendorRepo: mockRepo.NewMockVendorRepository(t),
		cache:      mockSvc.NewMockMenuCache(t),
		sheet:      mockSvc.NewMockSpreadsheet(t),
		qrService:  mockSvc.NewMockQRCodeService(t),
	}
	fx.service = NewMenuService(MenuServiceParams{
		TxManager:   fx.txManager,
		MenuRepo:    fx.menuRepo,
		VendorRepo:  fx.vendorRepo,
		Cache:       fx.cache,
		Spreadsheet: fx.sheet,
		QRService:   fx.qrService,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return fx
}

func TestMenuService_ListAll_CacheHit(t *testing.T) {
	fx := createTestMenuService(t)
	menus := []*entity.Menu{{ID: uuid.New(), Name: "Puff puff"}}

	fx.cache.EXPECT().GetMenus(mock.Anything, service.MenuScopeAll).Return(menus, true, nil)

	got, err := fx.service.ListAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, menus, got)
}

func TestMenuService_ListAll_CacheMissFillsCache(t *testing.T) {
	fx := createTestMenuService(t)
	menus := []*entity.Menu{{ID: uuid.New(), Name: "Puff puff"}}

	fx.cache.EXPECT().GetMenus(mock.Anything, service.MenuScopeAll).Return(nil, false, nil)
	fx.menuRepo.EXPECT().List(mock.Anything).Return(menus, nil)
	fx.cache.EXPECT().SetMenus(mock.Anything, service.MenuScopeAll, menus).Return(nil)

	got, err := fx.service.ListAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, menus, got)
}

func TestMenuService_ListByVendor_CacheFailureFallsBackToDatabase(t *testing.T) {
	fx := createTestMenuService(t)
	vendorID := uuid.New()
	scope := service.MenuScopeVendor(vendorID)
	menus := []*entity.Menu{{ID: uuid.New(), VendorID: vendorID}}

	fx.vendorRepo.EXPECT().FindByID(mock.Anything, vendorID).Return(&entity.Vendor{ID: vendorID}, nil)
	fx.cache.EXPECT().GetMenus(mock.Anything, scope).Return(nil, false, errors.New("connection refused"))
	fx.menuRepo.EXPECT().ListByVendor(mock.Anything, vendorID).Return(menus, nil)
	fx.cache.EXPECT().SetMenus(mock.Anything, scope, menus).Return(errors.New("connection refused"))

	got, err := fx.service.ListByVendor(context.Background(), vendorID)

	require.NoError(t, err)
	assert.Equal(t, menus, got)
}

func TestMenuService_ListByVendor_UnknownVendor(t *testing.T) {
	fx := createTestMenuService(t)
	vendorID := uuid.New()

	fx.vendorRepo.EXPECT().FindByID(mock.Anything, vendorID).Return(nil, repository.ErrVendorNotFound)

	_, err := fx.service.ListByVendor(context.Background(), vendorID)

	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestMenuService_Create(t *testing.T) {
	vendorID := uuid.New()

	tests := []struct {
		name    string
		input   usecase.MenuInput
		wantErr bool
	}{
		{name: "valid", input: usecase.MenuInput{Name: "Amala", Price: 1200, Quantity: 5, FrequencyOfRecurrence: "daily"}},
		{name: "missing name", input: usecase.MenuInput{Name: "  ", Price: 1200}, wantErr: true},
		{name: "zero price", input: usecase.MenuInput{Name: "Amala", Price: 0}, wantErr: true},
		{name: "price above cap", input: usecase.MenuInput{Name: "Amala", Price: entity.MaxMenuPrice + 1}, wantErr: true},
		{name: "negative quantity", input: usecase.MenuInput{Name: "Amala", Price: 100, Quantity: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMenuService(t)
			if !tt.wantErr {
				fx.menuRepo.EXPECT().
					Create(mock.Anything, mock.AnythingOfType("*entity.Menu")).
					Run(func(_ context.Context, menu *entity.Menu) {
						assert.Equal(t, vendorID, menu.VendorID)
						assert.Empty(t, menu.FrequencyOfRecurrence, "frequency only applies to recurring menus")
						menu.ID = uuid.New()
					}).
					Return(nil)
				fx.cache.EXPECT().Invalidate(mock.Anything, service.MenuScopeAll, service.MenuScopeVendor(vendorID)).Return(nil)
			}

			menu, err := fx.service.Create(context.Background(), vendorID, &tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, menu.ID)
		})
	}
}

func TestMenuService_Update_OtherVendorsMenu(t *testing.T) {
	fx := createTestMenuService(t)
	vendorID, menuID := uuid.New(), uuid.New()

	fx.menuRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Menu")).Return(repository.ErrMenuNotFound)

	_, err := fx.service.Update(context.Background(), vendorID, menuID, &usecase.MenuInput{Name: "Moi moi", Price: 300})

	assert.ErrorIs(t, err, domainerrors.ErrMenuNotFound)
}

func TestMenuService_Delete_InvalidatesCache(t *testing.T) {
	fx := createTestMenuService(t)
	vendorID, menuID := uuid.New(), uuid.New()

	fx.menuRepo.EXPECT().Delete(mock.Anything, vendorID, menuID).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, service.MenuScopeAll, service.MenuScopeVendor(vendorID)).Return(nil)

	require.NoError(t, fx.service.Delete(context.Background(), vendorID, menuID))
}

func TestMenuService_Import(t *testing.T) {
	fx := createTestMenuService(t)
	vendorID := uuid.New()
	workbook := bytes.NewReader([]byte("xlsx"))

	fx.sheet.EXPECT().ParseMenus(workbook).Return(
		[]service.MenuRow{
			{Row: 2, Name: "Akara", Price: 100, Quantity: 20},
			{Row: 3, Name: "Fufu", Price: 400, Quantity: 5, IsRecurring: true, FrequencyOfRecurrence: "weekly"},
			{Row: 5, Name: "Gold leaf pepper soup", Price: entity.MaxMenuPrice + 1, Quantity: 1},
		},
		[]service.RowError{{Row: 4, Reason: "price must be a positive integer"}},
		nil,
	)
	fx.repos.runTransactions(fx.txManager)
	fx.repos.menu.EXPECT().
		CreateBatch(mock.Anything, mock.AnythingOfType("[]*entity.Menu")).
		Run(func(_ context.Context, menus []*entity.Menu) {
			require.Len(t, menus, 2)
			assert.Equal(t, "weekly", menus[1].FrequencyOfRecurrence)
		}).
		Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, service.MenuScopeAll, service.MenuScopeVendor(vendorID)).Return(nil)

	output, err := fx.service.Import(context.Background(), vendorID, workbook)

	require.NoError(t, err)
	assert.Len(t, output.Created, 2)
	require.Len(t, output.Skipped, 2)
	assert.Equal(t, service.RowError{Row: 4, Reason: "price must be a positive integer"}, output.Skipped[0])
	assert.Equal(t, 5, output.Skipped[1].Row)
	assert.Contains(t, output.Skipped[1].Reason, "price must be at most")
}

func TestMenuService_Import_UnreadableWorkbook(t *testing.T) {
	fx := createTestMenuService(t)
	workbook := bytes.NewReader([]byte("not a workbook"))

	fx.sheet.EXPECT().ParseMenus(workbook).Return(nil, nil, errors.New("zip: not a valid zip file"))

	_, err := fx.service.Import(context.Background(), uuid.New(), workbook)

	assert.ErrorIs(t, err, domainerrors.ErrMenuImportInvalid)
}

func TestMenuService_MenuQRCode(t *testing.T) {
	fx := createTestMenuService(t)
	vendorID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.vendorRepo.EXPECT().FindByID(mock.Anything, vendorID).Return(&entity.Vendor{ID: vendorID}, nil)
	fx.qrService.EXPECT().
		GenerateMenuQR(vendorID, "https://market.example.com/vendor/"+vendorID.String()+"/menu").
		Return(png, nil)

	got, err := fx.service.MenuQRCode(context.Background(), vendorID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}
