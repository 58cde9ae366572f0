package impl

import (
	"context"
	"testing"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	mockRepo "foodmarket/internal/mocks/repository"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestVendorService_GetProfile_IncludesEmail(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	srv := NewVendorService(VendorServiceParams{VendorRepo: vendorRepo, AuthRepo: authRepo, Logger: discardLogger()})
	vendor := &entity.Vendor{ID: uuid.New(), AuthID: uuid.New(), BusinessName: "Mama Put"}

	vendorRepo.EXPECT().FindByID(mock.Anything, vendor.ID).Return(vendor, nil)
	authRepo.EXPECT().FindAuthenticationByID(mock.Anything, vendor.AuthID).Return(&entity.Authentication{Email: "mama@example.com"}, nil)

	got, err := srv.GetProfile(context.Background(), vendor.ID)

	require.NoError(t, err)
	assert.Equal(t, "mama@example.com", got.Email)
}

func TestVendorService_UpdateProfile(t *testing.T) {
	vendorID := uuid.New()

	tests := []struct {
		name     string
		input    usecase.UpdateVendorInput
		wantName string
		wantErr  error
	}{
		{name: "rename", input: usecase.UpdateVendorInput{BusinessName: stringPtr(" Iya Basira ")}, wantName: "Iya Basira"},
		{name: "phone only keeps name", input: usecase.UpdateVendorInput{PhoneNumber: stringPtr("+2348000000009")}, wantName: "Mama Put"},
		{name: "blank name", input: usecase.UpdateVendorInput{BusinessName: stringPtr(" ")}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendorRepo := mockRepo.NewMockVendorRepository(t)
			srv := NewVendorService(VendorServiceParams{VendorRepo: vendorRepo, AuthRepo: mockRepo.NewMockAuthRepository(t), Logger: discardLogger()})

			vendorRepo.EXPECT().FindByID(mock.Anything, vendorID).Return(&entity.Vendor{ID: vendorID, BusinessName: "Mama Put"}, nil)
			if tt.wantErr == nil {
				vendorRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Vendor")).Return(nil)
			}

			vendor, err := srv.UpdateProfile(context.Background(), vendorID, &tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, vendor.BusinessName)
		})
	}
}

func TestVendorService_GetVendor_NotFound(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	srv := NewVendorService(VendorServiceParams{VendorRepo: vendorRepo, AuthRepo: mockRepo.NewMockAuthRepository(t), Logger: discardLogger()})
	vendorID := uuid.New()

	vendorRepo.EXPECT().FindByID(mock.Anything, vendorID).Return(nil, repository.ErrVendorNotFound)

	_, err := srv.GetVendor(context.Background(), vendorID)

	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestCustomerService_UpdateProfile(t *testing.T) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	srv := NewCustomerService(CustomerServiceParams{CustomerRepo: customerRepo, AuthRepo: mockRepo.NewMockAuthRepository(t), Logger: discardLogger()})
	customer := &entity.Customer{ID: uuid.New(), FirstName: "Ada", LastName: "Obi", PhoneNumber: "+2348000000002"}

	customerRepo.EXPECT().FindByID(mock.Anything, customer.ID).Return(customer, nil)
	customerRepo.EXPECT().Update(mock.Anything, customer).Return(nil)

	got, err := srv.UpdateProfile(context.Background(), customer.ID, &usecase.UpdateCustomerInput{LastName: stringPtr("Okafor")})

	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Okafor", got.LastName)
}

func TestCustomerService_GetProfile_NotFound(t *testing.T) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	srv := NewCustomerService(CustomerServiceParams{CustomerRepo: customerRepo, AuthRepo: mockRepo.NewMockAuthRepository(t), Logger: discardLogger()})
	customerID := uuid.New()

	customerRepo.EXPECT().FindByID(mock.Anything, customerID).Return(nil, repository.ErrCustomerNotFound)

	_, err := srv.GetProfile(context.Background(), customerID)

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
