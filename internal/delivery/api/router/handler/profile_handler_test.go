package handler

import (
	"net/http"
	"testing"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	mockUC "foodmarket/internal/mocks/usecase"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVendorHandler_PublicAndProfile(t *testing.T) {
	vendorUC := mockUC.NewMockVendorUsecase(t)
	h := NewVendorHandler(VendorHandlerParams{VendorUC: vendorUC, Logger: discardLogger()})

	vendorID := uuid.New()
	e := newTestEcho()
	e.GET("/vendor", h.ListVendors)
	e.GET("/vendor/:id", h.GetVendor)
	e.PATCH("/profile", h.UpdateProfile, as(vendorID, entity.RoleVendor))

	vendorUC.EXPECT().ListVendors(mock.Anything).Return([]*entity.Vendor{{ID: vendorID, BusinessName: "Mama Put"}}, nil)
	vendorUC.EXPECT().GetVendor(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrVendorNotFound)

	name := "Mama Put Deluxe"
	vendorUC.EXPECT().
		UpdateProfile(mock.Anything, vendorID, &usecase.UpdateVendorInput{BusinessName: &name}).
		Return(&entity.Vendor{ID: vendorID, BusinessName: name}, nil)

	rec := doRequest(e, http.MethodGet, "/vendor", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var vendors []entity.Vendor
	decodeData(t, rec, &vendors)
	require.Len(t, vendors, 1)

	rec = doRequest(e, http.MethodGet, "/vendor/"+uuid.NewString(), "")
	requireErrorCode(t, rec, http.StatusNotFound, "VENDOR_NOT_FOUND")

	rec = doRequest(e, http.MethodPatch, "/profile", `{"business_name":"Mama Put Deluxe"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var vendor entity.Vendor
	decodeData(t, rec, &vendor)
	assert.Equal(t, name, vendor.BusinessName)
}

func TestCustomerHandler_Profile(t *testing.T) {
	customerUC := mockUC.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC, Logger: discardLogger()})

	customerID := uuid.New()
	e := newTestEcho()
	e.GET("/profile", h.GetProfile, as(customerID, entity.RoleCustomer))
	e.PATCH("/profile", h.UpdateProfile, as(customerID, entity.RoleCustomer))
	e.GET("/anonymous", h.GetProfile)

	customerUC.EXPECT().GetProfile(mock.Anything, customerID).
		Return(&entity.Customer{ID: customerID, FirstName: "Ada", Email: "ada@example.com"}, nil)

	rec := doRequest(e, http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var customer entity.Customer
	decodeData(t, rec, &customer)
	assert.Equal(t, "Ada", customer.FirstName)

	rec = doRequest(e, http.MethodPatch, "/profile", `{"first_name":"Adaeze Adaeze Adaeze Adaeze Adaeze Adaeze Adaeze Adaeze"}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

	rec = doRequest(e, http.MethodGet, "/anonymous", "")
	requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
}
