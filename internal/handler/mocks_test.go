package handler

import (
	"context"

	"brand-pricing/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockAdminService is a mock implementation of service.AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) RegisterBrand(ctx context.Context, req *model.BrandRequest) (model.Brand, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockAdminService) ListBrands(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Brand), args.Error(1)
}

func (m *MockAdminService) UpsertProduct(ctx context.Context, req *model.ProductRequest) (model.Product, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockAdminService) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminService) ListProducts(ctx context.Context, brandSubstring, categoryLabel string) ([]model.Product, error) {
	args := m.Called(ctx, brandSubstring, categoryLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockPricingService is a mock implementation of service.PricingService.
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) LowestPrices(ctx context.Context) (*model.LowestPricesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LowestPricesResponse), args.Error(1)
}

func (m *MockPricingService) PriceRange(ctx context.Context, categoryLabel string) (*model.PriceRangeResponse, error) {
	args := m.Called(ctx, categoryLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceRangeResponse), args.Error(1)
}

func (m *MockPricingService) CheapestBrand(ctx context.Context, req *model.CheapestBrandRequest) ([]model.BrandTotal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BrandTotal), args.Error(1)
}
