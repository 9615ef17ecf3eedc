// Package mocks provides gomock implementations of the ports interfaces.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockCategoryAPI(ctrl)
//	api.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return(cats, nil)
package mocks

// Backend API ports used by the services.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=backend_mock.go github.com/target/ecompanel-ui/internal/ports AuthAPI,CategoryAPI,BrandAPI,ManufacturerAPI,ProductAPI,OrderAPI,CustomerAPI,BannerAPI,UploadAPI,HealthChecker

// Redis-backed stores.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=store_mock.go github.com/target/ecompanel-ui/internal/ports CacheRepository,CartStore,ProfileStore
