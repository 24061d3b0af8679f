package service_test

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"
)

type fakeQR struct {
	calls []string
}

func (f *fakeQR) Generate(restaurantID, tableNumber string) ([]byte, error) {
	f.calls = append(f.calls, restaurantID+"/"+tableNumber)
	return []byte("png"), nil
}

func catalogRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:   "1",
		Name: "Bella Vista",
		Menu: domain.Menu{
			{ID: "1", Name: "Margherita Pizza", Category: "Pizza"},
			{ID: "2", Name: "Spaghetti Carbonara", Category: "Pasta"},
			{ID: "11", Name: "Calzone", Category: "Pizza"},
		},
		Tables: []domain.Table{{ID: "1", Number: "1"}, {ID: "3", Number: "3"}},
	}
}

func TestCatalogService_Menu(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		expected []string
	}{
		{name: "all_by_empty", category: "", expected: []string{"1", "2", "11"}},
		{name: "all_by_name", category: service.AllCategories, expected: []string{"1", "2", "11"}},
		{name: "pizza_only", category: "Pizza", expected: []string{"1", "11"}},
		{name: "unknown_category", category: "Sushi", expected: []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRestaurantRepository(t)
			repo.On("GetRestaurant", ctx, "1").Return(catalogRestaurant(), nil).Once()
			svc := service.NewCatalogService(repo, nil)

			menu, categories, err := svc.Menu(ctx, "1", testCase.category)
			require.NoError(t, err)
			assert.Equal(t, []string{"All", "Pizza", "Pasta"}, categories)

			ids := []string{}
			for _, item := range menu {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, testCase.expected, ids)
		})
	}
}

func TestCatalogService_Table(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRestaurantRepository(t)
	repo.On("GetRestaurant", ctx, "1").Return(catalogRestaurant(), nil)
	repo.On("GetRestaurant", ctx, "9").Return(nil, fmt.Errorf("%w: 9", service.ErrRestaurantNotFound))
	qr := &fakeQR{}
	svc := service.NewCatalogService(repo, qr)

	_, table, err := svc.Table(ctx, "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "3", table.Number)

	_, _, err = svc.Table(ctx, "1", "7")
	assert.ErrorIs(t, err, service.ErrTableNotFound)

	_, _, err = svc.Table(ctx, "9", "1")
	assert.ErrorIs(t, err, service.ErrRestaurantNotFound)

	code, err := svc.TableQRCode(ctx, "1", "1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), code)

	_, err = svc.TableQRCode(ctx, "1", "7")
	assert.ErrorIs(t, err, service.ErrTableNotFound)
	assert.Equal(t, []string{"1/1"}, qr.calls)
}

func TestCatalogService_List(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	repo.On("ListRestaurants", mock.Anything).Return([]domain.Restaurant{*catalogRestaurant()}, nil).Once()

	list, err := service.NewCatalogService(repo, nil).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTableLink(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/?restaurant=1&table=3", service.TableLink("http://localhost:8080/", "1", "3"))
	assert.Equal(t, "https://x.test/?restaurant=a+b&table=1", service.TableLink("https://x.test", "a b", "1"))
}

func TestDefaultQRGenerator_ProducesPNG(t *testing.T) {
	data, err := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}.Generate("1", "3")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
