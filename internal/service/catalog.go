package service

import (
	"context"
	"errors"
	"fmt"

	"tableside/internal/domain"
)

// AllCategories selects the unfiltered menu.
const AllCategories = "All"

type CatalogService struct {
	repo RestaurantRepository
	qr   QRGenerator
}

func NewCatalogService(repo RestaurantRepository, qr QRGenerator) *CatalogService {
	return &CatalogService{repo: repo, qr: qr}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

// Menu returns the restaurant's items in category plus the category list
// headed by "All".
func (s *CatalogService) Menu(ctx context.Context, restaurantID, category string) (domain.Menu, []string, error) {
	rest, err := s.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	categories := append([]string{AllCategories}, rest.Menu.Categories()...)
	if category == "" || category == AllCategories {
		return rest.Menu, categories, nil
	}
	return rest.Menu.InCategory(category), categories, nil
}

func (s *CatalogService) Table(ctx context.Context, restaurantID, tableNumber string) (*domain.Restaurant, domain.Table, error) {
	rest, err := s.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, domain.Table{}, err
	}
	table, ok := rest.FindTable(tableNumber)
	if !ok {
		return nil, domain.Table{}, fmt.Errorf("%w: table %s at restaurant %s", ErrTableNotFound, tableNumber, restaurantID)
	}
	return rest, table, nil
}

func (s *CatalogService) TableQRCode(ctx context.Context, restaurantID, tableNumber string) ([]byte, error) {
	if s.qr == nil {
		return nil, errors.New("qr generator not configured")
	}
	if _, _, err := s.Table(ctx, restaurantID, tableNumber); err != nil {
		return nil, err
	}
	return s.qr.Generate(restaurantID, tableNumber)
}
