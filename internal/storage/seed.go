package storage

import (
	"strconv"
	"time"

	"tableside/internal/domain"
)

// SeedData is the static catalog plus the sample reservations and orders the
// demo starts with.
type SeedData struct {
	Restaurants  []domain.Restaurant
	Reservations []domain.Reservation
	Orders       []domain.Order
}

// Seed builds a fresh copy of the demo data. Sample orders are stamped with now
// so they count toward today's revenue.
func Seed(now time.Time) SeedData {
	return SeedData{
		Restaurants:  seedRestaurants(),
		Reservations: seedReservations(now),
		Orders:       seedOrders(now),
	}
}

func seedRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:          "1",
			Name:        "Bella Vista",
			Description: "Authentic Italian cuisine with a modern twist, featuring fresh pasta made daily and wood-fired pizzas.",
			Cuisine:     "Italian",
			Address:     "123 Main Street, Downtown",
			Phone:       "+1 (555) 123-4567",
			Email:       "reservations@bellavista.com",
			ImageURL:    "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg",
			Rating:      4.8,
			PriceRange:  "$$-$$$",
			OpenHours:   "11:00 AM - 10:00 PM",
			Capacity:    80,
			Menu: domain.Menu{
				{ID: "1", Name: "Margherita Pizza", Description: "Traditional pizza with fresh tomatoes, mozzarella, and basil", Price: 18.99, Category: "Pizza", ImageURL: "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg", IsVegetarian: true},
				{ID: "2", Name: "Spaghetti Carbonara", Description: "Classic Roman pasta with eggs, cheese, pancetta, and pepper", Price: 22.99, Category: "Pasta", ImageURL: "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg"},
				{ID: "3", Name: "Grilled Salmon", Description: "Fresh Atlantic salmon with herbs and lemon butter", Price: 28.99, Category: "Seafood", ImageURL: "https://images.pexels.com/photos/725990/pexels-photo-725990.jpeg"},
				{ID: "4", Name: "Caesar Salad", Description: "Crisp romaine lettuce with parmesan cheese and croutons", Price: 14.99, Category: "Salads", ImageURL: "https://images.pexels.com/photos/2097090/pexels-photo-2097090.jpeg", IsVegetarian: true},
				{ID: "5", Name: "Tiramisu", Description: "Classic Italian dessert with coffee-soaked ladyfingers", Price: 9.99, Category: "Desserts", ImageURL: "https://images.pexels.com/photos/6880219/pexels-photo-6880219.jpeg", IsVegetarian: true},
			},
			Tables: tables("bella-vista", 2, 4, 6, 2, 4),
		},
		{
			ID:          "2",
			Name:        "Sakura Sushi",
			Description: "Premium Japanese dining experience with fresh sashimi, handcrafted sushi rolls, and traditional hot dishes.",
			Cuisine:     "Japanese",
			Address:     "456 Oak Avenue, Midtown",
			Phone:       "+1 (555) 987-6543",
			Email:       "hello@sakurasushi.com",
			ImageURL:    "https://images.pexels.com/photos/2098085/pexels-photo-2098085.jpeg",
			Rating:      4.9,
			PriceRange:  "$$$-$$$$",
			OpenHours:   "5:00 PM - 11:00 PM",
			Capacity:    60,
			Menu: domain.Menu{
				{ID: "6", Name: "Dragon Roll", Description: "Shrimp tempura, avocado, cucumber topped with eel and avocado", Price: 16.99, Category: "Sushi Rolls", ImageURL: "https://images.pexels.com/photos/357756/pexels-photo-357756.jpeg"},
				{ID: "7", Name: "Chirashi Bowl", Description: "Assorted fresh sashimi over seasoned sushi rice", Price: 24.99, Category: "Bowls", ImageURL: "https://images.pexels.com/photos/8951104/pexels-photo-8951104.jpeg"},
				{ID: "8", Name: "Miso Soup", Description: "Traditional Japanese soup with tofu and seaweed", Price: 4.99, Category: "Soups", ImageURL: "https://images.pexels.com/photos/5848612/pexels-photo-5848612.jpeg", IsVegetarian: true},
			},
			Tables: tables("sakura-sushi", 2, 4, 6),
		},
		{
			ID:          "3",
			Name:        "The Garden Bistro",
			Description: "Farm-to-table dining with seasonal menus, organic ingredients, and a cozy outdoor patio perfect for any occasion.",
			Cuisine:     "American",
			Address:     "789 Pine Street, Garden District",
			Phone:       "+1 (555) 456-7890",
			Email:       "info@gardenbistro.com",
			ImageURL:    "https://images.pexels.com/photos/1581384/pexels-photo-1581384.jpeg",
			Rating:      4.6,
			PriceRange:  "$$-$$$",
			OpenHours:   "10:00 AM - 9:00 PM",
			Capacity:    120,
			Menu: domain.Menu{
				{ID: "9", Name: "Avocado Toast", Description: "Multi-grain bread topped with smashed avocado and herbs", Price: 12.99, Category: "Breakfast", ImageURL: "https://images.pexels.com/photos/566566/pexels-photo-566566.jpeg", IsVegan: true},
				{ID: "10", Name: "Quinoa Power Bowl", Description: "Nutrient-packed bowl with quinoa, roasted vegetables, and tahini", Price: 16.99, Category: "Bowls", ImageURL: "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg", IsVegan: true},
			},
			Tables: tables("garden-bistro", 2, 4),
		},
	}
}

// tables numbers tables from 1 in the order their capacities are given.
func tables(slug string, capacities ...int) []domain.Table {
	out := make([]domain.Table, 0, len(capacities))
	for i, capacity := range capacities {
		n := strconv.Itoa(i + 1)
		out = append(out, domain.Table{
			ID:       n,
			Number:   n,
			Capacity: capacity,
			QRCode:   slug + "-table-" + n,
		})
	}
	return out
}

func seedReservations(now time.Time) []domain.Reservation {
	return []domain.Reservation{
		{
			ID:              "1",
			CustomerID:      "1",
			CustomerName:    "John Doe",
			RestaurantID:    "1",
			RestaurantName:  "Bella Vista",
			Date:            "2024-12-20",
			Time:            "7:30 PM",
			Guests:          2,
			Status:          domain.ReservationConfirmed,
			SpecialRequests: "Window table preferred",
			CreatedAt:       now,
		},
		{
			ID:             "2",
			CustomerID:     "2",
			CustomerName:   "Jane Smith",
			RestaurantID:   "2",
			RestaurantName: "Sakura Sushi",
			Date:           "2024-12-22",
			Time:           "8:00 PM",
			Guests:         4,
			Status:         domain.ReservationPending,
			CreatedAt:      now,
		},
	}
}

func seedOrders(now time.Time) []domain.Order {
	return []domain.Order{
		{
			ID:           "1",
			RestaurantID: "1",
			TableNumber:  "3",
			Items: []domain.OrderItem{
				{MenuItemID: "1", Name: "Margherita Pizza", Price: 18.99, Quantity: 2},
				{MenuItemID: "2", Name: "Spaghetti Carbonara", Price: 22.99, Quantity: 1},
			},
			Status:    domain.OrderPreparing,
			Total:     60.97,
			CreatedAt: now,
		},
		{
			ID:           "2",
			RestaurantID: "1",
			TableNumber:  "5",
			Items: []domain.OrderItem{
				{MenuItemID: "4", Name: "Caesar Salad", Price: 14.99, Quantity: 1},
				{MenuItemID: "5", Name: "Tiramisu", Price: 9.99, Quantity: 2},
			},
			Status:    domain.OrderReady,
			Total:     34.97,
			CreatedAt: now,
		},
	}
}
