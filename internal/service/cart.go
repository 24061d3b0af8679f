package service

import (
	"sort"
	"time"

	"tableside/internal/domain"
)

// Cart maps menu item ids to requested quantities. Quantities are always >= 1.
type Cart map[string]int

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	for id, qty := range c {
		out[id] = qty
	}
	return out
}

// AddItem returns a copy of cart with one more of itemID.
func AddItem(cart Cart, itemID string) Cart {
	out := cart.clone()
	out[itemID]++
	return out
}

// RemoveItem returns a copy of cart with one less of itemID, dropping the
// entry instead of keeping a zero quantity.
func RemoveItem(cart Cart, itemID string) Cart {
	out := cart.clone()
	qty, ok := out[itemID]
	if !ok {
		return out
	}
	if qty > 1 {
		out[itemID] = qty - 1
	} else {
		delete(out, itemID)
	}
	return out
}

// CartTotal prices the cart against menu; ids missing from the menu count as 0.
func CartTotal(cart Cart, menu domain.Menu) float64 {
	var total float64
	for id, qty := range cart {
		if item, ok := menu.Find(id); ok {
			total += item.Price * float64(qty)
		}
	}
	return total
}

func CartItemCount(cart Cart) int {
	count := 0
	for _, qty := range cart {
		count += qty
	}
	return count
}

type CartLine struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// CartLines lists cart entries in menu order, followed by ids the menu does
// not know in lexical order.
func CartLines(cart Cart, menu domain.Menu) []CartLine {
	lines := make([]CartLine, 0, len(cart))
	for _, item := range menu {
		qty, ok := cart[item.ID]
		if !ok {
			continue
		}
		lines = append(lines, CartLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   qty,
			Subtotal:   item.Price * float64(qty),
		})
	}

	var unknown []string
	for id := range cart {
		if _, ok := menu.Find(id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		lines = append(lines, CartLine{MenuItemID: id, Quantity: cart[id]})
	}
	return lines
}

// PlaceOrder snapshots the cart into a pending order and hands back an empty
// cart. An empty cart yields an order of zero; callers decide whether to reject it.
func PlaceOrder(cart Cart, restaurantID, tableNumber string, menu domain.Menu, ids IDGenerator, now time.Time) (domain.Order, Cart) {
	lines := CartLines(cart, menu)
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}

	order := domain.Order{
		ID:           ids.NewID(),
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		Items:        items,
		Status:       domain.OrderPending,
		Total:        CartTotal(cart, menu),
		CreatedAt:    now,
	}
	return order, Cart{}
}
