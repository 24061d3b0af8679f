package service

import (
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(restaurantID, tableNumber string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Generate(restaurantID, tableNumber string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(TableLink(g.BaseURL, restaurantID, tableNumber), qrcode.Medium, size)
}

// TableLink builds the deep link that drops a diner straight into the table's menu.
func TableLink(baseURL, restaurantID, tableNumber string) string {
	q := url.Values{}
	q.Set("restaurant", restaurantID)
	q.Set("table", tableNumber)
	return strings.TrimRight(baseURL, "/") + "/?" + q.Encode()
}
