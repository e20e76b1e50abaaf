package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/digistore-backend/internal/config"
	"github.com/your-org/digistore-backend/internal/domain/order"
)

func TestFormatVND(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{69000, "69.000 ₫"},
		{167000, "167.000 ₫"},
		{1250000, "1.250.000 ₫"},
		{-69000, "-69.000 ₫"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatVND(tc.amount))
	}
}

func TestGenerateInvoiceHTML(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CompanyName = "Digistore Việt Nam"
	cfg.App.CompanyEmail = "support@digistore.vn"

	svc := NewService(cfg)

	o := &order.Order{
		OrderNumber:   "ORD-20250309-00042",
		CustomerName:  "Nguyễn Văn A",
		Email:         "a@example.com",
		Status:        order.StatusPending,
		PaymentMethod: "bank_transfer",
		TotalAmount:   167000,
		CreatedAt:     time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC),
		Items: []order.Item{
			{Name: "Netflix Premium", Price: 69000, Quantity: 2},
			{Name: "Spotify Premium", Price: 29000, Quantity: 1},
		},
	}

	html, err := svc.generateHTML(InvoiceData{
		InvoiceNumber: "INV-" + o.OrderNumber,
		InvoiceDate:   "09/03/2025",
		Order:         o,
		Company: CompanyInfo{
			Name:  cfg.App.CompanyName,
			Email: cfg.App.CompanyEmail,
		},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "INV-ORD-20250309-00042")
	assert.Contains(t, html, "Nguyễn Văn A")
	assert.Contains(t, html, "167.000 ₫")
	assert.Contains(t, html, "138.000 ₫") // 69.000 x 2 line total
}
