// internal/infrastructure/remotestore/client.go
package remotestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/your-org/digistore-backend/internal/config"
	"github.com/your-org/digistore-backend/internal/domain/catalog"
)

// Client fetches product snapshots from the hosted store's REST endpoint.
// It implements catalog.Fetcher.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a remote store client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.Store.RemoteBaseURL, "/"),
		apiKey:  cfg.Store.RemoteAPIKey,
		http: &http.Client{
			Timeout: cfg.Store.RemoteTimeout,
		},
	}
}

// Enabled reports whether a remote endpoint is configured at all. Without
// one the catalog runs on its fallback dataset.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// flexID accepts product ids that arrive either as JSON numbers or as
// quoted strings. The hosted store is not consistent about which it sends.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// remoteProduct mirrors the hosted store's product row shape
type remoteProduct struct {
	ID            flexID  `json:"id"`
	Slug          string  `json:"slug"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"original_price"`
	Discount      int     `json:"discount"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	Sold          int     `json:"sold"`
	IsHot         bool    `json:"is_hot"`
	IsNew         bool    `json:"is_new"`

	Variants []remoteVariant `json:"variants"`
	Reviews  []remoteReview  `json:"reviews"`
}

type remoteVariant struct {
	ID            uint   `json:"id"`
	ProductID     flexID `json:"product_id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"original_price"`
}

type remoteReview struct {
	ID            uint      `json:"id"`
	ProductID     flexID    `json:"product_id"`
	User          string    `json:"user"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	Date          time.Time `json:"date"`
	PurchasedType string    `json:"purchased_type"`
}

// FetchProducts retrieves the full product list from the hosted store
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("remote store is not configured")
	}

	url := c.baseURL + "/products?select=*,variants:product_variants(*),reviews:product_reviews(*)"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build remote store request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("remote store returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rows []remoteProduct
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode remote store response: %w", err)
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProduct())
	}
	return products, nil
}

func (r remoteProduct) toProduct() catalog.Product {
	p := catalog.Product{
		ID:            string(r.ID),
		Slug:          r.Slug,
		Name:          r.Name,
		Description:   r.Description,
		Image:         r.Image,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Discount:      r.Discount,
		Category:      catalog.Category(r.Category),
		Rating:        r.Rating,
		Sold:          r.Sold,
		IsHot:         r.IsHot,
		IsNew:         r.IsNew,
	}
	for _, v := range r.Variants {
		p.Variants = append(p.Variants, catalog.Variant{
			ID:            v.ID,
			ProductID:     string(v.ProductID),
			Name:          v.Name,
			Price:         v.Price,
			OriginalPrice: v.OriginalPrice,
		})
	}
	for _, rv := range r.Reviews {
		p.Reviews = append(p.Reviews, catalog.Review{
			ID:            rv.ID,
			ProductID:     string(rv.ProductID),
			User:          rv.User,
			Rating:        rv.Rating,
			Comment:       rv.Comment,
			Date:          rv.Date,
			PurchasedType: rv.PurchasedType,
		})
	}
	return p
}
