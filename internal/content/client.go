// Package content is a read-only client for the headless content store
// backing the catalogue, partner, and gallery pages.
//
// Remote failures never escape this package: list operations come back
// empty and single-entity lookups come back nil, so callers render the
// same graceful empty state for "not found" and "service unavailable".
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	contentTypeProducts = "products"
	contentTypePartners = "partners"
	contentTypeGallery  = "homepageGallery"

	// One level of linked-asset resolution is enough for every content
	// type we read.
	includeDepth = "2"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	spaceID    string
	env        string
	token      string
	logger     *slog.Logger
}

type ClientConfig struct {
	BaseURL     string
	SpaceID     string
	Environment string
	AccessToken string
	HTTPClient  *http.Client
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	env := cfg.Environment
	if env == "" {
		env = "master"
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		spaceID:    cfg.SpaceID,
		env:        env,
		token:      cfg.AccessToken,
		logger:     logger.With("component", "content_client"),
	}
}

// ListProducts returns every catalogue product. Empty on failure.
func (c *Client) ListProducts(ctx context.Context) []Product {
	var resp productResponse
	if err := c.getEntries(ctx, contentTypeProducts, "", 0, &resp); err != nil {
		c.logger.Error("failed to fetch products", "error", err)
		return []Product{}
	}

	products := make([]Product, 0, len(resp.Items))
	for _, item := range resp.Items {
		products = append(products, reshapeProduct(item, resp.Includes.Asset))
	}
	return products
}

// GetProductBySlug returns the product with the given url slug, or nil when
// it does not exist or the store is unreachable.
func (c *Client) GetProductBySlug(ctx context.Context, slug string) *Product {
	var resp productResponse
	if err := c.getEntries(ctx, contentTypeProducts, slug, 1, &resp); err != nil {
		c.logger.Error("failed to fetch product", "slug", slug, "error", err)
		return nil
	}
	if len(resp.Items) == 0 {
		return nil
	}

	product := reshapeProduct(resp.Items[0], resp.Includes.Asset)
	return &product
}

// ListPartners returns every partner testimonial entry. Empty on failure.
func (c *Client) ListPartners(ctx context.Context) []Partner {
	var resp partnerResponse
	if err := c.getEntries(ctx, contentTypePartners, "", 0, &resp); err != nil {
		c.logger.Error("failed to fetch partners", "error", err)
		return []Partner{}
	}

	partners := make([]Partner, 0, len(resp.Items))
	for _, item := range resp.Items {
		partners = append(partners, reshapePartner(item, resp.Includes.Asset))
	}
	return partners
}

// GetPartnerBySlug returns the partner with the given url slug, or nil.
func (c *Client) GetPartnerBySlug(ctx context.Context, slug string) *Partner {
	var resp partnerResponse
	if err := c.getEntries(ctx, contentTypePartners, slug, 1, &resp); err != nil {
		c.logger.Error("failed to fetch partner", "slug", slug, "error", err)
		return nil
	}
	if len(resp.Items) == 0 {
		return nil
	}

	partner := reshapePartner(resp.Items[0], resp.Includes.Asset)
	return &partner
}

// HomepageGallery returns the carousel images for the homepage. Empty on
// failure or when no gallery entry is published.
func (c *Client) HomepageGallery(ctx context.Context) []GalleryImage {
	var resp galleryResponse
	if err := c.getEntries(ctx, contentTypeGallery, "", 1, &resp); err != nil {
		c.logger.Error("failed to fetch homepage gallery", "error", err)
		return []GalleryImage{}
	}
	if len(resp.Items) == 0 {
		return []GalleryImage{}
	}

	links := resp.Items[0].Fields.Images
	images := make([]GalleryImage, 0, len(links))
	for _, link := range links {
		if img, ok := resolveAssetDetails(link.Sys.ID, resp.Includes.Asset); ok {
			images = append(images, img)
		}
	}
	return images
}

func (c *Client) getEntries(ctx context.Context, contentType, slug string, limit int, v any) error {
	params := url.Values{}
	params.Set("content_type", contentType)
	params.Set("include", includeDepth)
	if slug != "" {
		params.Set("fields.urlSlug", slug)
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, c.spaceID, c.env, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach content store: %w", err)
	}
	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("failed to read content store response: %w", readErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close content store response body: %w", closeErr)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content store returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode content store response: %w", err)
	}
	return nil
}

func reshapeProduct(item productItem, assets []asset) Product {
	features := item.Fields.Features
	if features == nil {
		features = []string{}
	}

	return Product{
		ID:               item.Sys.ID,
		Name:             item.Fields.Name,
		URLSlug:          item.Fields.URLSlug,
		ShortDescription: item.Fields.ShortDescription,
		Description:      item.Fields.Description,
		Price:            item.Fields.Price,
		Features:         features,
		MinimumOrder:     item.Fields.MinimumOrder,
		MainImage:        resolveAsset(item.Fields.MainImage, assets),
		SecondaryImage:   resolveAsset(item.Fields.SecondaryImage, assets),
		SoldOut:          item.Fields.SoldOut,
	}
}

func reshapePartner(item partnerItem, assets []asset) Partner {
	showcase := make([]string, 0, len(item.Fields.SupplierProducts))
	for _, link := range item.Fields.SupplierProducts {
		if resolved := resolveAsset(&link, assets); resolved != "" {
			showcase = append(showcase, resolved)
		}
	}

	return Partner{
		ID:               item.Sys.ID,
		Name:             item.Fields.Name,
		URLSlug:          item.Fields.URLSlug,
		Logo:             resolveAsset(item.Fields.Logo, assets),
		Testimonial:      item.Fields.Testimonial,
		SupplierName:     item.Fields.SupplierName,
		SupplierTitle:    item.Fields.SupplierTitle,
		SupplierProducts: showcase,
	}
}

// resolveAsset maps an asset link to a fetchable URL. An absent asset
// resolves to "" rather than an error.
func resolveAsset(link *assetLink, assets []asset) string {
	if link == nil || link.Sys.ID == "" {
		return ""
	}
	for _, a := range assets {
		if a.Sys.ID == link.Sys.ID {
			return normalizeAssetURL(a.Fields.File.URL)
		}
	}
	return ""
}

func resolveAssetDetails(id string, assets []asset) (GalleryImage, bool) {
	for _, a := range assets {
		if a.Sys.ID != id {
			continue
		}
		alt := a.Fields.Title
		if alt == "" {
			alt = a.Fields.Description
		}
		if alt == "" {
			alt = "Image"
		}
		return GalleryImage{
			URL:    normalizeAssetURL(a.Fields.File.URL),
			Alt:    alt,
			Title:  a.Fields.Title,
			Width:  a.Fields.File.Details.Image.Width,
			Height: a.Fields.File.Details.Image.Height,
		}, true
	}
	return GalleryImage{}, false
}

// The content store serves protocol-relative asset URLs.
func normalizeAssetURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}
