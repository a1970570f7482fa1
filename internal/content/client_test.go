package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const productEnvelope = `{
	"total": 2,
	"items": [
		{
			"sys": {"id": "prod-1"},
			"fields": {
				"name": "Pro Grip Sock",
				"urlSlug": "pro-grip-sock",
				"shortDescription": "Our flagship grip sock",
				"description": "Full length grip sock.",
				"price": 33,
				"features": ["Grip sole", "Custom colors"],
				"minimumOrder": 20,
				"mainImage": {"sys": {"id": "asset-1"}},
				"secondaryImage": {"sys": {"id": "asset-missing"}},
				"soldOut": false
			}
		},
		{
			"sys": {"id": "prod-2"},
			"fields": {
				"name": "Classic Sock",
				"urlSlug": "classic-sock",
				"price": 28,
				"minimumOrder": 20,
				"soldOut": true
			}
		}
	],
	"includes": {
		"Asset": [
			{
				"sys": {"id": "asset-1"},
				"fields": {
					"title": "Pro Grip front",
					"file": {
						"url": "//images.ctfassets.net/space/pro-grip.jpg",
						"details": {"image": {"width": 1200, "height": 800}}
					}
				}
			}
		]
	}
}`

const emptyEnvelope = `{"total": 0, "items": [], "includes": {"Asset": []}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		BaseURL:     srv.URL,
		SpaceID:     "space123",
		Environment: "master",
		AccessToken: "token123",
		HTTPClient:  srv.Client(),
	}, nil)
	return client, srv
}

func TestListProducts(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token123" {
			t.Errorf("unexpected auth header: %q", got)
		}
		q := r.URL.Query()
		if q.Get("content_type") != "products" || q.Get("include") != "2" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(productEnvelope)); err != nil {
			t.Errorf("write failed: %v", err)
		}
	})

	products := client.ListProducts(context.Background())
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	p := products[0]
	if p.ID != "prod-1" || p.URLSlug != "pro-grip-sock" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.MainImage != "https://images.ctfassets.net/space/pro-grip.jpg" {
		t.Fatalf("main image not resolved: %q", p.MainImage)
	}
	if p.SecondaryImage != "" {
		t.Fatalf("missing asset should resolve to empty string, got %q", p.SecondaryImage)
	}
	if products[1].Features == nil {
		t.Fatalf("features should never be nil")
	}
}

func TestGetProductBySlugNotFound(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("fields.urlSlug"); got != "nonexistent" {
			t.Errorf("unexpected slug filter: %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("unexpected limit: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(emptyEnvelope)); err != nil {
			t.Errorf("write failed: %v", err)
		}
	})

	if got := client.GetProductBySlug(context.Background(), "nonexistent"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestRemoteFailureYieldsEmptyResults(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	ctx := context.Background()
	if got := client.ListProducts(ctx); len(got) != 0 {
		t.Fatalf("expected empty products, got %v", got)
	}
	if got := client.ListPartners(ctx); len(got) != 0 {
		t.Fatalf("expected empty partners, got %v", got)
	}
	if got := client.GetProductBySlug(ctx, "pro-grip-sock"); got != nil {
		t.Fatalf("expected nil product, got %+v", got)
	}
	if got := client.GetPartnerBySlug(ctx, "some-club"); got != nil {
		t.Fatalf("expected nil partner, got %+v", got)
	}
	if got := client.HomepageGallery(ctx); len(got) != 0 {
		t.Fatalf("expected empty gallery, got %v", got)
	}
}

func TestListPartnersResolvesShowcase(t *testing.T) {
	t.Parallel()

	const envelope = `{
		"total": 1,
		"items": [
			{
				"sys": {"id": "partner-1"},
				"fields": {
					"name": "Westside Tigers",
					"urlSlug": "westside-tigers",
					"logo": {"sys": {"id": "logo-1"}},
					"testimonial": "Best socks our club has worn.",
					"supplierName": "Dana Cole",
					"supplierTitle": "Club Secretary",
					"supplierProducts": [
						{"sys": {"id": "shot-1"}},
						{"sys": {"id": "shot-missing"}}
					]
				}
			}
		],
		"includes": {
			"Asset": [
				{"sys": {"id": "logo-1"}, "fields": {"title": "Tigers logo", "file": {"url": "//img/logo.png", "details": {"image": {"width": 200, "height": 200}}}}},
				{"sys": {"id": "shot-1"}, "fields": {"title": "Match day", "file": {"url": "//img/shot1.jpg", "details": {"image": {"width": 800, "height": 600}}}}}
			]
		}
	}`

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(envelope)); err != nil {
			t.Errorf("write failed: %v", err)
		}
	})

	partners := client.ListPartners(context.Background())
	if len(partners) != 1 {
		t.Fatalf("expected 1 partner, got %d", len(partners))
	}

	p := partners[0]
	if p.Logo != "https://img/logo.png" {
		t.Fatalf("logo not resolved: %q", p.Logo)
	}
	// Unresolvable showcase references are dropped, not kept as "".
	if len(p.SupplierProducts) != 1 || p.SupplierProducts[0] != "https://img/shot1.jpg" {
		t.Fatalf("unexpected showcase: %v", p.SupplierProducts)
	}
}

func TestHomepageGallery(t *testing.T) {
	t.Parallel()

	const envelope = `{
		"total": 1,
		"items": [
			{
				"sys": {"id": "gallery-1"},
				"fields": {
					"title": "Homepage",
					"images": [{"sys": {"id": "img-1"}}, {"sys": {"id": "img-2"}}]
				}
			}
		],
		"includes": {
			"Asset": [
				{"sys": {"id": "img-1"}, "fields": {"title": "Action shot", "file": {"url": "//img/a.jpg", "details": {"image": {"width": 1920, "height": 1080}}}}}
			]
		}
	}`

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("content_type"); got != "homepageGallery" {
			t.Errorf("unexpected content type: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(envelope)); err != nil {
			t.Errorf("write failed: %v", err)
		}
	})

	images := client.HomepageGallery(context.Background())
	if len(images) != 1 {
		t.Fatalf("expected 1 resolved image, got %d", len(images))
	}
	img := images[0]
	if img.URL != "https://img/a.jpg" || img.Width != 1920 || img.Height != 1080 || img.Alt != "Action shot" {
		t.Fatalf("unexpected image: %+v", img)
	}
}
