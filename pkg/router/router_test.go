package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/storefront/pkg/router"
)

func TestNamedRoutesAndURL(t *testing.T) {
	r := router.New()
	r.Get("/product/{id}", "product.show", func(w http.ResponseWriter, _ *http.Request) {})

	path, ok := r.Path("product.show")
	if !ok || path != "/product/{id}" {
		t.Fatalf("Path = %q, %v", path, ok)
	}

	url, err := r.URL("product.show", map[string]string{"id": "7"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/product/7" {
		t.Errorf("URL = %q", url)
	}

	if _, err := r.URL("product.show", nil); err == nil {
		t.Error("missing params must error")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("unknown name must error")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	r := router.New()

	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	api := r.Group("/order", tag("outer"))
	admin := api.Group("", tag("inner"))
	admin.Put("/cancel/{id}", "order.cancel", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPut, "/order/cancel/3", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v", order)
	}

	if path, _ := r.Path("order.cancel"); path != "/order/cancel/{id}" {
		t.Errorf("group path = %q", path)
	}
}

func TestStaticSegmentsWinOverParams(t *testing.T) {
	r := router.New()
	r.Get("/product/{id}", "product.show", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("by-id")) //nolint:errcheck
	})
	r.Get("/product/available", "product.available", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("listing")) //nolint:errcheck
	})

	req := httptest.NewRequest(http.MethodGet, "/product/available", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Body.String() != "listing" {
		t.Errorf("body = %q, static segment must win", rec.Body.String())
	}
}
