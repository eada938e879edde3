package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shashiranjanraj/storefront/pkg/apperr"
)

func TestSentinelMatchingSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("checkout: %w", apperr.ErrInsufficientStock)
	if !errors.Is(wrapped, apperr.ErrInsufficientStock) {
		t.Error("wrapped sentinel must still match")
	}
}

func TestKindOf(t *testing.T) {
	if got := apperr.KindOf(apperr.NotFound("order")); got != apperr.KindNotFound {
		t.Errorf("KindOf(NotFound) = %v", got)
	}
	if got := apperr.KindOf(errors.New("plain")); got != apperr.KindInternal {
		t.Errorf("non-apperr errors must map to KindInternal, got %v", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.Validation(map[string]string{"email": "required"}), http.StatusUnprocessableEntity},
		{apperr.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperr.NotFound("product"), http.StatusNotFound},
		{apperr.ErrInsufficientStock, http.StatusBadRequest},
		{apperr.ErrInvalidTransition, http.StatusBadRequest},
		{apperr.Internal("boom", errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := apperr.HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestFieldsOf(t *testing.T) {
	fields := map[string]string{"email": "The email field is required."}
	err := apperr.Validation(fields)

	wrapped := fmt.Errorf("bind: %w", err)
	got := apperr.FieldsOf(wrapped)
	if got["email"] != fields["email"] {
		t.Errorf("FieldsOf lost detail: %v", got)
	}

	if apperr.FieldsOf(errors.New("plain")) != nil {
		t.Error("plain errors carry no fields")
	}
}
