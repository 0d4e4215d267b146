package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFrom(t *testing.T) {
	if From(nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	wrapped := fmt.Errorf("handler: %w", NotFound("company_not_found", nil))
	got := From(wrapped)
	if got.Status != http.StatusNotFound || got.Code != "company_not_found" {
		t.Fatalf("unexpected: %+v", got)
	}

	plain := errors.New("connection refused")
	got = From(plain)
	if got.Status != http.StatusInternalServerError || !errors.Is(got, plain) {
		t.Fatalf("unexpected: %+v", got)
	}
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{New(http.StatusBadRequest, "id_mismatch", errors.New("path id 1 != body id 2")), "path id 1 != body id 2"},
		{New(http.StatusBadRequest, "id_mismatch", nil), "id_mismatch"},
		{New(http.StatusTeapot, "", nil), "api error (418)"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error(): got=%q want=%q", got, tc.want)
		}
	}
}
