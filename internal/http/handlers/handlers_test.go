package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/companyinfo-backend/internal/domain"
	"github.com/yungbote/companyinfo-backend/internal/http/response"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
	"github.com/yungbote/companyinfo-backend/internal/platform/throttle"
	"github.com/yungbote/companyinfo-backend/internal/services"
)

var errStore = errors.New("pq: connection refused to 10.0.0.3")

type failingCompanies struct{}

func (failingCompanies) List(context.Context) ([]*types.Company, error) { return nil, errStore }
func (failingCompanies) GetByID(context.Context, int) (*types.Company, error) {
	return nil, errStore
}
func (failingCompanies) Create(context.Context, *types.Company) (*types.Company, error) {
	return nil, errStore
}
func (failingCompanies) Update(context.Context, *types.Company) (bool, error) { return false, errStore }
func (failingCompanies) Delete(context.Context, int) (bool, error)            { return false, errStore }

type emptyCountries struct{ failingCountries }

func (emptyCountries) CompanyStatistics(context.Context, int) (map[string]int, error) {
	return map[string]int{}, nil
}

type failingCountries struct{}

func (failingCountries) List(context.Context) ([]*types.Country, error) { return nil, errStore }
func (failingCountries) GetByID(context.Context, int) (*types.Country, error) {
	return nil, errStore
}
func (failingCountries) Create(context.Context, *types.Country) (*types.Country, error) {
	return nil, errStore
}
func (failingCountries) Update(context.Context, *types.Country) (bool, error) { return false, errStore }
func (failingCountries) Delete(context.Context, int) (bool, error)            { return false, errStore }
func (failingCountries) CompanyStatistics(context.Context, int) (map[string]int, error) {
	return nil, errStore
}

type brokenAuth struct{}

func (brokenAuth) Login(context.Context, string, string) (string, error) {
	return "", errors.New("signing key unavailable")
}
func (brokenAuth) SetContextFromToken(ctx context.Context, _ string) (context.Context, error) {
	return ctx, services.ErrInvalidToken
}
func (brokenAuth) GetAccessTTL() time.Duration { return time.Minute }

func serve(t *testing.T, method, route, path, body string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, route, h)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func assertGeneric500(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "10.0.0.3") {
		t.Fatalf("store detail leaked: %s", rec.Body.String())
	}
	var env response.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || env.Error.Message != response.InternalErrorMessage {
		t.Fatalf("envelope=%s err=%v", rec.Body.String(), err)
	}
}

func TestCompanyHandlerStoreFailures(t *testing.T) {
	h := NewCompanyHandler(logger.Nop(), failingCompanies{})

	assertGeneric500(t, serve(t, http.MethodGet, "/companies", "/companies", "", h.List))
	assertGeneric500(t, serve(t, http.MethodGet, "/companies/:id", "/companies/1", "", h.Get))
	assertGeneric500(t, serve(t, http.MethodPost, "/companies", "/companies", `{"name":"Apple"}`, h.Create))
	assertGeneric500(t, serve(t, http.MethodPut, "/companies/:id", "/companies/1", `{"id":1,"name":"Apple"}`, h.Update))
	assertGeneric500(t, serve(t, http.MethodDelete, "/companies/:id", "/companies/1", "", h.Delete))
}

func TestCountryHandlerStatistics(t *testing.T) {
	h := NewCountryHandler(logger.Nop(), failingCountries{})
	route := "/countries/:id/company-statistics"
	assertGeneric500(t, serve(t, http.MethodGet, route, "/countries/1/company-statistics", "", h.CompanyStatistics))

	rec := serve(t, http.MethodGet, route, "/countries/x/company-statistics", "", h.CompanyStatistics)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-integer id: status=%d", rec.Code)
	}

	h = NewCountryHandler(logger.Nop(), emptyCountries{})
	rec = serve(t, http.MethodGet, route, "/countries/1/company-statistics", "", h.CompanyStatistics)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("empty stats: status=%d", rec.Code)
	}
}

func TestAuthHandlerLoginInternalError(t *testing.T) {
	h := NewAuthHandler(logger.Nop(), brokenAuth{}, nil)
	rec := serve(t, http.MethodPost, "/login", "/login", `{"username":"admin","password":"pw"}`, h.Login)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestHealthHandlerWithoutStore(t *testing.T) {
	rec := serve(t, http.MethodGet, "/healthcheck", "/healthcheck", "", NewHealthHandler(nil).HealthCheck)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("status=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestIntParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for path, want := range map[string]int{"/x/42": http.StatusOK, "/x/-3": http.StatusOK, "/x/4.2": http.StatusBadRequest, "/x/ten": http.StatusBadRequest} {
		rec := serve(t, http.MethodGet, "/x/:id", path, "", func(c *gin.Context) {
			if _, ok := intParam(c, "id"); ok {
				c.Status(http.StatusOK)
			}
		})
		if rec.Code != want {
			t.Fatalf("%s: status=%d want=%d", path, rec.Code, want)
		}
	}
}

type okAuth struct{ brokenAuth }

func (okAuth) Login(_ context.Context, user, pass string) (string, error) {
	if user == "admin" && pass == "pw" {
		return "token", nil
	}
	return "", services.ErrInvalidCredentials
}

func TestAuthHandlerThrottlesRepeatedFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(logger.Nop(), okAuth{}, throttle.NewMemory(2, time.Hour))
	r := gin.New()
	r.POST("/login", h.Login)

	post := func(body string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.RemoteAddr = "192.0.2.10:4000"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post(`{"username":"admin","password":"wrong"}`); code != http.StatusUnauthorized {
		t.Fatalf("first failure: status=%d", code)
	}
	if code := post(`{"username":"admin","password":"pw"}`); code != http.StatusOK {
		t.Fatalf("success within limit: status=%d", code)
	}
	// success cleared the counter
	if code := post(`{"username":"admin","password":"wrong"}`); code != http.StatusUnauthorized {
		t.Fatalf("after reset: status=%d", code)
	}
	if code := post(`{"username":"admin","password":"wrong"}`); code != http.StatusUnauthorized {
		t.Fatalf("second failure: status=%d", code)
	}
	if code := post(`{"username":"admin","password":"pw"}`); code != http.StatusTooManyRequests {
		t.Fatalf("over limit: status=%d", code)
	}
}

type countingCompanies struct {
	failingCompanies
	writes int
}

func (s *countingCompanies) Create(context.Context, *types.Company) (*types.Company, error) {
	s.writes++
	return nil, errStore
}

func (s *countingCompanies) Update(context.Context, *types.Company) (bool, error) {
	s.writes++
	return false, errStore
}

func TestCompanyHandlerRejectsBlankNameBeforeService(t *testing.T) {
	svc := &countingCompanies{}
	h := NewCompanyHandler(logger.Nop(), svc)

	for _, rec := range []*httptest.ResponseRecorder{
		serve(t, http.MethodPost, "/companies", "/companies", `{"name":"   "}`, h.Create),
		serve(t, http.MethodPut, "/companies/:id", "/companies/1", `{"id":1,"name":"   "}`, h.Update),
		serve(t, http.MethodPut, "/companies/:id", "/companies/1", `{"id":1,"name":""}`, h.Update),
	} {
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
		}
		var env response.ErrorEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v", rec.Body.String(), err)
		}
		if env.Error.Code != "validation_failed" || len(env.Error.Violations) != 1 || env.Error.Violations[0].Field != "name" {
			t.Fatalf("envelope=%+v", env)
		}
	}
	if svc.writes != 0 {
		t.Fatalf("service writes=%d want=0", svc.writes)
	}
}
