package api

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restodesk/backoffice/internal/db"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
)

func TestServer_Healthcheck(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNewServer_RejectsEmptyCORSOrigins(t *testing.T) {
	gormDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cors.db"))
	require.NoError(t, err)

	conf := newTestConfig()
	conf.API.AllowedCORSDomains = nil

	s, err := NewServer(conf, Dependencies{
		DB:        gormDB,
		POSTester: &stubTester{},
		Payments:  &stubLinker{},
		Messages:  &stubSender{},
	})
	assert.Nil(t, s)
	assert.ErrorContains(t, err, "all origins disabled")
}

func TestServer_UnauthorizedClearsCookie(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/super-admin/restaurants", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, detail(t, rec).Detail)
	cookie := rec.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "auth_token=;")
	assert.Contains(t, cookie, "Max-Age=0")
}

func TestServer_LoginWithWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    adminEmail,
		"password": "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "wrong email or password", detail(t, rec).Detail)
}

func TestServer_LoginCookieLifetime(t *testing.T) {
	ts := newTestServer(t)

	session := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email": adminEmail, "password": adminPassword,
	})
	require.Equal(t, http.StatusOK, session.Code)
	assert.NotContains(t, session.Header().Get("Set-Cookie"), "Max-Age")

	remembered := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email": adminEmail, "password": adminPassword, "remember_me": true,
	})
	require.Equal(t, http.StatusOK, remembered.Code)
	assert.Contains(t, remembered.Header().Get("Set-Cookie"), "Max-Age=3600")
}

func TestServer_CookieAuthAndLogout(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)

	req, rec := newCookieRequest(http.MethodGet, "/api/v1/auth/me", token)
	ts.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var me domain.User
	decode(t, rec, &me)
	assert.Equal(t, adminEmail, me.Email)
	assert.Equal(t, domain.RoleSuperAdmin, me.Role)

	out := ts.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, out.Code)

	after := ts.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
}

func TestServer_SignupRequiresSuperAdmin(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	body := map[string]interface{}{
		"email":            "support@restodesk.test",
		"password":         "support1!",
		"confirm_password": "support1!",
		"name":             "Support",
		"role":             domain.RoleSupport,
	}
	rec := ts.do(t, http.MethodPost, "/api/v1/auth/signup", admin, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	dup := ts.do(t, http.MethodPost, "/api/v1/auth/signup", admin, body)
	assert.Equal(t, http.StatusConflict, dup.Code)

	support := ts.login(t, "support@restodesk.test", "support1!")
	body["email"] = "other@restodesk.test"
	denied := ts.do(t, http.MethodPost, "/api/v1/auth/signup", support, body)
	assert.Equal(t, http.StatusForbidden, denied.Code)
}

func TestServer_SignupPasswordPolicy(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/signup", ts.adminToken(t), map[string]interface{}{
		"email":            "weak@restodesk.test",
		"password":         "password1",
		"confirm_password": "password1",
		"name":             "Weak",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, detail(t, rec).Detail, "1 symbol")
}

func TestServer_RestaurantLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)
	r := ts.createRestaurant(t, token, "Chez Nous")
	base := fmt.Sprintf("/api/v1/super-admin/restaurants/%d", r.ID)

	assert.True(t, r.IsActive)
	assert.Equal(t, "EUR", r.Fees.Currency)

	rec := ts.do(t, http.MethodPatch, base, token, map[string]interface{}{"city": "Rotterdam"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated domain.Restaurant
	decode(t, rec, &updated)
	assert.Equal(t, "Rotterdam", updated.City)
	assert.Equal(t, "Chez Nous", updated.Name)

	rec = ts.do(t, http.MethodPost, base+"/toggle-active", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &updated)
	assert.False(t, updated.IsActive)
	require.Len(t, ts.published.Events(), 1)
	assert.Equal(t, events.ActionArchived, ts.published.Events()[0].Action)

	rec = ts.do(t, http.MethodGet, "/api/v1/super-admin/restaurants?is_active=false&search=chez", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page domain.RestaurantPage
	decode(t, rec, &page)
	assert.EqualValues(t, 1, page.Total)

	rec = ts.do(t, http.MethodDelete, base+"?confirm_name="+url.QueryEscape("chez nous"), token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodDelete, base, token, map[string]string{"confirm_name": "Chez Nous"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, fmt.Sprintf("restaurant with id %d not found", r.ID), detail(t, rec).Detail)
}

func TestServer_SupportCannotDeleteRestaurant(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)
	r := ts.createRestaurant(t, admin, "Bistro")

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/signup", admin, map[string]interface{}{
		"email": "s@restodesk.test", "password": "support1!", "confirm_password": "support1!", "name": "S",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	support := ts.login(t, "s@restodesk.test", "support1!")

	rec = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/super-admin/restaurants/%d?confirm_name=Bistro", r.ID), support, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodGet, fmt.Sprintf("/api/v1/super-admin/restaurants/%d", r.ID), support, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_BadPathID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/super-admin/restaurants/abc", ts.adminToken(t), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "restaurantID must be a positive integer", detail(t, rec).Detail)
}

func TestServer_TeamRoleFlags(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)
	r := ts.createRestaurant(t, token, "Team Place")
	base := fmt.Sprintf("/api/v1/super-admin/restaurants/%d/team", r.ID)

	rec := ts.do(t, http.MethodPost, base, token, map[string]interface{}{
		"name": "Both", "email": "both@x.test", "is_restaurant_admin": true, "is_restaurant_staff": true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.ErrInvalidRoleFlags.Error(), detail(t, rec).Detail)

	rec = ts.do(t, http.MethodPost, base, token, map[string]interface{}{
		"name": "Anna", "email": "anna@x.test", "is_restaurant_admin": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var m domain.TeamMember
	decode(t, rec, &m)
	assert.True(t, m.IsActive)

	rec = ts.do(t, http.MethodPost, base, token, map[string]interface{}{
		"name": "Anna 2", "email": "ANNA@x.test", "is_restaurant_staff": true,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(t, http.MethodPost, fmt.Sprintf("%s/%d/toggle-active", base, m.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &m)
	assert.False(t, m.IsActive)

	rec = ts.do(t, http.MethodDelete, fmt.Sprintf("%s/%d", base, m.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = ts.do(t, http.MethodDelete, fmt.Sprintf("%s/%d", base, m.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_TablesAndQRCode(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)
	r := ts.createRestaurant(t, token, "Tables")
	base := fmt.Sprintf("/api/v1/super-admin/restaurants/%d/tables", r.ID)

	rec := ts.do(t, http.MethodPost, base+"/generate", token, map[string]interface{}{
		"count": 3, "sections": []string{"Terrace", "Bar"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var tables []domain.Table
	decode(t, rec, &tables)
	require.Len(t, tables, 3)
	assert.Equal(t, "Terrace", tables[2].Section)
	assert.True(t, strings.HasPrefix(tables[0].Link, fmt.Sprintf("https://order.example.com/r/%d/t/", r.ID)))

	rec = ts.do(t, http.MethodGet, fmt.Sprintf("%s/%d/qr.png?size=128", base, tables[0].ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))

	rec = ts.do(t, http.MethodPut, fmt.Sprintf("%s/%d", base, tables[0].ID), token, map[string]interface{}{"number": 2})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_POSTestAndSave(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)
	r := ts.createRestaurant(t, token, "POS Place")
	base := fmt.Sprintf("/api/v1/super-admin/restaurants/%d/pos", r.ID)
	body := map[string]interface{}{
		"provider": "MPLUSKASSA", "username": "kassa", "password": "pw", "port": 34562,
	}

	ts.tester.err = errUpstream
	rec := ts.do(t, http.MethodPost, base+"/test", token, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result domain.POSTestResult
	decode(t, rec, &result)
	assert.False(t, result.OK)
	assert.False(t, result.Recorded)
	assert.Equal(t, "https://api.mpluskassa.nl:34562", result.BaseURL)

	ts.tester.err = nil
	rec = ts.do(t, http.MethodPut, base, token, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), `"pw"`)
	var pos domain.POSConfig
	decode(t, rec, &pos)
	assert.True(t, pos.HasSecret)
	assert.Nil(t, pos.LastTestedAt)

	rec = ts.do(t, http.MethodPost, base+"/test", token, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &result)
	assert.True(t, result.OK)
	assert.True(t, result.Recorded)

	rec = ts.do(t, http.MethodPut, base, token, map[string]interface{}{"provider": "NOPE", "username": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/super-admin/pos/base-url?provider=MPLUSKASSA&port=34562", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"base_url":"https://api.mpluskassa.nl:34562"}`, rec.Body.String())
}

func TestServer_PaymentSettings(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)
	r := ts.createRestaurant(t, token, "Fees")
	base := fmt.Sprintf("/api/v1/super-admin/restaurants/%d/payment", r.ID)

	rec := ts.do(t, http.MethodPut, base, token, map[string]interface{}{
		"service_fee_bps": 10001, "fixed_fee_cents": 0, "currency": "EUR",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPut, base, token, map[string]interface{}{
		"service_fee_bps": 250, "fixed_fee_cents": 15, "currency": "usd",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var fees domain.FeeConfig
	decode(t, rec, &fees)
	assert.Equal(t, "USD", fees.Currency)

	ts.linker.err = errUpstream
	rec = ts.do(t, http.MethodPost, base+"/account-link", token, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, detail(t, rec).Detail, errUpstream.Error())
}

func TestServer_TransactionsRejectBadFilter(t *testing.T) {
	ts := newTestServer(t)
	token := ts.adminToken(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/super-admin/transactions?status=lost", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/super-admin/transactions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"summary"`)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/", "", nil)

	rec := ts.do(t, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "backoffice_http_requests_total")
}

func TestServer_ListUsersIsSuperAdminOnly(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/signup", admin, map[string]interface{}{
		"email": "Helper@RestoDesk.test", "password": "support1!", "confirm_password": "support1!", "name": "Helper",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	support := ts.login(t, "helper@restodesk.test", "support1!")

	rec = ts.do(t, http.MethodGet, "/api/v1/super-admin/users", support, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/super-admin/users", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []domain.User
	decode(t, rec, &users)
	require.Len(t, users, 2)
	assert.Equal(t, domain.RoleSuperAdmin, users[0].Role)
	assert.NotNil(t, users[0].LastLoginAt)
	assert.Equal(t, "helper@restodesk.test", users[1].Email)
	assert.NotContains(t, rec.Body.String(), "password")
}
