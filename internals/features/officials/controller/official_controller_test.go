package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"brms_backend/internals/testutil"
)

type envelope struct {
	Code    int            `json:"code"`
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func newOfficialApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewOfficialController(db)
	app.Get("/officials/list", ctrl.List)
	app.Post("/officials", ctrl.Create)
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) envelope {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, sonic.Unmarshal(body, &env))
	return env
}

func postOfficial(t *testing.T, app *fiber.App, form url.Values) envelope {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/officials", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return doRequest(t, app, req)
}

func TestCreateOfficialWithTermDates(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newOfficialApp(db)

	env := postOfficial(t, app, url.Values{
		"fullName":  {"Ramon Bautista"},
		"position":  {"Punong Barangay"},
		"termStart": {"2025-07-01"},
		"termEnd":   {"2028-06-30"},
	})
	require.Equal(t, fiber.StatusCreated, env.Code, env.Message)

	req := httptest.NewRequest(fiber.MethodGet, "/officials/list", nil)
	env = doRequest(t, app, req)
	require.Equal(t, fiber.StatusOK, env.Code)

	items, _ := env.Data["officials"].([]any)
	require.Len(t, items, 1)
	official, _ := items[0].(map[string]any)
	assert.Equal(t, "2025-07-01", official["term_start"])
	assert.Equal(t, "Active", official["status"])
}

func TestCreateOfficialInvalidTermDate(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newOfficialApp(db)

	env := postOfficial(t, app, url.Values{
		"fullName":  {"Lilia Reyes"},
		"position":  {"Barangay Secretary"},
		"termStart": {"July 2025"},
	})
	assert.Equal(t, fiber.StatusBadRequest, env.Code)
}

func TestListOfficialsOrderedByPosition(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newOfficialApp(db)

	for _, o := range []url.Values{
		{"fullName": {"Lilia Reyes"}, "position": {"Secretary"}},
		{"fullName": {"Ramon Bautista"}, "position": {"Kagawad"}},
	} {
		env := postOfficial(t, app, o)
		require.Equal(t, fiber.StatusCreated, env.Code, env.Message)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/officials/list", nil)
	env := doRequest(t, app, req)
	require.Equal(t, fiber.StatusOK, env.Code)

	items, _ := env.Data["officials"].([]any)
	require.Len(t, items, 2)
	first, _ := items[0].(map[string]any)
	assert.Equal(t, "Kagawad", first["position"])
}
