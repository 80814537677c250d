package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	blotterModel "brms_backend/internals/features/blotters/model"
	"brms_backend/internals/testutil"
)

type envelope struct {
	Code    int            `json:"code"`
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func newBlotterApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewBlotterController(db)
	app.Get("/blotters/list", ctrl.List)
	app.Post("/blotters", ctrl.Create)
	app.Patch("/blotters/:id/status", ctrl.UpdateStatus)
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

func postForm(t *testing.T, app *fiber.App, method, path string, form url.Values) envelope {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return doRequest(t, app, req)
}

func TestCreateBlotterStartsOpen(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newBlotterApp(db)

	env := postForm(t, app, fiber.MethodPost, "/blotters", url.Values{
		"caseTitle": {"Noise complaint"},
		"details":   {"Loud karaoke past midnight"},
	})
	require.Equal(t, fiber.StatusCreated, env.Code, env.Message)

	var stored blotterModel.BlotterModel
	require.NoError(t, db.First(&stored, uint(env.Data["blotter_id"].(float64))).Error)
	assert.Equal(t, blotterModel.BlotterStatusOpen, stored.Status)
	assert.False(t, stored.ReportedAt.IsZero())
}

func TestResolveBlotterOnlyFromOpen(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newBlotterApp(db)

	blotter := blotterModel.BlotterModel{
		CaseTitle:  "Boundary dispute",
		Details:    "Fence moved overnight",
		Status:     blotterModel.BlotterStatusOpen,
		ReportedAt: time.Now(),
	}
	require.NoError(t, db.Create(&blotter).Error)
	path := "/blotters/" + strconv.Itoa(int(blotter.ID)) + "/status"

	env := postForm(t, app, fiber.MethodPatch, path, url.Values{"status": {"Resolved"}})
	require.Equal(t, fiber.StatusOK, env.Code, env.Message)

	var stored blotterModel.BlotterModel
	require.NoError(t, db.First(&stored, blotter.ID).Error)
	assert.Equal(t, blotterModel.BlotterStatusResolved, stored.Status)

	// Already resolved, so the transition is rejected.
	env = postForm(t, app, fiber.MethodPatch, path, url.Values{"status": {"Resolved"}})
	assert.Equal(t, fiber.StatusBadRequest, env.Code)
	assert.Equal(t, "Case is not open", env.Message)
}

func TestResolveBlotterRejectsOtherTargets(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newBlotterApp(db)

	blotter := blotterModel.BlotterModel{
		CaseTitle:  "Theft report",
		Details:    "Missing bicycle",
		Status:     blotterModel.BlotterStatusOpen,
		ReportedAt: time.Now(),
	}
	require.NoError(t, db.Create(&blotter).Error)

	env := postForm(t, app, fiber.MethodPatch,
		"/blotters/"+strconv.Itoa(int(blotter.ID))+"/status",
		url.Values{"status": {"Dismissed"}})
	assert.Equal(t, fiber.StatusBadRequest, env.Code)
}

func TestListBlottersByHearingDate(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newBlotterApp(db)

	today := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	tomorrow := today.Add(24 * time.Hour)
	for _, hearing := range []time.Time{today, tomorrow} {
		h := hearing
		require.NoError(t, db.Create(&blotterModel.BlotterModel{
			CaseTitle:   "Hearing on " + h.Format("2006-01-02"),
			Details:     "details",
			Status:      blotterModel.BlotterStatusOpen,
			ReportedAt:  time.Now(),
			HearingDate: &h,
		}).Error)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/blotters/list?hearing_date=2026-08-29", nil)
	env := doRequest(t, app, req)
	require.Equal(t, fiber.StatusOK, env.Code)

	items, _ := env.Data["blotters"].([]any)
	require.Len(t, items, 1)
}

func TestListBlottersInvalidHearingDate(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newBlotterApp(db)

	req := httptest.NewRequest(fiber.MethodGet, "/blotters/list?hearing_date=29-08-2026", nil)
	env := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusBadRequest, env.Code)
}
