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

	residentModel "brms_backend/internals/features/residents/model"
	"brms_backend/internals/testutil"
)

type envelope struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Data    struct {
		Residents  []map[string]any `json:"residents"`
		Pagination map[string]any   `json:"pagination"`
		ResidentID uint             `json:"resident_id"`
	} `json:"data"`
}

func newResidentApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewResidentController(db)
	app.Get("/residents", ctrl.Options)
	app.Get("/residents/list", ctrl.List)
	app.Get("/residents/:id", ctrl.GetByID)
	app.Post("/residents", ctrl.Create)
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

func postResident(t *testing.T, app *fiber.App, form url.Values) envelope {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/residents", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return doRequest(t, app, req)
}

func TestCreateResidentMissingAddress(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newResidentApp(db)

	env := postResident(t, app, url.Values{
		"firstName": {"Juan"},
		"lastName":  {"Dela Cruz"},
	})
	assert.Equal(t, fiber.StatusBadRequest, env.Code)
	assert.Contains(t, env.Errors, "Address")

	var count int64
	require.NoError(t, db.Model(&residentModel.ResidentModel{}).Count(&count).Error)
	assert.Zero(t, count, "rejected request must not persist a row")
}

func TestCreateResidentDuplicateIdentity(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newResidentApp(db)

	form := url.Values{
		"firstName": {"Juan"},
		"lastName":  {"Dela Cruz"},
		"address":   {"Purok 1"},
		"birthDate": {"1990-05-15"},
	}
	env := postResident(t, app, form)
	require.Equal(t, fiber.StatusCreated, env.Code, env.Message)

	env = postResident(t, app, form)
	assert.Equal(t, fiber.StatusBadRequest, env.Code)
	assert.Equal(t, "Resident is already registered", env.Message)

	var count int64
	require.NoError(t, db.Model(&residentModel.ResidentModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateResidentInvalidBirthDate(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newResidentApp(db)

	env := postResident(t, app, url.Values{
		"firstName": {"Juan"},
		"lastName":  {"Dela Cruz"},
		"address":   {"Purok 1"},
		"birthDate": {"15/05/1990"},
	})
	assert.Equal(t, fiber.StatusBadRequest, env.Code)
}

func TestListSearchMatchingNothingIsEmptyPage(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newResidentApp(db)

	env := postResident(t, app, url.Values{
		"firstName": {"Maria"},
		"lastName":  {"Santos"},
		"address":   {"Purok 2"},
	})
	require.Equal(t, fiber.StatusCreated, env.Code, env.Message)

	req := httptest.NewRequest(fiber.MethodGet, "/residents/list?q=zzzz", nil)
	env = doRequest(t, app, req)
	assert.Equal(t, fiber.StatusOK, env.Code)
	assert.Empty(t, env.Data.Residents)
	assert.EqualValues(t, 0, env.Data.Pagination["total"])
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newResidentApp(db)

	env := postResident(t, app, url.Values{
		"firstName": {"Maria"},
		"lastName":  {"Santos"},
		"address":   {"Purok 2"},
	})
	require.Equal(t, fiber.StatusCreated, env.Code, env.Message)

	req := httptest.NewRequest(fiber.MethodGet, "/residents/list?q=SANTOS", nil)
	env = doRequest(t, app, req)
	require.Len(t, env.Data.Residents, 1)
	assert.Equal(t, "Maria", env.Data.Residents[0]["first_name"])
}

// Only Active residents show up in the dropdown options.
func TestOptionsListsActiveResidents(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newResidentApp(db)

	env := postResident(t, app, url.Values{
		"firstName": {"Ana"},
		"lastName":  {"Lopez"},
		"address":   {"Purok 3"},
	})
	require.Equal(t, fiber.StatusCreated, env.Code, env.Message)
	require.NoError(t, db.Create(&residentModel.ResidentModel{
		FirstName: "Jose", LastName: "Ramos", Address: "Purok 4", Status: "Moved Out",
	}).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/residents", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var optEnv struct {
		Code int              `json:"code"`
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(body, &optEnv))
	require.Equal(t, fiber.StatusOK, optEnv.Code)
	require.Len(t, optEnv.Data, 1)
	assert.Equal(t, "Ana", optEnv.Data[0]["first_name"])
}

func TestGetResidentNotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newResidentApp(db)

	req := httptest.NewRequest(fiber.MethodGet, "/residents/99", nil)
	env := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusNotFound, env.Code)
}
