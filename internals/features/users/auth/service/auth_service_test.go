package service

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
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Data    map[string]any    `json:"data"`
}

func newAuthApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Post("/register", func(c *fiber.Ctx) error { return Register(db, c) })
	app.Post("/login", func(c *fiber.Ctx) error { return Login(db, c) })
	app.Post("/logout", Logout)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (*http.Response, envelope) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, sonic.Unmarshal(body, &env))
	return resp, env
}

func registerUser(t *testing.T, app *fiber.App, username, email, password string) {
	t.Helper()
	resp, env := postForm(t, app, "/register", url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "register %s: %s", username, env.Message)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newAuthApp(db)

	registerUser(t, app, "kapitana", "kapitana@brgy.local", "secret-pass-1")

	resp, env := postForm(t, app, "/register", url.Values{
		"username": {"kapitana"},
		"email":    {"other@brgy.local"},
		"password": {"secret-pass-2"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Errors, "username")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newAuthApp(db)

	registerUser(t, app, "kapitana", "kapitana@brgy.local", "secret-pass-1")

	resp, env := postForm(t, app, "/register", url.Values{
		"username": {"sekretarya"},
		"email":    {"kapitana@brgy.local"},
		"password": {"secret-pass-2"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Errors, "email")
}

// Wrong password and unknown username must be indistinguishable to the
// caller, and neither may establish a session.
func TestLoginFailureIsUniform(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newAuthApp(db)

	registerUser(t, app, "kapitana", "kapitana@brgy.local", "secret-pass-1")

	respWrong, envWrong := postForm(t, app, "/login", url.Values{
		"username": {"kapitana"},
		"password": {"not-the-password"},
	})
	respUnknown, envUnknown := postForm(t, app, "/login", url.Values{
		"username": {"nobody"},
		"password": {"whatever-pass"},
	})

	assert.Equal(t, fiber.StatusUnauthorized, respWrong.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, envWrong.Message, envUnknown.Message)

	for _, resp := range []*http.Response{respWrong, respUnknown} {
		for _, c := range resp.Cookies() {
			if c.Name == "access_token" {
				assert.Empty(t, c.Value, "failed login must not set a session cookie")
			}
		}
	}
}

func TestLoginSetsCookieAndRedirect(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newAuthApp(db)

	registerUser(t, app, "kapitana", "kapitana@brgy.local", "secret-pass-1")

	resp, env := postForm(t, app, "/login", url.Values{
		"username": {"kapitana"},
		"password": {"secret-pass-1"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/dashboard", env.Data["redirect"])
	assert.NotEmpty(t, env.Data["access_token"])

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestLoginHonorsNextParam(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newAuthApp(db)

	registerUser(t, app, "kapitana", "kapitana@brgy.local", "secret-pass-1")

	resp, env := postForm(t, app, "/login?next=/residents/list", url.Values{
		"username": {"kapitana"},
		"password": {"secret-pass-1"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/residents/list", env.Data["redirect"])

	// An absolute URL is not a safe redirect target.
	resp, env = postForm(t, app, "/login?next=https://evil.example", url.Values{
		"username": {"kapitana"},
		"password": {"secret-pass-1"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/dashboard", env.Data["redirect"])
}

func TestLogoutClearsCookie(t *testing.T) {
	db := testutil.OpenDB(t)
	app := newAuthApp(db)

	req := httptest.NewRequest(fiber.MethodPost, "/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must expire the session cookie")
}
