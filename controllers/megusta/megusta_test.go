package meGustaController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"parqueaventura/config"
	"parqueaventura/database"
	"parqueaventura/middleware"
	"parqueaventura/models"
	authRoutes "parqueaventura/routers/authRoutes"
	visitaRoutes "parqueaventura/routers/visitaRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		SaltRound: bcrypt.MinCost,
		DBDriver:  "sqlite",
		DBName:    "file::memory:?cache=shared",
	}
	database.ConnectDb()

	db := database.Database.Db
	db.Exec("DELETE FROM me_gusta")
	db.Exec("DELETE FROM visits")
	db.Exec("DELETE FROM users")

	middleware.InitSessionStore()

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	visitaRoutes.SetupVisitaRoutes(app)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookies []*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func registerAndLogin(t *testing.T, app *fiber.App, nombre, apellido, email, password string) []*http.Cookie {
	t.Helper()

	resp := postForm(t, app, "/register", url.Values{
		"nombre":           {nombre},
		"apellido":         {apellido},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postForm(t, app, "/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return resp.Cookies()
}

func createVisit(t *testing.T, app *fiber.App, cookies []*http.Cookie, parque string) models.Visit {
	t.Helper()

	resp := postForm(t, app, "/visitas/nueva", url.Values{
		"parque":       {parque},
		"rating":       {"5"},
		"fecha_visita": {time.Now().Format("2006-01-02")},
		"detalles":     {"Great"},
	}, cookies)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var visita models.Visit
	require.NoError(t, database.Database.Db.Where("park = ?", parque).First(&visita).Error)
	return visita
}

func TestLikeVisit(t *testing.T) {
	app := setupTestApp(t)
	alice := registerAndLogin(t, app, "Alice", "Smith", "alice@example.com", "pass1")
	bob := registerAndLogin(t, app, "Bob", "Jones", "bob@example.com", "pass2")

	visita := createVisit(t, app, alice, "Canyon")

	resp := postForm(t, app, fmt.Sprintf("/visita/%d/me_gusta", visita.ID), url.Values{}, bob)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, `¡Gracias por tu "Me gusta"!`, body["message"])

	var count int64
	database.Database.Db.Model(&models.Like{}).Where("visit_id = ?", visita.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLikeVisitTwiceIsNoOp(t *testing.T) {
	app := setupTestApp(t)
	alice := registerAndLogin(t, app, "Alice", "Smith", "alice@example.com", "pass1")
	bob := registerAndLogin(t, app, "Bob", "Jones", "bob@example.com", "pass2")

	visita := createVisit(t, app, alice, "Canyon")

	resp := postForm(t, app, fmt.Sprintf("/visita/%d/me_gusta", visita.ID), url.Values{}, bob)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// second like reports an informational outcome, not an error
	resp = postForm(t, app, fmt.Sprintf("/visita/%d/me_gusta", visita.ID), url.Values{}, bob)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, `Ya has dado "Me gusta" a esta visita`, body["message"])

	var count int64
	database.Database.Db.Model(&models.Like{}).Where("visit_id = ?", visita.ID).Count(&count)
	assert.EqualValues(t, 1, count, "exactly one like per (user, visit) pair")
}

func TestLikeDeletedVisitNotFound(t *testing.T) {
	app := setupTestApp(t)
	alice := registerAndLogin(t, app, "Alice", "Smith", "alice@example.com", "pass1")
	bob := registerAndLogin(t, app, "Bob", "Jones", "bob@example.com", "pass2")

	visita := createVisit(t, app, alice, "Canyon")

	resp := postForm(t, app, fmt.Sprintf("/visitas/eliminar/%d", visita.ID), url.Values{}, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postForm(t, app, fmt.Sprintf("/visita/%d/me_gusta", visita.ID), url.Values{}, bob)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLikeRequiresSession(t *testing.T) {
	app := setupTestApp(t)

	resp := postForm(t, app, "/visita/1/me_gusta", url.Values{}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLikeMarksViewFlag(t *testing.T) {
	app := setupTestApp(t)
	alice := registerAndLogin(t, app, "Alice", "Smith", "alice@example.com", "pass1")
	bob := registerAndLogin(t, app, "Bob", "Jones", "bob@example.com", "pass2")

	visita := createVisit(t, app, alice, "Canyon")

	resp := postForm(t, app, fmt.Sprintf("/visita/%d/me_gusta", visita.ID), url.Values{}, bob)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/visitas/ver/%d", visita.ID), nil)
	for _, ck := range bob {
		req.AddCookie(ck)
	}
	viewResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, viewResp.StatusCode)

	body := decodeBody(t, viewResp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["usuarioYaDioMeGusta"])
	assert.EqualValues(t, 1, data["totalMeGusta"])
}
