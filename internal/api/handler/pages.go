package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authgate/accounts-service/internal/api/middleware"
	"github.com/authgate/accounts-service/internal/core/domain"
)

// pageData is what the templates see.
type pageData struct {
	Title  string
	Claims *domain.Claims
}

func SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", pageData{Title: "Sign up"})
}

func LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", pageData{Title: "Log in"})
}

// DashboardPage is mounted behind the authentication gate.
func DashboardPage(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard.html", pageData{
		Title:  "Dashboard",
		Claims: middleware.ClaimsFrom(c),
	})
}

// AdminPage is mounted behind the authentication and admin gates.
func AdminPage(c echo.Context) error {
	return c.Render(http.StatusOK, "admin.html", pageData{
		Title:  "Admin",
		Claims: middleware.ClaimsFrom(c),
	})
}
