package server

import (
	"net/http"

	appmiddleware "github.com/LukeCarrier/signin/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes defines the application's HTTP endpoints. Paths mirror
// the Moodle plugin layout so existing bookmarks and auth redirects keep
// working.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/local/signin/index.php")
	})

	s.E.GET("/local/signin/index.php", s.signinH.IndexGet)
	s.E.POST("/local/signin/username", s.signinH.UsernamePost, appmiddleware.RateLimiter())
	s.E.POST("/local/signin/changeuser", s.signinH.ChangeUserPost)
	s.E.GET("/local/signin/forgot.php", s.signinH.ForgotGet)

	// check_domain confirms account existence to anyone who asks, so it
	// gets the same throttle as the form endpoint.
	s.E.POST("/local/signin/service/check_domain", s.domainH.CheckDomain, appmiddleware.RateLimiter())

	s.E.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
