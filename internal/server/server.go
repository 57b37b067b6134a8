package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/LukeCarrier/signin/internal/catalog"
	"github.com/LukeCarrier/signin/internal/config"
	"github.com/LukeCarrier/signin/internal/database"
	"github.com/LukeCarrier/signin/internal/events"
	"github.com/LukeCarrier/signin/internal/handlers"
	"github.com/LukeCarrier/signin/internal/logging"
	"github.com/LukeCarrier/signin/internal/lookup"
	appmiddleware "github.com/LukeCarrier/signin/internal/middleware"
	"github.com/LukeCarrier/signin/internal/pubsub"
	"github.com/LukeCarrier/signin/internal/rendering"
	"github.com/LukeCarrier/signin/internal/signin"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
	"github.com/surrealdb/surrealdb.go"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	DB  *surrealdb.DB
	Cfg *config.Config

	bus      *pubsub.WatermillBridge
	catalog  *catalog.Catalog
	signinH  *handlers.SignInHandler
	domainH  *handlers.DomainHandler
	bgCancel context.CancelFunc
}

// New creates a new Server instance.
func New() *Server {
	logging.New()
	cfg := config.New()

	db, err := database.NewDB(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	cat, err := catalog.New(afero.NewOsFs(), cfg.LangDir, cfg.DefaultLocale)
	if err != nil {
		slog.Error("Failed to load string packs", "error", err)
		os.Exit(1)
	}

	// Background context for the audit subscriptions and the lang-pack
	// watcher; canceled on shutdown.
	bgCtx, bgCancel := context.WithCancel(context.Background())

	bus := pubsub.NewWatermillBridge()
	if err := events.RegisterAudit(bgCtx, bus); err != nil {
		slog.Error("Failed to register audit subscriber", "error", err)
		os.Exit(1)
	}
	if err := cat.Watch(bgCtx); err != nil {
		slog.Warn("Lang-pack watcher unavailable", "error", err)
	}

	resolver := lookup.New(cfg.LookupURL, cfg.LookupTimeout)
	orchestrator := signin.New(resolver, events.NewRecorder(bus))
	directory := database.NewSurrealDirectory(db, cfg.DBNs, cfg.DBDb)
	renderer := rendering.NewHTMLRenderer()

	signinHandler := handlers.NewSignInHandler(orchestrator, cat, renderer, cfg.AuthSubmitURL)
	domainHandler := handlers.NewDomainHandler(directory, cfg.BrandDomain)

	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Configure and use session middleware. The session only ever holds
	// the pending notification and a preserved username, so a short
	// lifetime is plenty.
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	// Serve static files from the "web/static" directory.
	e.Static("/static", "web/static")

	return &Server{
		E:        e,
		DB:       db,
		Cfg:      cfg,
		bus:      bus,
		catalog:  cat,
		signinH:  signinHandler,
		domainH:  domainHandler,
		bgCancel: bgCancel,
	}
}

// Catalog is a getter for the server's string catalog, useful for testing.
func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog
}
