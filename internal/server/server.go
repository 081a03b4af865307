package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/Leonard-ssj/portfolio/internal/collection"
	"github.com/Leonard-ssj/portfolio/internal/config"
	"github.com/Leonard-ssj/portfolio/internal/contact"
	"github.com/Leonard-ssj/portfolio/internal/content"
	"github.com/Leonard-ssj/portfolio/internal/email"
	"github.com/Leonard-ssj/portfolio/internal/handlers"
	"github.com/Leonard-ssj/portfolio/internal/i18n"
	appmw "github.com/Leonard-ssj/portfolio/internal/middleware"
	"github.com/Leonard-ssj/portfolio/internal/minigame"
	"github.com/Leonard-ssj/portfolio/internal/pubsub"
	"github.com/Leonard-ssj/portfolio/internal/rendering"
	"github.com/Leonard-ssj/portfolio/internal/storage"
	"github.com/Leonard-ssj/portfolio/web"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     *config.Config
	Content *content.Provider
	Bus     *pubsub.WatermillBridge

	// ctx lives as long as the server; long-running connections and
	// background workers stop when it is cancelled.
	ctx      context.Context
	cancel   context.CancelFunc
	notifier *contact.Notifier

	pages   *handlers.Pages
	home    *handlers.HomeHandler
	notes   *handlers.NotesHandler
	docs    *handlers.DocsHandler
	contact *handlers.ContactHandler
	lang    *handlers.LangHandler
	play    *handlers.PlayHandler
}

// New creates a new Server instance. It fails when the content tree cannot
// be loaded or does not validate.
func New(cfg *config.Config) (*Server, error) {
	site, err := loadContent(cfg)
	if err != nil {
		return nil, err
	}
	provider := content.NewProvider(site)

	sender, err := email.NewSender(cfg.EmailProvider, cfg.EmailAPIKey, cfg.EmailSender)
	if err != nil {
		return nil, fmt.Errorf("initialize email sender: %w", err)
	}
	var notifier *contact.Notifier
	if sender != nil {
		to := cfg.NotifyTo
		if to == "" {
			to = site.Profile.Email
		}
		notifier = contact.NewNotifier(sender, to)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	renderer := rendering.New()
	e.Renderer = renderer
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(appmw.Visitor())
	e.Use(appmw.Logger)

	defaultLang, err := i18n.Parse(cfg.DefaultLang)
	if err != nil {
		slog.Warn("invalid DEFAULT_LANG, using default", "value", cfg.DefaultLang, "default", i18n.Default)
		defaultLang = i18n.Default
	}
	e.Use(appmw.Language(appmw.LanguageConfig{Default: defaultLang, Negotiate: cfg.NegotiateLang}))

	ctx, cancel := context.WithCancel(context.Background())
	bus := pubsub.NewWatermillBridge()

	loader := &collection.Loader{
		Local:   collection.FSSource{FS: echo.MustSubFS(web.Static, "static")},
		Remote:  collection.HTTPSource{Client: &http.Client{Timeout: cfg.PreviewTimeout}},
		Timeout: cfg.PreviewTimeout,
	}

	pages := handlers.NewPages(provider, cfg.Features, renderer)
	return &Server{
		E:        e,
		Cfg:      cfg,
		Content:  provider,
		Bus:      bus,
		ctx:      ctx,
		cancel:   cancel,
		notifier: notifier,
		pages:    pages,
		home:     handlers.NewHomeHandler(pages),
		notes:    handlers.NewNotesHandler(pages),
		docs:     handlers.NewDocsHandler(pages, loader),
		contact:  handlers.NewContactHandler(pages, contact.NewValidator(), bus),
		lang:     handlers.NewLangHandler(pages),
		play: handlers.NewPlayHandler(ctx,
			storage.NewFileStore(afero.NewOsFs(), cfg.DataDir), minigame.Options{}),
	}, nil
}

// loadContent reads the content tree from CONTENT_DIR when set, otherwise
// from the copy embedded in the binary.
func loadContent(cfg *config.Config) (*content.Site, error) {
	if cfg.ContentDir != "" {
		path := filepath.Join(cfg.ContentDir, content.DefaultFile)
		slog.Info("loading content from disk", "path", path)
		return content.Load(afero.NewOsFs(), path)
	}
	return content.Load(afero.FromIOFS{FS: web.Content}, "content/"+content.DefaultFile)
}
