package app

import (
	"context"
	"embed"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"github.com/phenrril/modashop/config"
	"github.com/phenrril/modashop/internal/adapters/assets"
	"github.com/phenrril/modashop/internal/adapters/auth"
	"github.com/phenrril/modashop/internal/adapters/catalogfile"
	"github.com/phenrril/modashop/internal/adapters/configsource"
	"github.com/phenrril/modashop/internal/adapters/repo/sqlite"
	"github.com/phenrril/modashop/internal/adapters/restapi"
	"github.com/phenrril/modashop/internal/catalog"
	"github.com/phenrril/modashop/internal/domain"
	"github.com/phenrril/modashop/internal/secrets"
	"github.com/phenrril/modashop/internal/usecase"
)

//go:embed resources
var resourcesFS embed.FS

// App owns one client session's state: the engines, the session identity and
// the secrets cascade. It is constructed explicitly and injected where
// needed; nothing here is a package-level singleton.
type App struct {
	Session   *usecase.Session
	Catalog   *usecase.CatalogUC
	Cart      *usecase.CartUC
	Favorites *usecase.FavoritesUC
	Orders    *usecase.OrderUC
	Secrets   *secrets.Resolver

	// OAuthConfig is nil when Google sign-in is not configured.
	OAuthConfig *oauth2.Config

	cartRepo *sqlite.CartRepo
	favRepo  *sqlite.FavoritesRepo
}

func NewApp(db *gorm.DB, cfg config.Config) (*App, error) {
	if err := sqlite.Migrate(db); err != nil {
		return nil, err
	}

	resolver := secrets.New(
		configsource.NewFile("override", cfg.OverrideFile),
		configsource.NewFS("bundled", resourcesFS, "resources/app.env"),
		configsource.NewEnv("env", "MODASHOP_"),
	)

	token := ""
	if cv := resolver.Resolve("API_TOKEN"); cv != nil {
		token = cv.Value
	}
	gateway := restapi.NewClient(cfg.APIBaseURL, token)

	normalizer := catalog.NewNormalizer(assets.NewDir(cfg.AssetsDir))
	session := usecase.NewSession()
	cart := usecase.NewCartUC()

	a := &App{
		Session: session,
		Catalog: &usecase.CatalogUC{
			Gateway:    gateway,
			Normalizer: normalizer,
			Fallback: func() ([]domain.RawProduct, error) {
				return catalogfile.Load(cfg.CatalogFile)
			},
		},
		Cart:      cart,
		Favorites: usecase.NewFavoritesUC(session),
		Orders:    &usecase.OrderUC{Cart: cart, Gateway: gateway},
		Secrets:   resolver,
		cartRepo:  sqlite.NewCartRepo(db),
		favRepo:   sqlite.NewFavoritesRepo(db),
	}

	// Sign-in stays optional: without credentials the store browses fine,
	// only the login screen is off.
	if oauthCfg, err := auth.NewGoogleConfig(resolver, cfg.RedirectURL); err != nil {
		log.Warn().Err(err).Msg("login con Google deshabilitado")
	} else {
		a.OAuthConfig = oauthCfg
	}

	return a, nil
}

// Restore loads the persisted cart into the engine at session start.
func (a *App) Restore(ctx context.Context) error {
	lines, err := a.cartRepo.Load(ctx)
	if err != nil {
		return err
	}
	a.Cart.ReplaceAll(lines)
	return nil
}

// Persist saves the engines' current state to the on-device store.
func (a *App) Persist(ctx context.Context) error {
	if err := a.cartRepo.Save(ctx, a.Cart.Snapshot()); err != nil {
		return err
	}
	if id := a.Session.UserID(); id != "" {
		return a.favRepo.Save(ctx, id, a.Favorites.List())
	}
	return nil
}

// Login binds the session to u and reloads that user's favorites. The
// favorites engine already invalidated any previous user's content.
func (a *App) Login(ctx context.Context, u *domain.User) error {
	if u == nil || u.ID == "" {
		return errors.New("usuario inválido")
	}
	a.Session.SetUser(u)
	entries, err := a.favRepo.Load(ctx, u.ID)
	if err != nil {
		return err
	}
	a.Favorites.ReplaceAll(entries)
	return nil
}

// Logout persists the user's favorites, then drops the identity and every
// session-owned aggregate.
func (a *App) Logout(ctx context.Context) error {
	if id := a.Session.UserID(); id != "" {
		if err := a.favRepo.Save(ctx, id, a.Favorites.List()); err != nil {
			return err
		}
	}
	a.Session.Clear()
	a.Cart.Clear()
	return nil
}
