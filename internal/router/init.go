package router

import (
	"github.com/rfinnegan/account-portal/internal/application"
	"github.com/rfinnegan/account-portal/internal/container"
	repoaccount "github.com/rfinnegan/account-portal/internal/domain/repository"
	pginfra "github.com/rfinnegan/account-portal/internal/infrastructure/postgres"
	handlers "github.com/rfinnegan/account-portal/internal/interface/http"
	"github.com/rfinnegan/account-portal/internal/interface/view"
	"github.com/rfinnegan/account-portal/internal/router/modules"
	"github.com/rfinnegan/account-portal/pkg/helpers"
)

type AccountModuleDeps struct {
	Repo    repoaccount.AccountRepository
	Service *application.Service
	Handler *handlers.AccountHandler
}

func buildAccountDeps() AccountModuleDeps {
	cfg := container.GetConfig()
	repo := pginfra.NewAccountRepository(container.GetPGPool())

	service := application.NewService(
		repo,
		container.GetLogger(),
		cfg.StoreTimeout,
	)

	handler := handlers.NewAccountHandler(
		service,
		container.GetIssuer(),
		helpers.NewCookieManager(cfg.CookieDomain, cfg.CookieSecure()),
		view.NewHTMLRenderer(),
		view.NewStaticNav(),
		container.GetSessionBag(),
		container.GetLogger(),
	)

	return AccountModuleDeps{Repo: repo, Service: service, Handler: handler}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	accountDeps := buildAccountDeps()
	r.Add(modules.NewAccountModule(accountDeps.Handler, container.GetIssuer()))
}
