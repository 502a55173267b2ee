package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/rfinnegan/account-portal/internal/container"
	handlers "github.com/rfinnegan/account-portal/internal/interface/http"
	"github.com/rfinnegan/account-portal/internal/interface/middleware"
	"github.com/rfinnegan/account-portal/pkg/helpers"
)

// AccountModule wires the account pages into routes.
// Public: login/register views and their form posts, logout.
// Protected: the account landing page and the edit flows.
type AccountModule struct {
	Handler *handlers.AccountHandler
	Issuer  *helpers.TokenIssuer
}

func NewAccountModule(h *handlers.AccountHandler, issuer *helpers.TokenIssuer) *AccountModule {
	return &AccountModule{Handler: h, Issuer: issuer}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	account := rg.Group("/account")

	account.GET("/login", m.Handler.ShowLogin)
	account.POST("/login", m.Handler.Login)
	account.GET("/register", m.Handler.ShowRegister)
	account.POST("/register", m.Handler.Register)
	account.GET("/logout", m.Handler.Logout)

	auth := account.Group("/")
	auth.Use(middleware.RequireAuth(m.Issuer, container.GetSessionBag()))
	{
		auth.GET("/", m.Handler.ShowAccount)
		auth.GET("/update/:id", m.Handler.ShowUpdateAccount)
		auth.POST("/update", m.Handler.UpdateProfile)
		auth.POST("/update-password", m.Handler.UpdatePassword)
	}
}
