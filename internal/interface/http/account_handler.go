package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rfinnegan/account-portal/internal/application"
	"github.com/rfinnegan/account-portal/internal/interface/middleware"
	"github.com/rfinnegan/account-portal/internal/interface/view"
	"github.com/rfinnegan/account-portal/internal/session"
	"github.com/rfinnegan/account-portal/pkg/helpers"
	"github.com/rfinnegan/account-portal/pkg/validation"
)

// User-facing notices. Failure texts stay generic so responses never leak
// which step failed.
const (
	noticeRegisterError   = "Sorry, there was an error processing the registration."
	noticeRegisterFailed  = "Sorry, the registration failed."
	noticeCheckCreds      = "Please check your credentials and try again."
	noticeProfileUpdated  = "Information Successfully Updated"
	noticeProfileFailed   = "Error in update, try again"
	noticePasswordChanged = "Password Changed Successfully"
	noticeUpdateError     = "Sorry, there was an error processing the update."
)

const accountLanding = "/account/"

// AccountHandler orchestrates registration, login, profile and password
// updates, and logout. Every code path produces exactly one response.
type AccountHandler struct {
	Svc     *application.Service
	Issuer  *helpers.TokenIssuer
	Cookies *helpers.CookieManager
	Views   view.Renderer
	Nav     view.NavProvider
	Bag     *session.Store
	Logger  *logrus.Logger
}

func NewAccountHandler(svc *application.Service, issuer *helpers.TokenIssuer, cookies *helpers.CookieManager, views view.Renderer, nav view.NavProvider, bag *session.Store, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Issuer: issuer, Cookies: cookies, Views: views, Nav: nav, Bag: bag, Logger: logger}
}

type registerForm struct {
	FirstName string `form:"account_firstname" binding:"required"`
	LastName  string `form:"account_lastname" binding:"required"`
	Email     string `form:"account_email" binding:"required,email"`
	Password  string `form:"account_password" binding:"required,pwd"`
}

type loginForm struct {
	Email    string `form:"account_email" binding:"required"`
	Password string `form:"account_password" binding:"required"`
}

type profileForm struct {
	ID        string `form:"account_id" binding:"required"`
	FirstName string `form:"account_firstname" binding:"required"`
	LastName  string `form:"account_lastname" binding:"required"`
	Email     string `form:"account_email" binding:"required,email"`
}

type passwordForm struct {
	ID       string `form:"account_id" binding:"required"`
	Password string `form:"account_password" binding:"required,pwd"`
}

// render resolves navigation first, then hands the view to the renderer. Nav
// failures degrade to an empty menu instead of losing the response.
func (h *AccountHandler) render(c *gin.Context, status int, name, title, notice string, errs map[string]string, data map[string]any) {
	nav, err := h.Nav.Nav(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("navigation assembly failed")
		}
		nav = view.Nav{}
	}
	if notice == "" {
		notice = h.popNotice(c)
	}
	h.Views.Render(c, status, name, view.ViewData{
		Title:  title,
		Nav:    nav,
		Errors: errs,
		Notice: notice,
		Data:   data,
	})
}

func (h *AccountHandler) popNotice(c *gin.Context) string {
	sid := middleware.VisitorID(c)
	if sid == "" {
		return ""
	}
	notice, err := h.Bag.PopNotice(c.Request.Context(), sid)
	if err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("flash notice read failed")
	}
	return notice
}

func (h *AccountHandler) flash(c *gin.Context, msg string) {
	sid := middleware.VisitorID(c)
	if sid == "" {
		return
	}
	if err := h.Bag.SetNotice(c.Request.Context(), sid, msg); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("flash notice write failed")
	}
}

// ShowLogin GET /account/login
func (h *AccountHandler) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, view.Login, "Login", "", nil, nil)
}

// ShowRegister GET /account/register
func (h *AccountHandler) ShowRegister(c *gin.Context) {
	h.render(c, http.StatusOK, view.Register, "Register", "", nil, nil)
}

// Register POST /account/register
func (h *AccountHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, view.Register, "Register", "", validation.ToDetails(err), map[string]any{
			"account_firstname": c.PostForm("account_firstname"),
			"account_lastname":  c.PostForm("account_lastname"),
			"account_email":     c.PostForm("account_email"),
		})
		return
	}

	a, err := h.Svc.Register(c.Request.Context(), form.FirstName, form.LastName, form.Email, form.Password)
	switch {
	case errors.Is(err, application.ErrHashingFailed):
		h.render(c, http.StatusInternalServerError, view.Register, "Registration", noticeRegisterError, nil, nil)
	case err != nil:
		h.render(c, http.StatusNotImplemented, view.Register, "Registration", noticeRegisterFailed, nil, nil)
	default:
		h.render(c, http.StatusCreated, view.Login, "Login",
			"Congratulations, you're registered "+a.FirstName+". Please log in.", nil, nil)
	}
}

// Login POST /account/login
//
// Every terminal state answers: unknown email, comparison failure, and wrong
// password all return the same invalid-credentials render; only a verified
// password sets the session cookie and redirects.
func (h *AccountHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderLoginFailed(c, c.PostForm("account_email"))
		return
	}

	a, err := h.Svc.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		h.renderLoginFailed(c, form.Email)
		return
	}

	token, exp, err := h.Issuer.Issue(a)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("session token signing failed")
		}
		h.renderLoginFailed(c, form.Email)
		return
	}
	h.Cookies.SetSession(c, token, exp)

	target := accountLanding
	if sid := middleware.VisitorID(c); sid != "" {
		if pending, perr := h.Bag.PopPendingRedirect(c.Request.Context(), sid); perr == nil && pending != "" {
			target = pending
		}
	}
	c.Redirect(http.StatusFound, target)
}

func (h *AccountHandler) renderLoginFailed(c *gin.Context, email string) {
	h.render(c, http.StatusBadRequest, view.Login, "Login", noticeCheckCreds, nil, map[string]any{
		"account_email": email,
	})
}

// ShowAccount GET /account/
func (h *AccountHandler) ShowAccount(c *gin.Context) {
	claims := middleware.Claims(c)
	var data map[string]any
	if claims != nil {
		data = map[string]any{"account": claims}
	}
	h.render(c, http.StatusOK, view.Account, "Account", "", nil, data)
}

// ShowUpdateAccount GET /account/update/:id
func (h *AccountHandler) ShowUpdateAccount(c *gin.Context) {
	a, err := h.Svc.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Account not found")
		return
	}
	sanitized := a.Sanitized()
	h.render(c, http.StatusOK, view.UpdateAccount, "Edit Account", "", nil, map[string]any{
		"account_id":        sanitized.ID,
		"account_firstname": sanitized.FirstName,
		"account_lastname":  sanitized.LastName,
		"account_email":     sanitized.Email,
	})
}

// UpdateProfile POST /account/update
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, view.UpdateAccount, "Edit Account", "", validation.ToDetails(err), map[string]any{
			"account_id":        c.PostForm("account_id"),
			"account_firstname": c.PostForm("account_firstname"),
			"account_lastname":  c.PostForm("account_lastname"),
			"account_email":     c.PostForm("account_email"),
		})
		return
	}

	rows, err := h.Svc.UpdateProfile(c.Request.Context(), form.ID, form.FirstName, form.LastName, form.Email)
	if err == nil && rows == 1 {
		h.flash(c, noticeProfileUpdated)
		c.Redirect(http.StatusFound, accountLanding)
		return
	}
	// Re-render the edit form pre-filled with the submitted values.
	h.render(c, http.StatusOK, view.UpdateAccount, "Edit Account", noticeProfileFailed, nil, map[string]any{
		"account_id":        form.ID,
		"account_firstname": form.FirstName,
		"account_lastname":  form.LastName,
		"account_email":     form.Email,
	})
}

// UpdatePassword POST /account/update-password
func (h *AccountHandler) UpdatePassword(c *gin.Context) {
	var form passwordForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, view.UpdateAccount, "Edit Account", "", validation.ToDetails(err), map[string]any{
			"account_id": c.PostForm("account_id"),
		})
		return
	}

	rows, err := h.Svc.UpdatePassword(c.Request.Context(), form.ID, form.Password)
	switch {
	case errors.Is(err, application.ErrHashingFailed):
		h.render(c, http.StatusInternalServerError, view.UpdateAccount, "Edit Account", noticeUpdateError, nil, map[string]any{
			"account_id": form.ID,
		})
	case err != nil || rows == 0:
		h.render(c, http.StatusOK, view.UpdateAccount, "Edit Account", noticeUpdateError, nil, map[string]any{
			"account_id": form.ID,
		})
	default:
		h.flash(c, noticePasswordChanged)
		c.Redirect(http.StatusFound, accountLanding)
	}
}

// Logout GET /account/logout
func (h *AccountHandler) Logout(c *gin.Context) {
	h.Cookies.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}
