// Package controller provides the HTTP request handlers for the staff-ui
// web application: login/logout and the employee record pages.
package controller

import (
	"net/http"

	"staff-ui/logger"
	"staff-ui/web/service"
	"staff-ui/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the login and logout routes.
type IndexController struct {
	userService *service.UserService
}

// NewIndexController creates a new IndexController and initializes its routes.
// The login routes live on the open group, logout on the guarded one.
func NewIndexController(open *gin.RouterGroup, guarded *gin.RouterGroup, userService *service.UserService) *IndexController {
	a := &IndexController{userService: userService}
	open.GET("/login", a.loginPage)
	open.POST("/login", a.login)
	guarded.GET("/logout", a.logout)
	return a
}

// loginPage shows the login form, short-circuiting to the record list when
// a session is already active.
func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	html(c, "login.html", "Login", nil)
}

// login handles user authentication and session creation.
func (a *IndexController) login(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		session.AddFlash(c, "danger", "Login failed. Check your username and password.")
		html(c, "login.html", "Login", nil)
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login for username %q, IP: %s", form.Username, getRemoteIp(c))
		session.AddFlash(c, "danger", "Login failed. Check your username and password.")
		html(c, "login.html", "Login", nil)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	session.AddFlash(c, "success", "Login successful!")
	c.Redirect(http.StatusFound, "/")
}

// logout clears the session and redirects to the login page. Logging out
// twice is harmless.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
