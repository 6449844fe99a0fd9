package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yatube-dev/yatube/internal/api/middleware"
	"github.com/yatube-dev/yatube/internal/form"
	"github.com/yatube-dev/yatube/internal/service"
)

const sessionMaxAge = 24 * 60 * 60

func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.data(c, gin.H{"next": c.Query("next")}))
}

func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	next := safeNext(c.PostForm("next"))

	token, err := h.auth.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", h.data(c, gin.H{
				"next":        next,
				"values":      map[string]string{"username": username},
				"form_errors": form.Errors{"credentials": "Invalid username or password."},
			}))
			return
		}
		h.fail(c, err)
		return
	}
	h.setSession(c, token)
	c.Redirect(http.StatusFound, next)
}

func (h *Handler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", h.data(c, nil))
}

func (h *Handler) Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	errs := form.Errors{}
	if username == "" {
		errs["username"] = "This field is required."
	}
	if password == "" {
		errs["password"] = "This field is required."
	}
	if errs.Empty() {
		user, err := h.auth.Register(c.Request.Context(), username, password)
		switch {
		case err == nil:
			token, err := h.auth.TokenFor(user)
			if err != nil {
				h.fail(c, err)
				return
			}
			h.setSession(c, token)
			c.Redirect(http.StatusFound, "/")
			return
		case errors.Is(err, service.ErrUsernameTaken):
			errs["username"] = "This username is already taken."
		default:
			h.fail(c, err)
			return
		}
	}
	c.HTML(http.StatusOK, "signup.html", h.data(c, gin.H{
		"values":      map[string]string{"username": username},
		"form_errors": errs,
	}))
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) setSession(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", false, true)
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
