package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatube-dev/yatube/internal/api/middleware"
	"github.com/yatube-dev/yatube/internal/pagination"
	"github.com/yatube-dev/yatube/internal/service"
)

// FollowIndex lists posts by the authors the caller follows.
func (h *Handler) FollowIndex(c *gin.Context) {
	user := middleware.UserFrom(c)
	page, err := h.rels.Feed(c.Request.Context(), user.ID, pagination.ParseNumber(c.Query("page")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "follow.html", h.data(c, gin.H{"page_obj": page}))
}

func (h *Handler) ProfileFollow(c *gin.Context) {
	user := middleware.UserFrom(c)
	username := c.Param("username")
	err := h.rels.FollowAuthor(c.Request.Context(), user.ID, username)
	switch {
	case err == nil, errors.Is(err, service.ErrFollowSelf):
		// following yourself is silently ignored, like a duplicate follow
		c.Redirect(http.StatusFound, "/profile/"+username+"/")
	default:
		h.fail(c, err)
	}
}

func (h *Handler) ProfileUnfollow(c *gin.Context) {
	user := middleware.UserFrom(c)
	username := c.Param("username")
	if err := h.rels.UnfollowAuthor(c.Request.Context(), user.ID, username); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
