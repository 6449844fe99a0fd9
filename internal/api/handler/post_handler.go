package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yatube-dev/yatube/internal/api/middleware"
	"github.com/yatube-dev/yatube/internal/form"
	"github.com/yatube-dev/yatube/internal/pagination"
	"github.com/yatube-dev/yatube/internal/service"
)

// Index is the cached landing page with all posts.
func (h *Handler) Index(c *gin.Context) {
	page, err := h.posts.Index(c.Request.Context(), pagination.ParseNumber(c.Query("page")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", h.data(c, gin.H{"page_obj": page}))
}

func (h *Handler) GroupList(c *gin.Context) {
	group, page, err := h.posts.GroupPage(c.Request.Context(), c.Param("slug"), pagination.ParseNumber(c.Query("page")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.html", h.data(c, gin.H{"group": group, "page_obj": page}))
}

func (h *Handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	author, page, err := h.posts.ProfilePage(ctx, c.Param("username"), pagination.ParseNumber(c.Query("page")))
	if err != nil {
		h.fail(c, err)
		return
	}
	following := false
	if u := middleware.UserFrom(c); u != nil {
		following, err = h.rels.IsFollowing(ctx, u.ID, author.ID)
		if err != nil {
			h.fail(c, err)
			return
		}
	}
	c.HTML(http.StatusOK, "profile.html", h.data(c, gin.H{
		"author":    author,
		"page_obj":  page,
		"following": following,
	}))
}

func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	post, comments, err := h.posts.Detail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.html", h.data(c, gin.H{"post": post, "comments": comments}))
}

func (h *Handler) PostCreateForm(c *gin.Context) {
	h.renderPostForm(c, false, 0, map[string]string{}, form.Errors{})
}

func (h *Handler) PostCreate(c *gin.Context) {
	user := middleware.UserFrom(c)
	f, values, errs := h.bindPostForm(c)
	if !errs.Empty() {
		h.renderPostForm(c, false, 0, values, errs)
		return
	}
	img, errs := h.bindImage(c)
	if !errs.Empty() {
		h.renderPostForm(c, false, 0, values, errs)
		return
	}
	if img != nil {
		defer img.Close()
	}

	_, err := h.posts.Create(c.Request.Context(), user.ID, f, img)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			errs["group"] = "Select a valid group."
		case errors.Is(err, service.ErrInvalidImage):
			errs["image"] = "Upload a valid image."
		default:
			h.fail(c, err)
			return
		}
		h.renderPostForm(c, false, 0, values, errs)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func (h *Handler) PostEditForm(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	user := middleware.UserFrom(c)
	post, _, err := h.posts.Detail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
		return
	}
	values := map[string]string{"text": post.Text}
	if post.GroupID != nil {
		values["group"] = strconv.FormatUint(uint64(*post.GroupID), 10)
	}
	h.renderPostForm(c, true, id, values, form.Errors{})
}

func (h *Handler) PostEdit(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	user := middleware.UserFrom(c)
	// non-authors land back on the detail page before any form processing,
	// same as the edit form
	post, _, err := h.posts.Detail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
		return
	}
	f, values, errs := h.bindPostForm(c)
	if !errs.Empty() {
		h.renderPostForm(c, true, id, values, errs)
		return
	}
	img, errs := h.bindImage(c)
	if !errs.Empty() {
		h.renderPostForm(c, true, id, values, errs)
		return
	}
	if img != nil {
		defer img.Close()
	}

	_, err = h.posts.Edit(c.Request.Context(), id, user.ID, f, img)
	switch {
	case err == nil, errors.Is(err, service.ErrNotAuthor):
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
	case errors.Is(err, service.ErrInvalidImage):
		errs["image"] = "Upload a valid image."
		h.renderPostForm(c, true, id, values, errs)
	case errors.Is(err, service.ErrNotFound):
		// the post itself is resolved above, so this is a bad group id
		errs["group"] = "Select a valid group."
		h.renderPostForm(c, true, id, values, errs)
	default:
		h.fail(c, err)
	}
}

func (h *Handler) AddComment(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	user := middleware.UserFrom(c)
	f := form.CommentForm{Text: c.PostForm("text")}
	if errs := f.Validate(); !errs.Empty() {
		post, comments, err := h.posts.Detail(c.Request.Context(), id)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.HTML(http.StatusOK, "post_detail.html", h.data(c, gin.H{
			"post":        post,
			"comments":    comments,
			"form_errors": errs,
		}))
		return
	}

	if _, err := h.comments.Add(c.Request.Context(), id, user.ID, f.Text); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
}

func (h *Handler) postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.NotFound(c)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) bindPostForm(c *gin.Context) (form.PostForm, map[string]string, form.Errors) {
	values := map[string]string{
		"text":  c.PostForm("text"),
		"group": c.PostForm("group"),
	}
	f := form.PostForm{Text: values["text"]}
	if values["group"] != "" {
		gid, err := strconv.ParseUint(values["group"], 10, 64)
		if err != nil {
			return f, values, form.Errors{"group": "Select a valid group."}
		}
		id := uint(gid)
		f.GroupID = &id
	}
	return f, values, f.Validate()
}

func (h *Handler) bindImage(c *gin.Context) (*service.ImageUpload, form.Errors) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		// no file attached
		return nil, form.Errors{}
	}
	contentType := header.Header.Get("Content-Type")
	return &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        file,
	}, form.Errors{}
}

func (h *Handler) renderPostForm(c *gin.Context, isEdit bool, postID uint, values map[string]string, errs form.Errors) {
	groups, err := h.posts.Groups(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "create_post.html", h.data(c, gin.H{
		"schema":      form.PostSchema,
		"groups":      groups,
		"is_edit":     isEdit,
		"post_id":     postID,
		"values":      values,
		"form_errors": errs,
	}))
}
