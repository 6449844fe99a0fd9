package handler_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yatube-dev/yatube/internal/api"
	"github.com/yatube-dev/yatube/internal/api/handler"
	"github.com/yatube-dev/yatube/internal/api/middleware"
	"github.com/yatube-dev/yatube/internal/cache"
	"github.com/yatube-dev/yatube/internal/form"
	"github.com/yatube-dev/yatube/internal/media"
	"github.com/yatube-dev/yatube/internal/model"
	"github.com/yatube-dev/yatube/internal/repository"
	"github.com/yatube-dev/yatube/internal/service"
)

var smallGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x02, 0x00,
	0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xFF, 0xFF, 0xFF, 0x21, 0xF9, 0x04, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x0C,
	0x0A, 0x00, 0x3B,
}

type testApp struct {
	router    *gin.Engine
	db        *gorm.DB
	mr        *miniredis.Miniredis
	pageCache *cache.PageCache
	mediaRoot string

	posts    service.PostService
	comments service.CommentService
	rels     service.RelationshipService
	auth     service.AuthService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	postRepo := repository.NewPostRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	mediaRoot := t.TempDir()
	store := media.NewStore(mediaRoot)
	posts := service.NewPostService(db, postRepo, groupRepo, userRepo, commentRepo, store)
	comments := service.NewCommentService(commentRepo, postRepo)
	rels := service.NewRelationshipService(followRepo, postRepo, userRepo)
	auth := service.NewAuthService(userRepo, []byte("test-secret"), time.Hour)
	pageCache := cache.NewPageCache(rdb, 20*time.Second)

	logger := zap.NewNop()
	router := api.NewRouter(api.Options{
		Handler:   handler.New(posts, comments, rels, auth, logger),
		Auth:      auth,
		PageCache: pageCache,
		Logger:    logger,
	})

	return &testApp{
		router:    router,
		db:        db,
		mr:        mr,
		pageCache: pageCache,
		mediaRoot: mediaRoot,
		posts:     posts,
		comments:  comments,
		rels:      rels,
		auth:      auth,
	}
}

func (a *testApp) user(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := a.auth.Register(context.Background(), username, "password")
	require.NoError(t, err)
	return u
}

func (a *testApp) group(t *testing.T, slug string) *model.Group {
	t.Helper()
	g := &model.Group{Title: "Тестовый заголовок", Slug: slug, Description: "Тестовое описание группы"}
	require.NoError(t, a.db.Create(g).Error)
	return g
}

func (a *testApp) post(t *testing.T, author *model.User, text string, group *model.Group) *model.Post {
	t.Helper()
	p := &model.Post{Text: text, AuthorID: author.ID, CreatedAt: time.Now()}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, a.db.Create(p).Error)
	return p
}

func (a *testApp) sessionCookie(t *testing.T, u *model.User) *http.Cookie {
	t.Helper()
	token, err := a.auth.TokenFor(u)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func (a *testApp) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(t *testing.T, path string, cookie *http.Cookie, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// loginRedirectTarget extracts the next param from a login redirect.
func loginRedirectTarget(t *testing.T, w *httptest.ResponseRecorder) (path, next string) {
	t.Helper()
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	return loc.Path, loc.Query().Get("next")
}

func TestGuestRoutes(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	g := app.group(t, "test-slug")
	p := app.post(t, author, "Тестовый текст", g)

	cases := []struct {
		path string
		code int
	}{
		{"/", http.StatusOK},
		{"/group/test-slug/", http.StatusOK},
		{"/profile/user_author/", http.StatusOK},
		{fmt.Sprintf("/posts/%d/", p.ID), http.StatusOK},
		{"/unexisting_page/", http.StatusNotFound},
		{fmt.Sprintf("/posts/%d/edit/", p.ID), http.StatusFound},
		{"/create/", http.StatusFound},
		{"/follow/", http.StatusFound},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := app.get(t, tc.path, nil)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestGuestRedirectsToLoginWithNext(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	p := app.post(t, author, "Тестовый текст", nil)

	paths := []string{
		"/create/",
		fmt.Sprintf("/posts/%d/edit/", p.ID),
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := app.get(t, path, nil)
			require.Equal(t, http.StatusFound, w.Code)
			loginPath, next := loginRedirectTarget(t, w)
			assert.Equal(t, "/auth/login/", loginPath)
			assert.Equal(t, path, next)
		})
	}

	commentPath := fmt.Sprintf("/posts/%d/comment/", p.ID)
	w := app.postForm(t, commentPath, nil, url.Values{"text": {"x"}})
	require.Equal(t, http.StatusFound, w.Code)
	loginPath, next := loginRedirectTarget(t, w)
	assert.Equal(t, "/auth/login/", loginPath)
	assert.Equal(t, commentPath, next)
}

func TestAuthorRoutes(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	app.group(t, "test-slug")
	p := app.post(t, author, "Тестовый текст", nil)
	cookie := app.sessionCookie(t, author)

	for _, path := range []string{
		"/",
		"/group/test-slug/",
		"/profile/user_author/",
		fmt.Sprintf("/posts/%d/", p.ID),
		fmt.Sprintf("/posts/%d/edit/", p.ID),
		"/create/",
		"/follow/",
	} {
		t.Run(path, func(t *testing.T) {
			w := app.get(t, path, cookie)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestNonAuthorEditRedirectsToDetail(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	other := app.user(t, "user_authorized")
	p := app.post(t, author, "Тестовый текст", nil)
	cookie := app.sessionCookie(t, other)

	w := app.get(t, fmt.Sprintf("/posts/%d/edit/", p.ID), cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", p.ID), w.Header().Get("Location"))

	w = app.postForm(t, fmt.Sprintf("/posts/%d/edit/", p.ID), cookie, url.Values{"text": {"hijack"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", p.ID), w.Header().Get("Location"))

	// an invalid body still redirects, it never re-renders the edit form
	w = app.postForm(t, fmt.Sprintf("/posts/%d/edit/", p.ID), cookie, url.Values{"text": {""}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", p.ID), w.Header().Get("Location"))

	var got model.Post
	require.NoError(t, app.db.First(&got, p.ID).Error)
	assert.Equal(t, "Тестовый текст", got.Text)
}

func TestNotFoundPages(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "user_author")

	for _, path := range []string{
		"/group/unknown/",
		"/profile/nobody/",
		"/posts/424242/",
		"/nonexist-page/",
	} {
		t.Run(path, func(t *testing.T) {
			w := app.get(t, path, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), "Custom 404")
		})
	}
}

func TestListingPagesShowPost(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	g := app.group(t, "test-slug")
	p := app.post(t, author, "Тестовый текст", g)

	for _, path := range []string{
		"/",
		"/group/test-slug/",
		"/profile/user_author/",
		fmt.Sprintf("/posts/%d/", p.ID),
	} {
		t.Run(path, func(t *testing.T) {
			w := app.get(t, path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, "Тестовый текст")
			assert.Contains(t, body, "user_author")
			assert.Contains(t, body, "Тестовый заголовок")
		})
	}
}

func TestPostWithGroupStaysOutOfOtherGroup(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	g := app.group(t, "test-slug")
	other := &model.Group{Title: "Group", Slug: "another-slug", Description: "Group for test"}
	require.NoError(t, app.db.Create(other).Error)
	app.post(t, author, "Тестовый текст", g)

	w := app.get(t, "/group/another-slug/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Тестовый текст")
}

func TestPaginatorWindows(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	g := app.group(t, "test-slug")
	for i := 0; i < 13; i++ {
		app.post(t, author, fmt.Sprintf("Тестовый текст №%d", i), g)
	}

	cases := []struct {
		path  string
		count int
	}{
		{"/", 10},
		{"/?page=2", 3},
		{"/group/test-slug/", 10},
		{"/group/test-slug/?page=2", 3},
		{"/profile/user_author/", 10},
		{"/profile/user_author/?page=2", 3},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := app.get(t, tc.path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.count, strings.Count(w.Body.String(), "<article>"))
		})
	}
}

func multipartPostForm(t *testing.T, fields map[string]string, filename string, file []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
		hdr.Set("Content-Type", "image/gif")
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestPostCreateFormPersistsPostWithImage(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	g := app.group(t, "test-slug")
	cookie := app.sessionCookie(t, author)

	var before int64
	require.NoError(t, app.db.Model(&model.Post{}).Count(&before).Error)

	body, contentType := multipartPostForm(t, map[string]string{
		"text":  "Новая запись",
		"group": fmt.Sprintf("%d", g.ID),
	}, "small.gif", smallGIF)

	req := httptest.NewRequest(http.MethodPost, "/create/", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/user_author/", w.Header().Get("Location"))

	var after int64
	require.NoError(t, app.db.Model(&model.Post{}).Count(&after).Error)
	require.Equal(t, before+1, after)

	var last model.Post
	require.NoError(t, app.db.Order("id DESC").First(&last).Error)
	assert.Equal(t, "Новая запись", last.Text)
	assert.Equal(t, author.ID, last.AuthorID)
	require.NotNil(t, last.GroupID)
	assert.Equal(t, g.ID, *last.GroupID)
	assert.Equal(t, "posts/small.gif", last.Image)

	saved, err := os.ReadFile(filepath.Join(app.mediaRoot, "posts", "small.gif"))
	require.NoError(t, err)
	assert.Equal(t, smallGIF, saved)
}

func TestPostCreateInvalidFormRerenders(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	cookie := app.sessionCookie(t, author)

	w := app.postForm(t, "/create/", cookie, url.Values{"text": {""}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "This field is required.")

	var cnt int64
	require.NoError(t, app.db.Model(&model.Post{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestPostCreateFormShowsSchema(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	cookie := app.sessionCookie(t, author)

	w := app.get(t, "/create/", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	for _, field := range form.PostSchema {
		assert.Contains(t, body, field.Label)
		assert.Contains(t, body, field.HelpText)
	}
}

func TestPostEditChangesGroup(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	g1 := app.group(t, "test-slug")
	g2 := &model.Group{Title: "Группа для теста", Slug: "test-group", Description: "Описание группы"}
	require.NoError(t, app.db.Create(g2).Error)
	p := app.post(t, author, "Пост для редактирования", g1)
	cookie := app.sessionCookie(t, author)

	w := app.postForm(t, fmt.Sprintf("/posts/%d/edit/", p.ID), cookie, url.Values{
		"text":  {"Запись группы"},
		"group": {fmt.Sprintf("%d", g2.ID)},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", p.ID), w.Header().Get("Location"))

	var got model.Post
	require.NoError(t, app.db.First(&got, p.ID).Error)
	assert.Equal(t, "Запись группы", got.Text)
	require.NotNil(t, got.GroupID)
	assert.Equal(t, g2.ID, *got.GroupID)

	// the in-memory copy read before the edit still holds the old values
	assert.Equal(t, "Пост для редактирования", p.Text)
	assert.Equal(t, g1.ID, *p.GroupID)
}

func TestAddCommentPersistsAndRedirects(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	p := app.post(t, author, "Текст", nil)
	cookie := app.sessionCookie(t, author)

	var before int64
	require.NoError(t, app.db.Model(&model.Comment{}).Count(&before).Error)

	w := app.postForm(t, fmt.Sprintf("/posts/%d/comment/", p.ID), cookie, url.Values{"text": {"Комментарий"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", p.ID), w.Header().Get("Location"))

	var after int64
	require.NoError(t, app.db.Model(&model.Comment{}).Count(&after).Error)
	require.Equal(t, before+1, after)

	var last model.Comment
	require.NoError(t, app.db.Order("id DESC").First(&last).Error)
	assert.Equal(t, "Комментарий", last.Text)

	// and it renders on the detail page
	w = app.get(t, fmt.Sprintf("/posts/%d/", p.ID), cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Комментарий")
}

func TestFollowCreatesEdge(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	reader := app.user(t, "user_authorized")
	cookie := app.sessionCookie(t, reader)

	var before int64
	require.NoError(t, app.db.Model(&model.Follow{}).Count(&before).Error)

	w := app.postForm(t, "/profile/user_author/follow/", cookie, nil)
	require.Equal(t, http.StatusFound, w.Code)

	var after int64
	require.NoError(t, app.db.Model(&model.Follow{}).Count(&after).Error)
	require.Equal(t, before+1, after)

	var edge model.Follow
	require.NoError(t, app.db.Where("user_id = ? AND author_id = ?", reader.ID, author.ID).First(&edge).Error)

	// repeat follow adds nothing
	_ = app.postForm(t, "/profile/user_author/follow/", cookie, nil)
	require.NoError(t, app.db.Model(&model.Follow{}).Count(&after).Error)
	require.Equal(t, before+1, after)
}

func TestUnfollowRemovesEdge(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	reader := app.user(t, "user_authorized")
	require.NoError(t, app.db.Create(&model.Follow{UserID: reader.ID, AuthorID: author.ID}).Error)
	cookie := app.sessionCookie(t, reader)

	w := app.postForm(t, "/profile/user_author/unfollow/", cookie, nil)
	require.Equal(t, http.StatusFound, w.Code)

	var cnt int64
	require.NoError(t, app.db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestSelfFollowIsNoOp(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	cookie := app.sessionCookie(t, author)

	w := app.postForm(t, "/profile/user_author/follow/", cookie, nil)
	require.Equal(t, http.StatusFound, w.Code)

	var cnt int64
	require.NoError(t, app.db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestFeedShowsOnlyFollowedAuthors(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	reader := app.user(t, "user_authorized")
	app.post(t, author, "Пост", nil)
	cookie := app.sessionCookie(t, reader)

	// not following yet: feed is empty
	w := app.get(t, "/follow/", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Пост")

	require.NoError(t, app.db.Create(&model.Follow{UserID: reader.ID, AuthorID: author.ID}).Error)

	w = app.get(t, "/follow/", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Пост")
}

func TestIndexCacheServesStaleUntilCleared(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	g := app.group(t, "test-slug")
	p := app.post(t, author, "Пост", g)
	ctx := context.Background()

	cached := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, cached.Code)
	require.Contains(t, cached.Body.String(), "Пост")

	require.NoError(t, app.posts.Delete(ctx, p.ID))

	stale := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, stale.Code)
	assert.Equal(t, cached.Body.Bytes(), stale.Body.Bytes())

	require.NoError(t, app.pageCache.Clear(ctx))

	fresh := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, fresh.Code)
	assert.NotEqual(t, cached.Body.Bytes(), fresh.Body.Bytes())
	assert.NotContains(t, fresh.Body.String(), "Пост")
}

func TestIndexCacheExpires(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "user_author")
	p := app.post(t, author, "Пост", nil)
	ctx := context.Background()

	first := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, first.Code)

	require.NoError(t, app.posts.Delete(ctx, p.ID))
	app.mr.FastForward(21 * time.Second)

	second := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.NotEqual(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestLoginLogoutFlow(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "user_author")

	// wrong password re-renders with an error
	w := app.postForm(t, "/auth/login/", nil, url.Values{
		"username": {"user_author"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")

	// correct password sets the session cookie and honors next
	w = app.postForm(t, "/auth/login/", nil, url.Values{
		"username": {"user_author"},
		"password": {"password"},
		"next":     {"/create/"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/create/", w.Header().Get("Location"))

	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			session = ck
		}
	}
	require.NotNil(t, session)
	require.NotEmpty(t, session.Value)

	// the cookie authenticates follow-up requests
	w = app.get(t, "/create/", &http.Cookie{Name: session.Name, Value: session.Value})
	assert.Equal(t, http.StatusOK, w.Code)

	// logout drops the session
	w = app.postForm(t, "/auth/logout/", &http.Cookie{Name: session.Name, Value: session.Value}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			assert.Empty(t, ck.Value)
		}
	}
}

func TestSignupCreatesUserAndLogsIn(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm(t, "/auth/signup/", nil, url.Values{
		"username": {"newcomer"},
		"password": {"password"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	var u model.User
	require.NoError(t, app.db.Where("username = ?", "newcomer").First(&u).Error)

	// duplicate username re-renders with an error
	w = app.postForm(t, "/auth/signup/", nil, url.Values{
		"username": {"newcomer"},
		"password": {"password"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}
