package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/msomdec/yatube/internal/domain"
	"github.com/msomdec/yatube/internal/service"
	"github.com/msomdec/yatube/internal/view"
	"maragu.dev/gomponents"
)

// PostHandler serves post listings, post detail and the post form.
type PostHandler struct {
	listing *service.ListingService
	posts   *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(listing *service.ListingService, posts *service.PostService) *PostHandler {
	return &PostHandler{listing: listing, posts: posts}
}

// HandleIndex renders the newest posts.
// GET /
func (h *PostHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	l, err := h.listing.List(r.Context(), service.AllPosts(), r.URL.Query().Get("page"))
	if err != nil {
		renderError(w, r, err, "list posts")
		return
	}
	render(w, http.StatusOK, view.IndexPage(UserFromContext(r.Context()), l.Page))
}

// HandleGroupIndex lists all groups.
// GET /group/
func (h *PostHandler) HandleGroupIndex(w http.ResponseWriter, r *http.Request) {
	groups, err := h.listing.Groups(r.Context())
	if err != nil {
		renderError(w, r, err, "list groups")
		return
	}
	render(w, http.StatusOK, view.GroupIndexPage(UserFromContext(r.Context()), groups))
}

// HandleGroup renders the posts of one group.
// GET /group/{slug}/
func (h *PostHandler) HandleGroup(w http.ResponseWriter, r *http.Request) {
	l, err := h.listing.List(r.Context(), service.GroupPosts(r.PathValue("slug")), r.URL.Query().Get("page"))
	if err != nil {
		renderError(w, r, err, "list group posts")
		return
	}
	render(w, http.StatusOK, view.GroupPage(UserFromContext(r.Context()), l.Group, l.Page))
}

// HandleProfile renders the posts of one author.
// GET /profile/{username}/
func (h *PostHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	l, err := h.listing.List(r.Context(), service.AuthorPosts(r.PathValue("username")), r.URL.Query().Get("page"))
	if err != nil {
		renderError(w, r, err, "list author posts")
		return
	}
	render(w, http.StatusOK, view.ProfilePage(UserFromContext(r.Context()), l.Author, l.Page))
}

// HandleDetail renders a single post.
// GET /posts/{post_id}/
func (h *PostHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		HandleNotFound(w, r)
		return
	}

	detail, err := h.listing.Get(r.Context(), id)
	if err != nil {
		renderError(w, r, err, "get post")
		return
	}
	render(w, http.StatusOK, view.PostDetailPage(UserFromContext(r.Context()), detail.Post, detail.AuthorPosts))
}

// HandleCreateForm renders an empty post form.
// GET /create/
func (h *PostHandler) HandleCreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, view.PostForm{})
}

// HandleCreate stores a new post and redirects to the author's profile.
// POST /create/
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	in := parsePostInput(r)

	_, err := h.posts.Create(r.Context(), user, in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.renderForm(w, r, view.PostForm{Text: in.Text, GroupID: in.GroupID, Errors: verr})
			return
		}
		renderError(w, r, err, "create post")
		return
	}

	http.Redirect(w, r, "/profile/"+user.Username+"/", http.StatusSeeOther)
}

// HandleEditForm renders the form pre-filled with an existing post. Users
// other than the author are sent back to the post.
// GET /posts/{post_id}/edit/
func (h *PostHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		HandleNotFound(w, r)
		return
	}

	detail, err := h.listing.Get(r.Context(), id)
	if err != nil {
		renderError(w, r, err, "get post")
		return
	}

	post := detail.Post
	if service.AuthorizeMutation(UserFromContext(r.Context()), post) != service.Allowed {
		http.Redirect(w, r, postPath(id), http.StatusFound)
		return
	}

	h.renderForm(w, r, view.PostForm{PostID: id, Text: post.Text, GroupID: post.GroupID()})
}

// HandleEdit updates a post and redirects to its detail page.
// POST /posts/{post_id}/edit/
func (h *PostHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		HandleNotFound(w, r)
		return
	}
	in := parsePostInput(r)

	_, err := h.posts.Edit(r.Context(), UserFromContext(r.Context()), id, in)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			h.renderForm(w, r, view.PostForm{PostID: id, Text: in.Text, GroupID: in.GroupID, Errors: verr})
		case errors.Is(err, domain.ErrForbidden):
			http.Redirect(w, r, postPath(id), http.StatusFound)
		default:
			renderError(w, r, err, "edit post")
		}
		return
	}

	http.Redirect(w, r, postPath(id), http.StatusSeeOther)
}

func (h *PostHandler) renderForm(w http.ResponseWriter, r *http.Request, form view.PostForm) {
	groups, err := h.listing.Groups(r.Context())
	if err != nil {
		renderError(w, r, err, "list groups")
		return
	}
	form.Groups = groups
	render(w, http.StatusOK, view.PostFormPage(UserFromContext(r.Context()), form))
}

// HandleNotFound renders the 404 page.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusNotFound, view.NotFoundPage(UserFromContext(r.Context()), r.URL.Path))
}

// parsePostInput reads the post form. A group value that is not a number
// becomes an id no group has, so it fails validation like any unknown id.
func parsePostInput(r *http.Request) service.PostInput {
	in := service.PostInput{Text: r.PostFormValue("text")}
	if raw := strings.TrimSpace(r.PostFormValue("group")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			id = 0
		}
		in.GroupID = &id
	}
	return in
}

func postID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("post_id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func postPath(id int64) string {
	return "/posts/" + strconv.FormatInt(id, 10) + "/"
}

func render(w http.ResponseWriter, status int, node gomponents.Node) {
	if err := view.Render(w, status, node); err != nil {
		slog.Error("render page", "error", err)
	}
}

// renderError maps missing records to 404 and everything else to 500.
func renderError(w http.ResponseWriter, r *http.Request, err error, action string) {
	if errors.Is(err, domain.ErrNotFound) {
		HandleNotFound(w, r)
		return
	}
	slog.Error(action, "error", err, "path", r.URL.Path)
	render(w, http.StatusInternalServerError, view.ErrorPage(UserFromContext(r.Context())))
}
