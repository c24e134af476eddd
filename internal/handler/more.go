package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/msomdec/yatube/internal/service"
	"github.com/msomdec/yatube/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

// HandleMore appends the requested page of a listing via SSE and replaces
// the load-more button.
// GET /more/?scope=all|group|author&key=...&page=N
func (h *PostHandler) HandleMore(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scope := service.Scope{Kind: service.ScopeKind(q.Get("scope")), Key: q.Get("key")}
	switch scope.Kind {
	case service.ScopeAll, service.ScopeGroup, service.ScopeAuthor:
	default:
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	l, err := h.listing.List(r.Context(), scope, q.Get("page"))
	if err != nil {
		renderError(w, r, err, "load more posts")
		return
	}

	cards, err := view.Fragment(view.PostCards(l.Page.Items, scope.Kind != service.ScopeGroup))
	if err != nil {
		slog.Error("render post cards", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	more, err := view.Fragment(view.LoadMore(l.Page, moreQuery(scope)))
	if err != nil {
		slog.Error("render load more", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)

	// Append the page to the list.
	if cards != "" {
		if err := sse.PatchElements(cards,
			datastar.WithSelectorID(view.PostListID),
			datastar.WithModeAppend(),
		); err != nil {
			slog.Warn("patch post cards", "error", err)
			return
		}
	}

	// Replace the button (points at the next page or disappears).
	if err := sse.PatchElements(more); err != nil {
		slog.Warn("patch load more", "error", err)
	}
}

func moreQuery(scope service.Scope) url.Values {
	q := url.Values{"scope": {string(scope.Kind)}}
	if scope.Key != "" {
		q.Set("key", scope.Key)
	}
	return q
}
