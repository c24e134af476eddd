package view

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/msomdec/yatube/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Element ids targeted by the load-more SSE patches.
const (
	PostListID = "post-list"
	LoadMoreID = "load-more"
)

// listingView describes one page of a post listing.
type listingView struct {
	Title      string
	Heading    Node
	Posts      domain.Page[domain.Post]
	BasePath   string // path the paginator links to
	MoreQuery  url.Values
	ShowGroups bool
}

// IndexPage renders the newest posts across the whole site.
func IndexPage(user *domain.User, posts domain.Page[domain.Post]) Node {
	return listingPage(user, listingView{
		Title:      "Последние обновления на сайте",
		Heading:    H1(Text("Последние обновления на сайте")),
		Posts:      posts,
		BasePath:   "/",
		MoreQuery:  url.Values{"scope": {"all"}},
		ShowGroups: true,
	})
}

// GroupPage renders the posts of one group.
func GroupPage(user *domain.User, group *domain.Group, posts domain.Page[domain.Post]) Node {
	return listingPage(user, listingView{
		Title: "Записи сообщества " + group.Title,
		Heading: Div(
			H1(Text(group.Title)),
			If(group.Description != "", P(Text(group.Description))),
		),
		Posts:     posts,
		BasePath:  "/group/" + group.Slug + "/",
		MoreQuery: url.Values{"scope": {"group"}, "key": {group.Slug}},
	})
}

// ProfilePage renders the posts of one author.
func ProfilePage(user *domain.User, author *domain.User, posts domain.Page[domain.Post]) Node {
	return listingPage(user, listingView{
		Title: "Профайл пользователя " + author.Username,
		Heading: Div(
			H1(Text("Все посты пользователя "+author.Username)),
			H3(Text("Всего постов: "+strconv.Itoa(posts.TotalItems))),
		),
		Posts:      posts,
		BasePath:   "/profile/" + author.Username + "/",
		MoreQuery:  url.Values{"scope": {"author"}, "key": {author.Username}},
		ShowGroups: true,
	})
}

func listingPage(user *domain.User, lp listingView) Node {
	return page(lp.Title, user,
		lp.Heading,
		Div(ID(PostListID), PostCards(lp.Posts.Items, lp.ShowGroups)),
		LoadMore(lp.Posts, lp.MoreQuery),
		paginator(lp.Posts, lp.BasePath),
	)
}

// PostCards renders a run of post cards, used both on full pages and in
// load-more fragments.
func PostCards(posts []domain.Post, showGroup bool) Node {
	return Map(posts, func(p domain.Post) Node {
		return postCard(p, showGroup)
	})
}

func postCard(p domain.Post, showGroup bool) Node {
	return Article(Class("mb-4"), Data("post-id", strconv.FormatInt(p.ID, 10)),
		Ul(Class("list-unstyled"),
			Li(Text("Автор: "), A(Href("/profile/"+p.Author.Username+"/"), Text(p.Author.Username))),
			Li(Text("Дата публикации: "+formatDate(p))),
		),
		P(Class("post-text"), postText(p.Text)),
		A(Href(postPath(p.ID)), Text("подробная информация")),
		Iff(showGroup && p.Group != nil, func() Node {
			return Div(A(Href("/group/"+p.Group.Slug+"/"), Text("все записи группы "+p.Group.Title)))
		}),
		Hr(),
	)
}

// LoadMore renders the button that appends the next page in place, or an
// empty placeholder when the listing has no further pages.
func LoadMore(posts domain.Page[domain.Post], query url.Values) Node {
	if !posts.HasNext() || posts.Len() == 0 {
		return Div(ID(LoadMoreID))
	}
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(posts.NextNumber()))

	return Div(ID(LoadMoreID), Class("text-center mb-3"),
		Button(Type("button"), Class("btn btn-outline-secondary"),
			Attr("data-on:click", fmt.Sprintf("@get('/more/?%s')", q.Encode())),
			Text("Показать ещё"),
		),
	)
}

func paginator(posts domain.Page[domain.Post], basePath string) Node {
	if posts.TotalPages() <= 1 && !posts.HasPrevious() {
		return nil
	}

	items := []Node{}
	if posts.HasPrevious() {
		items = append(items,
			pageItem(basePath, 1, "Первая"),
			pageItem(basePath, posts.PreviousNumber(), "Предыдущая"),
		)
	}
	items = append(items, Li(Class("page-item active"),
		Span(Class("page-link"),
			Text(fmt.Sprintf("Страница %d из %d", posts.Number, posts.TotalPages()))),
	))
	if posts.HasNext() {
		items = append(items,
			pageItem(basePath, posts.NextNumber(), "Следующая"),
			pageItem(basePath, posts.TotalPages(), "Последняя"),
		)
	}

	return Nav(Attr("aria-label", "pagination"), Ul(Class("pagination justify-content-center"), Group(items)))
}

func pageItem(basePath string, number int, label string) Node {
	return Li(Class("page-item"), A(Class("page-link"), Href(basePath+"?page="+strconv.Itoa(number)), Text(label)))
}

// PostDetailPage renders a single post with its author's post count and,
// for the author, an edit link.
func PostDetailPage(user *domain.User, post *domain.Post, authorPosts int) Node {
	isAuthor := user != nil && user.ID == post.Author.ID

	return page("Пост "+post.String(), user,
		Div(Class("row"),
			Aside(Class("col-12 col-md-3"),
				Ul(Class("list-group list-group-flush"),
					Li(Class("list-group-item"), Text("Дата публикации: "+formatDate(*post))),
					groupItem(post.Group),
					Li(Class("list-group-item"), Text("Автор: "+post.Author.Username)),
					Li(Class("list-group-item"), Text("Всего постов автора: "), Span(Text(strconv.Itoa(authorPosts)))),
					Li(Class("list-group-item"),
						A(Href("/profile/"+post.Author.Username+"/"), Text("все посты пользователя")),
					),
				),
			),
			Article(Class("col-12 col-md-9"),
				P(Class("post-text"), postText(post.Text)),
				If(isAuthor,
					A(Class("btn btn-primary"), Href(postPath(post.ID)+"edit/"), Text("редактировать запись")),
				),
			),
		),
	)
}

func groupItem(g *domain.Group) Node {
	if g == nil {
		return nil
	}
	return Li(Class("list-group-item"),
		Text("Группа: "+g.Title+" "),
		A(Href("/group/"+g.Slug+"/"), Text("все записи группы")),
	)
}

// GroupIndexPage lists every group.
func GroupIndexPage(user *domain.User, groups []domain.Group) Node {
	var body Node = P(Text("Пока нет ни одной группы."))
	if len(groups) > 0 {
		body = Ul(Class("list-group"), Map(groups, func(g domain.Group) Node {
			return Li(Class("list-group-item"),
				A(Href("/group/"+g.Slug+"/"), Text(g.Title)),
				If(g.Description != "", P(Class("text-muted mb-0"), Text(g.Description))),
			)
		}))
	}
	return page("Группы", user, H1(Text("Группы")), body)
}

func postPath(id int64) string {
	return "/posts/" + strconv.FormatInt(id, 10) + "/"
}

var months = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

func formatDate(p domain.Post) string {
	t := p.CreatedAt.Local()
	return strings.Join([]string{strconv.Itoa(t.Day()), months[t.Month()-1], strconv.Itoa(t.Year())}, " ")
}
