// Package view renders the HTML pages and datastar fragments of the site.
package view

import (
	"bytes"
	"net/http"

	"github.com/msomdec/yatube/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"

// Render writes node as an HTML document with the given status.
func Render(w http.ResponseWriter, status int, node Node) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return node.Render(w)
}

// Fragment renders node to a string for SSE element patches.
func Fragment(node Node) (string, error) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func page(title string, user *domain.User, body ...Node) Node {
	return HTML(
		Lang("ru"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title)),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css")),
			Script(Type("module"), Src(datastarScript)),
		),
		Body(
			header(user),
			Main(Class("container py-4"), Group(body)),
			Footer(Class("border-top text-center py-3"),
				P(Class("text-muted mb-0"), Text("© Yatube")),
			),
		),
	)
}

func header(user *domain.User) Node {
	links := []Node{
		navLink("/group/", "Группы"),
	}
	if user != nil {
		links = append(links,
			navLink("/create/", "Новая запись"),
			navLink("/profile/"+user.Username+"/", user.Username),
			Li(Class("nav-item"),
				Form(Method("post"), Action("/auth/logout/"),
					Button(Type("submit"), Class("btn btn-link nav-link"), Text("Выйти")),
				),
			),
		)
	} else {
		links = append(links,
			navLink("/auth/login/", "Войти"),
			navLink("/auth/signup/", "Регистрация"),
		)
	}

	return Header(
		Nav(Class("navbar navbar-light bg-light"),
			Div(Class("container"),
				A(Class("navbar-brand"), Href("/"), Span(Style("color:red"), Text("Ya")), Text("tube")),
				Ul(Class("nav"), Group(links)),
			),
		),
	)
}

func navLink(href, label string) Node {
	return Li(Class("nav-item"), A(Class("nav-link"), Href(href), Text(label)))
}

// NotFoundPage is shown for unknown routes and missing records.
func NotFoundPage(user *domain.User, path string) Node {
	return page("Страница не найдена", user,
		H1(Text("Ошибка 404")),
		P(Text("Страницы с адресом "), Code(Text(path)), Text(" не существует")),
		A(Href("/"), Text("Идите на главную")),
	)
}

// ErrorPage is shown when a request fails unexpectedly.
func ErrorPage(user *domain.User) Node {
	return page("Ошибка сервера", user,
		H1(Text("Ошибка 500")),
		P(Text("Что-то пошло не так. Попробуйте позже.")),
	)
}
