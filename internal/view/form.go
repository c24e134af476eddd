package view

import (
	"strconv"

	"github.com/msomdec/yatube/internal/domain"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

// PostForm is the state of the create/edit form.
type PostForm struct {
	PostID  int64 // zero when creating
	Text    string
	GroupID *int64
	Groups  []domain.Group
	Errors  *domain.ValidationError
}

// IsEdit reports whether the form edits an existing post.
func (f PostForm) IsEdit() bool {
	return f.PostID != 0
}

// PostFormPage renders the post create or edit form.
func PostFormPage(user *domain.User, f PostForm) Node {
	title, action, submit := "Новый пост", "/create/", "Добавить"
	if f.IsEdit() {
		title, action, submit = "Редактировать пост", postPath(f.PostID)+"edit/", "Сохранить"
	}

	options := []Node{Option(Value(""), Text("---------"), If(f.GroupID == nil, Selected()))}
	for _, g := range f.Groups {
		options = append(options, Option(
			Value(strconv.FormatInt(g.ID, 10)),
			Text(g.Title),
			If(f.GroupID != nil && *f.GroupID == g.ID, Selected()),
		))
	}

	return page(title, user,
		Div(Class("card"),
			Div(Class("card-header"), Text(title)),
			Div(Class("card-body"),
				Form(Method("post"), Action(action),
					data.Signals(map[string]any{"text": f.Text}),
					Div(Class("mb-3"),
						Label(For("id_text"), Text("Текст поста"), Span(Class("text-danger"), Text("*"))),
						Textarea(ID("id_text"), Name("text"), Class("form-control"), Attr("rows", "10"),
							data.Bind("text"), Text(f.Text)),
						fieldError(f.Errors.Field("text")),
						Small(Class("form-text text-muted"),
							data.Show("$text.trim() === ''"),
							Text("Текст нового поста"),
						),
					),
					Div(Class("mb-3"),
						Label(For("id_group"), Text("Группа")),
						Select(ID("id_group"), Name("group"), Class("form-select"), Group(options)),
						fieldError(f.Errors.Field("group")),
						Small(Class("form-text text-muted"), Text("Группа, к которой будет относиться пост")),
					),
					Button(Type("submit"), Class("btn btn-primary"), Text(submit)),
				),
			),
		),
	)
}

func fieldError(msg string) Node {
	if msg == "" {
		return nil
	}
	return Div(Class("invalid-feedback d-block"), Text(msg))
}
