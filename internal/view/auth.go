package view

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LoginPage renders the login form. next is carried through as a hidden
// field so a successful login returns to the page that required it.
func LoginPage(username, next, errMsg string) Node {
	return authCard("Войти", "/auth/login/", errMsg,
		If(next != "", Input(Type("hidden"), Name("next"), Value(next))),
		textField("id_username", "username", "text", "Имя пользователя", username),
		textField("id_password", "password", "password", "Пароль", ""),
	)
}

// SignupPage renders the registration form.
func SignupPage(username, errMsg string) Node {
	return authCard("Зарегистрироваться", "/auth/signup/", errMsg,
		textField("id_username", "username", "text", "Имя пользователя", username),
		textField("id_password1", "password1", "password", "Пароль", ""),
		textField("id_password2", "password2", "password", "Подтверждение пароля", ""),
	)
}

func authCard(title, action, errMsg string, fields ...Node) Node {
	return page(title, nil,
		Div(Class("card"),
			Div(Class("card-header"), Text(title)),
			Div(Class("card-body"),
				If(errMsg != "", Div(Class("alert alert-danger"), Text(errMsg))),
				Form(Method("post"), Action(action),
					Group(fields),
					Button(Type("submit"), Class("btn btn-primary"), Text(title)),
				),
			),
		),
	)
}

func textField(id, name, typ, label, value string) Node {
	return Div(Class("mb-3"),
		Label(For(id), Text(label)),
		Input(ID(id), Name(name), Type(typ), Class("form-control"), Required(), If(value != "", Value(value))),
	)
}
