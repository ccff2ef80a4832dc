package entities

// Session identifies the authenticated employee for the duration of a
// request. It is built by the HTTP layer and passed explicitly into use
// cases; nothing in the core reads ambient session state.

type Session struct {
	Email string
	Role  string
}
