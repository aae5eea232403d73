package webui

import (
	"slices"

	"user-management-service/pkg/client"
)

// Page is the view model of the single UI page.
type Page struct {
	Title string
	Users []client.User
	Form  Form
}

// NewPage orders users most recently created first. The API returns them
// oldest first; users is not modified.
func NewPage(users []client.User, form Form) Page {
	reversed := slices.Clone(users)
	slices.Reverse(reversed)
	if reversed == nil {
		reversed = []client.User{}
	}
	return Page{
		Title: "User Management App",
		Users: reversed,
		Form:  form,
	}
}
