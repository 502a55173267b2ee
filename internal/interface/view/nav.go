package view

import "context"

// NavItem is a single navigation entry.
type NavItem struct {
	Label string
	URL   string
}

// Nav is the navigation structure passed to every render. Its contents are
// opaque to the account flow.
type Nav []NavItem

// NavProvider assembles the navigation menu. Assembly may reach external
// data, so it can fail; callers must resolve it before any render.
type NavProvider interface {
	Nav(ctx context.Context) (Nav, error)
}

// StaticNav serves a fixed menu.
type StaticNav struct {
	Items Nav
}

func NewStaticNav() *StaticNav {
	return &StaticNav{Items: Nav{
		{Label: "Home", URL: "/"},
		{Label: "My Account", URL: "/account/"},
	}}
}

func (n *StaticNav) Nav(_ context.Context) (Nav, error) {
	return n.Items, nil
}
