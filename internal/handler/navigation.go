package handler

import "strings"

// NavItem is one sidebar entry. Prefix marks section roots whose whole
// subtree keeps them highlighted (a lecture detail page highlights Lectures).
type NavItem struct {
	Label  string
	Path   string
	Icon   string
	Prefix bool
}

var navItems = []NavItem{
	{Label: "Dashboard", Path: "/dashboard", Icon: "🏠"},
	{Label: "Lectures", Path: "/lectures", Icon: "📖", Prefix: true},
	{Label: "Students", Path: "/students", Icon: "👥", Prefix: true},
	{Label: "Create Lecture", Path: "/lectures/create", Icon: "➕"},
	{Label: "Add Student", Path: "/students/create", Icon: "🧑"},
	{Label: "Reports", Path: "/reports", Icon: "📊", Prefix: true},
}

// CurrentNavPath returns the path of the single entry considered current for
// the active path, or "" when none matches. Ambiguity between an exact match
// and a section root is resolved by the longest matching path.
func CurrentNavPath(path string, items []NavItem) string {
	best := ""
	for _, item := range items {
		matches := path == item.Path ||
			(item.Prefix && strings.HasPrefix(path, item.Path+"/"))
		if matches && len(item.Path) > len(best) {
			best = item.Path
		}
	}
	return best
}

type navView struct {
	Label   string
	Path    string
	Icon    string
	Current bool
}

func navFor(path string) []navView {
	current := CurrentNavPath(path, navItems)
	views := make([]navView, len(navItems))
	for i, item := range navItems {
		views[i] = navView{
			Label:   item.Label,
			Path:    item.Path,
			Icon:    item.Icon,
			Current: item.Path == current,
		}
	}
	return views
}
