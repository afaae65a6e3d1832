package view

import (
	"fmt"
	"strings"
)

// Page identifies a navigable screen of the management app. Parsing of
// raw page keys happens here, at the single navigation boundary, so the
// rest of the code deals in typed pages only.
type Page struct {
	kind     string
	category string
	feature  string
}

const (
	kindLanding    = "landing"
	kindCalendar   = "calendar"
	kindTodoList   = "todo_list"
	kindWaitlist   = "waitlist"
	kindComingSoon = "coming_soon"
)

func Landing() Page  { return Page{kind: kindLanding} }
func Calendar() Page { return Page{kind: kindCalendar} }
func TodoList() Page { return Page{kind: kindTodoList} }
func Waitlist(category string) Page {
	return Page{kind: kindWaitlist, category: category}
}
func ComingSoon(feature string) Page {
	return Page{kind: kindComingSoon, feature: feature}
}

func (p Page) IsLanding() bool  { return p.kind == kindLanding }
func (p Page) IsCalendar() bool { return p.kind == kindCalendar }
func (p Page) IsTodoList() bool { return p.kind == kindTodoList }

// WaitlistCategory reports the category when the page is a waitlist view.
func (p Page) WaitlistCategory() (string, bool) {
	if p.kind != kindWaitlist {
		return "", false
	}
	return p.category, true
}

// ComingSoonFeature reports the feature name for placeholder pages.
func (p Page) ComingSoonFeature() (string, bool) {
	if p.kind != kindComingSoon {
		return "", false
	}
	return p.feature, true
}

// Key renders the page as a stable string key for URLs and logs.
func (p Page) Key() string {
	switch p.kind {
	case kindWaitlist:
		return kindWaitlist + ":" + p.category
	case kindComingSoon:
		return kindComingSoon + ":" + p.feature
	case "":
		return kindLanding
	default:
		return p.kind
	}
}

// ParsePage resolves a raw key into a Page. Unknown keys fail rather
// than silently falling back to the landing page.
func ParsePage(key string) (Page, error) {
	switch key {
	case "", kindLanding:
		return Landing(), nil
	case kindCalendar:
		return Calendar(), nil
	case kindTodoList:
		return TodoList(), nil
	}
	if cat, ok := strings.CutPrefix(key, kindWaitlist+":"); ok && cat != "" {
		return Waitlist(cat), nil
	}
	if feat, ok := strings.CutPrefix(key, kindComingSoon+":"); ok && feat != "" {
		return ComingSoon(feat), nil
	}
	return Page{}, fmt.Errorf("unknown page key: %q", key)
}
