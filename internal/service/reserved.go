package service

import (
	"regexp"
	"strings"
)

// identifierPattern constrains usernames and aliases to URL-safe segments:
// 3 to 63 characters, lowercase letters, digits, '-' or '_', starting with
// a letter or digit.
var identifierPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{2,62}$`)

// reservedRoutes are path segments owned by the application itself. Neither
// a username nor an alias may shadow them: /dashboard must keep opening the
// dashboard even if someone wants that name for their page.
var reservedRoutes = map[string]struct{}{
	"admin":     {},
	"api":       {},
	"assets":    {},
	"callback":  {},
	"dashboard": {},
	"docs":      {},
	"health":    {},
	"login":     {},
	"logout":    {},
	"pricing":   {},
	"register":  {},
	"settings":  {},
	"setup":     {},
	"static":    {},
	"templates": {},
}

func isReservedRoute(segment string) bool {
	_, reserved := reservedRoutes[strings.ToLower(segment)]
	return reserved
}
