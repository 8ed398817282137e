// Package route classifies requests by (method, path) into the access level
// the verification gate enforces. The table is static and the lookup is a
// pure function, so the whole surface can be covered by one table-driven
// test.
package route

import (
	"strings"

	"github.com/JeongHyeonYang123/RealAssetPJT/pkg/constant"
)

type Level int

const (
	Public Level = iota
	Authenticated
	RoleRestricted
)

// Access is the classification result. Role is set only for RoleRestricted.
type Access struct {
	Level Level
	Role  string
}

// rule matches a method ("" = any) against a path pattern. Pattern segments
// starting with ':' match any single segment; a final '*' matches the rest
// of the path, including nothing.
type rule struct {
	method  string
	pattern string
	access  Access
}

var (
	public    = Access{Level: Public}
	authOnly  = Access{Level: Authenticated}
	adminOnly = Access{Level: RoleRestricted, Role: constant.RoleAdmin}
)

// First match wins, so method-specific rules for a path precede broader
// prefix rules.
var rules = []rule{
	// Token endpoints and signup.
	{"", "/api/auth/*", public},
	{"POST", "/api/v1/users", public},
	{"", "/api/v1/users/email/*", public},
	{"", "/api/v1/users/verify", public},
	{"", "/api/v1/users/find-password", public},
	{"", "/api/v1/users/reset-password", public},

	// Community posts: read is open, any mutation needs an identity.
	{"GET", "/api/v1/posts", public},
	{"POST", "/api/v1/posts", authOnly},
	{"GET", "/api/v1/posts/:id", public},
	{"PUT", "/api/v1/posts/:id", authOnly},
	{"DELETE", "/api/v1/posts/:id", authOnly},
	{"GET", "/api/v1/posts/:id/comments", public},
	{"POST", "/api/v1/posts/:id/comments", authOnly},
	{"PUT", "/api/v1/posts/comments/:id", authOnly},
	{"DELETE", "/api/v1/posts/comments/:id", authOnly},
	{"POST", "/api/v1/posts/:id/reaction", authOnly},

	// Open data surface.
	{"", "/api/v1/house/*", public},
	{"", "/api/v1/adm/*", public},
	{"", "/api/v1/transactions/*", public},
	{"", "/api/v1/commercial-areas/*", public},
	{"", "/api/v1/public/*", public},
	{"", "/api/v1/chatbot/*", public},
	{"GET", "/metrics", public},

	// Per-user features.
	{"", "/api/v1/interest-areas/*", authOnly},
	{"", "/api/v1/favorites/*", authOnly},

	// Administration.
	{"", "/api/v1/admin/*", adminOnly},
	{"", "/api/v1/management/*", adminOnly},
}

// Classify returns the access level for a request. Paths matching no rule
// default to Authenticated.
func Classify(method, path string) Access {
	for _, r := range rules {
		if r.method != "" && r.method != method {
			continue
		}
		if matchPattern(r.pattern, path) {
			return r.access
		}
	}

	return authOnly
}

func matchPattern(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	ts := strings.Split(strings.Trim(path, "/"), "/")

	for i, seg := range ps {
		if seg == "*" && i == len(ps)-1 {
			return len(ts) >= i
		}
		if i >= len(ts) {
			return false
		}
		if strings.HasPrefix(seg, ":") {
			continue
		}
		if seg != ts[i] {
			return false
		}
	}

	return len(ts) == len(ps)
}
