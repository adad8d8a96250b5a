// Package paging sanitizes caller-supplied skip/limit pagination values
// before any query is constructed. Values arrive from untrusted query
// strings, so everything is floored, defaulted, and clamped here rather
// than at each call site.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

const (
	// DefaultLimit is the page size used when the caller omits limit or
	// supplies something unusable.
	DefaultLimit = 20

	// MaxLimit caps a single page. Requests above the cap are clamped,
	// not rejected, to keep result sets bounded.
	MaxLimit = 100
)

// Page holds sanitized pagination values ready for Find options.
type Page struct {
	Skip  int64
	Limit int64
}

// Clamp normalizes raw skip/limit values: negative skip floors to zero,
// non-positive limit falls back to DefaultLimit, and limit is capped at
// MaxLimit.
func Clamp(skip, limit int64) Page {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Skip: skip, Limit: limit}
}

// FromRequest parses skip and limit from the request query string and
// returns the clamped page. Unparseable values behave like absent ones.
func FromRequest(r *http.Request) Page {
	return Clamp(parseInt(query.Get(r, "skip")), parseInt(query.Get(r, "limit")))
}

func parseInt(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
