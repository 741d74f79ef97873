// Package pagination builds the canonical listing URLs and the sliding
// window of page links rendered under every job-role list.
package pagination

import (
	"fmt"
	"net/url"
	"strings"

	"jobportal/internal/models"
)

// windowSize is how many numbered page links are shown at most.
const windowSize = 5

// Page is one numbered link in the window.
type Page struct {
	Page      int
	URL       string
	IsCurrent bool
}

// Window is the full set of navigation links for a listing page.
// Previous is nil exactly when the current page is the first, Next
// exactly when it is the last.
type Window struct {
	First    string
	Previous *string
	Next     *string
	Last     string
	Pages    []Page
}

// encodeComponent percent-encodes a query value the way browsers expect
// in hrefs: like url.QueryEscape but with spaces as %20 rather than +.
func encodeComponent(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// BuildSearchQueryString renders the non-empty filters as "&key=value"
// pairs in a fixed key order, ready to append to a page URL. Values are
// trimmed first; an all-blank params produces "".
func BuildSearchQueryString(params models.SearchParams) string {
	pairs := []struct{ key, value string }{
		{"search", params.Search},
		{"capability", params.Capability},
		{"location", params.Location},
		{"band", params.Band},
		{"status", params.Status},
	}

	var b strings.Builder
	for _, p := range pairs {
		v := strings.TrimSpace(p.value)
		if v == "" {
			continue
		}
		b.WriteString("&")
		b.WriteString(p.key)
		b.WriteString("=")
		b.WriteString(encodeComponent(v))
	}
	return b.String()
}

// BuildPaginationURL builds the URL for one listing page. Page and limit
// are always present, even at their defaults, so every generated href is
// fully explicit.
func BuildPaginationURL(basePath string, page, limit int, params models.SearchParams) string {
	return fmt.Sprintf("%s?page=%d&limit=%d%s",
		basePath, page, limit, BuildSearchQueryString(params))
}

// BuildPaginationURLs computes the navigation window for a listing:
// first/previous/next/last shortcuts plus at most five numbered links
// centred on the current page and clamped to [1, totalPages]. Exactly
// one numbered link is marked current.
func BuildPaginationURLs(basePath string, currentPage, totalPages, limit int, params models.SearchParams) Window {
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	pageURL := func(p int) string {
		return BuildPaginationURL(basePath, p, limit, params)
	}

	w := Window{
		First: pageURL(1),
		Last:  pageURL(totalPages),
	}
	if currentPage > 1 {
		prev := pageURL(currentPage - 1)
		w.Previous = &prev
	}
	if currentPage < totalPages {
		next := pageURL(currentPage + 1)
		w.Next = &next
	}

	start, end := 1, totalPages
	if totalPages > windowSize {
		start = currentPage - windowSize/2
		if start < 1 {
			start = 1
		}
		end = start + windowSize - 1
		if end > totalPages {
			end = totalPages
			start = end - windowSize + 1
		}
	}

	for p := start; p <= end; p++ {
		w.Pages = append(w.Pages, Page{
			Page:      p,
			URL:       pageURL(p),
			IsCurrent: p == currentPage,
		})
	}
	return w
}
