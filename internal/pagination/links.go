package pagination

import (
	"net/url"
	"strconv"
)

const Header = "X-Pagination"

// Metadata is the JSON payload of the X-Pagination response header.
type Metadata struct {
	TotalCount       int64   `json:"totalCount"`
	PageSize         int     `json:"pageSize"`
	CurrentPage      int     `json:"currentPage"`
	TotalPages       int     `json:"totalPages"`
	PreviousPageLink *string `json:"previousPageLink"`
	NextPageLink     *string `json:"nextPageLink"`
}

type Links struct {
	Previous *string
	Next     *string
}

// BuildLinks derives the previous/next page URIs for the current page.
// Every incoming query field is carried over verbatim; only pageNumber
// moves, and pageSize is pinned to the clamped value actually used, so a
// client following a link gets the same view shifted by one page.
func BuildLinks[T any](path string, query url.Values, page *Page[T]) Links {
	var links Links
	if page.HasPrevious() {
		links.Previous = pageURL(path, query, page.CurrentPage-1, page.PageSize)
	}
	if page.HasNext() {
		links.Next = pageURL(path, query, page.CurrentPage+1, page.PageSize)
	}
	return links
}

// PageMetadata assembles the header payload for a page and its links.
func PageMetadata[T any](path string, query url.Values, page *Page[T]) Metadata {
	links := BuildLinks(path, query, page)
	return Metadata{
		TotalCount:       page.TotalCount,
		PageSize:         page.PageSize,
		CurrentPage:      page.CurrentPage,
		TotalPages:       page.TotalPages,
		PreviousPageLink: links.Previous,
		NextPageLink:     links.Next,
	}
}

func pageURL(path string, query url.Values, pageNumber, pageSize int) *string {
	q := url.Values{}
	for k, vs := range query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("pageNumber", strconv.Itoa(pageNumber))
	q.Set("pageSize", strconv.Itoa(pageSize))
	u := path + "?" + q.Encode()
	return &u
}
