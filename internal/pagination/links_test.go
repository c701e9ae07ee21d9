package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageAt(current, totalPages int) *Page[int] {
	return &Page[int]{
		TotalCount:  int64(totalPages * 5),
		PageSize:    5,
		CurrentPage: current,
		TotalPages:  totalPages,
	}
}

func TestBuildLinksPreservesFilters(t *testing.T) {
	query := url.Values{
		"categoryId": {"C001"},
		"orderBy":    {"2"},
		"pageNumber": {"2"},
		"pageSize":   {"5"},
	}
	links := BuildLinks("/api/products", query, pageAt(2, 5))
	require.NotNil(t, links.Previous)
	require.NotNil(t, links.Next)

	prev, err := url.Parse(*links.Previous)
	require.NoError(t, err)
	assert.Equal(t, "/api/products", prev.Path)
	assert.Equal(t, "C001", prev.Query().Get("categoryId"))
	assert.Equal(t, "2", prev.Query().Get("orderBy"))
	assert.Equal(t, "1", prev.Query().Get("pageNumber"))
	assert.Equal(t, "5", prev.Query().Get("pageSize"))

	next, err := url.Parse(*links.Next)
	require.NoError(t, err)
	assert.Equal(t, "3", next.Query().Get("pageNumber"))
	assert.Equal(t, "C001", next.Query().Get("categoryId"))
}

func TestBuildLinksBoundaries(t *testing.T) {
	links := BuildLinks("/api/products", url.Values{}, pageAt(1, 3))
	assert.Nil(t, links.Previous)
	assert.NotNil(t, links.Next)

	links = BuildLinks("/api/products", url.Values{}, pageAt(3, 3))
	assert.NotNil(t, links.Previous)
	assert.Nil(t, links.Next)

	links = BuildLinks("/api/products", url.Values{}, &Page[int]{CurrentPage: 1, TotalPages: 0, PageSize: 5})
	assert.Nil(t, links.Previous)
	assert.Nil(t, links.Next)
}

// Following next from page p and then previous must land back on the
// request that produced p.
func TestLinkRoundTrip(t *testing.T) {
	query := url.Values{
		"categoryId": {"C001"},
		"pageNumber": {"2"},
		"pageSize":   {"5"},
	}
	origin := BuildLinks("/api/products", query, pageAt(2, 5))
	require.NotNil(t, origin.Next)

	nextURL, err := url.Parse(*origin.Next)
	require.NoError(t, err)
	fromNext := BuildLinks(nextURL.Path, nextURL.Query(), pageAt(3, 5))
	require.NotNil(t, fromNext.Previous)

	backURL, err := url.Parse(*fromNext.Previous)
	require.NoError(t, err)
	assert.Equal(t, "2", backURL.Query().Get("pageNumber"))
	assert.Equal(t, "5", backURL.Query().Get("pageSize"))
	assert.Equal(t, "C001", backURL.Query().Get("categoryId"))
}

func TestPageMetadata(t *testing.T) {
	meta := PageMetadata("/api/orders", url.Values{}, pageAt(2, 4))
	assert.Equal(t, int64(20), meta.TotalCount)
	assert.Equal(t, 5, meta.PageSize)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 4, meta.TotalPages)
	assert.NotNil(t, meta.PreviousPageLink)
	assert.NotNil(t, meta.NextPageLink)
}
