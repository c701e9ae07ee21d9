package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intSource(n int) SliceSource[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return SliceSource[int](items)
}

func TestNewPageRequestClamps(t *testing.T) {
	req := NewPageRequest(0, 0)
	assert.Equal(t, 1, req.PageNumber)
	assert.Equal(t, MinPageSize, req.PageSize)

	req = NewPageRequest(-3, 100)
	assert.Equal(t, 1, req.PageNumber)
	assert.Equal(t, MaxPageSize, req.PageSize)

	req = NewPageRequest(4, 10)
	assert.Equal(t, 4, req.PageNumber)
	assert.Equal(t, 10, req.PageSize)
}

func TestPaginateScenario23Items(t *testing.T) {
	src := intSource(23)

	page1, err := Paginate[int](src, NewPageRequest(1, 5))
	require.NoError(t, err)
	assert.Len(t, page1.Items, 5)
	assert.Equal(t, int64(23), page1.TotalCount)
	assert.Equal(t, 5, page1.TotalPages)
	assert.False(t, page1.HasPrevious())
	assert.True(t, page1.HasNext())

	page5, err := Paginate[int](src, NewPageRequest(5, 5))
	require.NoError(t, err)
	assert.Len(t, page5.Items, 3)
	assert.True(t, page5.HasPrevious())
	assert.False(t, page5.HasNext())
}

func TestPaginateItemCountsSumToTotal(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 23, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			src := intSource(n)
			first, err := Paginate[int](src, NewPageRequest(1, 5))
			require.NoError(t, err)

			seen := 0
			for p := 1; p <= first.TotalPages; p++ {
				page, err := Paginate[int](src, NewPageRequest(p, 5))
				require.NoError(t, err)
				seen += len(page.Items)
			}
			assert.Equal(t, n, seen)
			assert.Equal(t, (n+4)/5, first.TotalPages)
		})
	}
}

func TestPaginateEmptySource(t *testing.T) {
	page, err := Paginate[int](intSource(0), NewPageRequest(1, 5))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasPrevious())
	assert.False(t, page.HasNext())
}

func TestPaginatePageBeyondRange(t *testing.T) {
	page, err := Paginate[int](intSource(7), NewPageRequest(9, 5))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(7), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPaginateIdempotent(t *testing.T) {
	src := intSource(23)
	req := NewPageRequest(2, 5)
	a, err := Paginate[int](src, req)
	require.NoError(t, err)
	b, err := Paginate[int](src, req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmptyPage(t *testing.T) {
	page := Empty[int](NewPageRequest(3, 5))
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 3, page.CurrentPage)
	assert.False(t, page.HasNext())
}
