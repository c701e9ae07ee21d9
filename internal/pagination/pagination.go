package pagination

const (
	MinPageSize     = 5
	MaxPageSize     = 20
	DefaultPageSize = 5
)

// PageRequest is a clamped page window: page numbers start at 1 and the
// size is bounded to [MinPageSize, MaxPageSize].
type PageRequest struct {
	PageNumber int
	PageSize   int
}

func NewPageRequest(pageNumber, pageSize int) PageRequest {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PageRequest{PageNumber: pageNumber, PageSize: pageSize}
}

// Source is an ordered result set that can be counted and sliced. The
// caller applies all filtering and ordering before handing it over.
type Source[T any] interface {
	Count() (int64, error)
	Slice(offset, limit int) ([]T, error)
}

// FuncSource adapts a pair of closures, typically repository calls.
type FuncSource[T any] struct {
	CountFunc func() (int64, error)
	SliceFunc func(offset, limit int) ([]T, error)
}

func (s FuncSource[T]) Count() (int64, error) {
	return s.CountFunc()
}

func (s FuncSource[T]) Slice(offset, limit int) ([]T, error) {
	return s.SliceFunc(offset, limit)
}

// SliceSource serves an in-memory slice, bounds-checked.
type SliceSource[T any] []T

func (s SliceSource[T]) Count() (int64, error) {
	return int64(len(s)), nil
}

func (s SliceSource[T]) Slice(offset, limit int) ([]T, error) {
	if offset >= len(s) {
		return []T{}, nil
	}
	end := offset + limit
	if end > len(s) {
		end = len(s)
	}
	return s[offset:end], nil
}

type Page[T any] struct {
	Items       []T
	TotalCount  int64
	PageSize    int
	CurrentPage int
	TotalPages  int
}

func (p *Page[T]) HasPrevious() bool {
	return p.CurrentPage > 1
}

func (p *Page[T]) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// Paginate counts the full source once, then fetches the requested slice.
// A page number beyond the last page yields an empty item list but still
// reports the exact totals.
func Paginate[T any](src Source[T], req PageRequest) (*Page[T], error) {
	total, err := src.Count()
	if err != nil {
		return nil, err
	}
	items, err := src.Slice((req.PageNumber-1)*req.PageSize, req.PageSize)
	if err != nil {
		return nil, err
	}
	return &Page[T]{
		Items:       items,
		TotalCount:  total,
		PageSize:    req.PageSize,
		CurrentPage: req.PageNumber,
		TotalPages:  totalPages(total, req.PageSize),
	}, nil
}

// Empty is the page returned when a listing policy short-circuits the
// query entirely (e.g. a storefront listing without a category).
func Empty[T any](req PageRequest) *Page[T] {
	return &Page[T]{
		Items:       []T{},
		PageSize:    req.PageSize,
		CurrentPage: req.PageNumber,
	}
}

func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
