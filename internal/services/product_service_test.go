package services

import (
	"testing"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"
	"wechat_mall/internal/pagination"
	"wechat_mall/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	categories map[string]*models.Category
}

func (r *fakeCategoryRepo) GetByCategoryID(categoryID string) (*models.Category, error) {
	if c, ok := r.categories[categoryID]; ok {
		return c, nil
	}
	return nil, apperr.Newf(apperr.NotFound, "category_not_found", "category %s not found", categoryID)
}

func (r *fakeCategoryRepo) Exists(categoryID string) (bool, error) {
	_, ok := r.categories[categoryID]
	return ok, nil
}

func (r *fakeCategoryRepo) ListShown() ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		if c.IsShown && !c.IsDeleted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	if r.categories == nil {
		r.categories = map[string]*models.Category{}
	}
	r.categories[category.CategoryID] = category
	return nil
}

func (r *fakeCategoryRepo) Update(category *models.Category) error {
	r.categories[category.CategoryID] = category
	return nil
}

func (r *fakeCategoryRepo) SoftDelete(categoryID string) error {
	if c, ok := r.categories[categoryID]; ok {
		c.IsDeleted = true
	}
	return nil
}

// listingProductRepo records the filters the composer produces and pages
// a canned catalog.
type listingProductRepo struct {
	fakeProductRepo
	catalog    []models.Product
	lastFilter *repository.ProductFilter
	queries    int
}

func (r *listingProductRepo) Find(filter repository.ProductFilter, offset, limit int) ([]models.Product, error) {
	r.lastFilter = &filter
	r.queries++
	matched := r.match(filter)
	if offset >= len(matched) {
		return []models.Product{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *listingProductRepo) Count(filter repository.ProductFilter) (int64, error) {
	r.queries++
	return int64(len(r.match(filter))), nil
}

func (r *listingProductRepo) match(filter repository.ProductFilter) []models.Product {
	var out []models.Product
	for _, p := range r.catalog {
		if p.IsDeleted {
			continue
		}
		if filter.OnSaleOnly && !p.OnSale {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Sort == repository.SortRecommend && p.Recommend <= 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func catalogOf(n int, categoryID string) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{
			ProductID:  "P" + string(rune('A'+i%26)) + "0000000",
			CategoryID: categoryID,
			Price:      decimal.NewFromInt(int64(i + 1)),
			OnSale:     true,
		}
	}
	return products
}

func TestListProductsScenario(t *testing.T) {
	repo := &listingProductRepo{catalog: catalogOf(23, "C001")}
	svc := NewProductService(repo, &fakeCategoryRepo{})

	page, err := svc.ListProducts(ProductListParams{
		CategoryID: "C001",
		Sort:       repository.SortNone,
		Page:       pagination.NewPageRequest(1, 5),
	})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, int64(23), page.TotalCount)
	assert.Equal(t, 5, page.TotalPages)
	assert.False(t, page.HasPrevious())
	assert.True(t, page.HasNext())

	page5, err := svc.ListProducts(ProductListParams{
		CategoryID: "C001",
		Sort:       repository.SortNone,
		Page:       pagination.NewPageRequest(5, 5),
	})
	require.NoError(t, err)
	assert.Len(t, page5.Items, 3)
	assert.False(t, page5.HasNext())

	require.NotNil(t, repo.lastFilter)
	assert.True(t, repo.lastFilter.OnSaleOnly)
	assert.Equal(t, "C001", repo.lastFilter.CategoryID)
}

func TestListProductsInvalidSort(t *testing.T) {
	repo := &listingProductRepo{catalog: catalogOf(5, "C001")}
	svc := NewProductService(repo, &fakeCategoryRepo{})

	_, err := svc.ListProducts(ProductListParams{
		CategoryID: "C001",
		Sort:       repository.ProductSort(99),
		Page:       pagination.NewPageRequest(1, 5),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.InvalidSort))
	assert.Zero(t, repo.queries, "no query may run for an invalid sort")
}

func TestListProductsCategoryRequired(t *testing.T) {
	repo := &listingProductRepo{catalog: catalogOf(10, "C001")}
	svc := NewProductService(repo, &fakeCategoryRepo{})

	page, err := svc.ListProducts(ProductListParams{
		Sort:            repository.SortNone,
		RequireCategory: true,
		Page:            pagination.NewPageRequest(1, 5),
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Zero(t, repo.queries, "the catalog must not be queried without a category")
}

func TestListProductsRecommendFiltersZeroWeight(t *testing.T) {
	catalog := catalogOf(4, "C001")
	catalog[1].Recommend = 2
	catalog[3].Recommend = 1
	repo := &listingProductRepo{catalog: catalog}
	svc := NewProductService(repo, &fakeCategoryRepo{})

	page, err := svc.ListProducts(ProductListParams{
		CategoryID: "C001",
		Sort:       repository.SortRecommend,
		Page:       pagination.NewPageRequest(1, 5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
}

func TestGetProductOffSaleHidden(t *testing.T) {
	repo := &listingProductRepo{}
	repo.products = map[string]*models.Product{
		"P000000001": {ProductID: "P000000001", OnSale: false},
	}
	svc := NewProductService(repo, &fakeCategoryRepo{})

	_, err := svc.GetProduct("P000000001")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestCreateProductChecksCategoryAndConflict(t *testing.T) {
	repo := &listingProductRepo{}
	categories := &fakeCategoryRepo{categories: map[string]*models.Category{
		"C001": {CategoryID: "C001", Name: "Tea", IsShown: true},
	}}
	svc := NewProductService(repo, categories)

	_, err := svc.CreateProduct(ProductCreateRequest{ProductID: "P000000001", CategoryID: "C404", Name: "x"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	created, err := svc.CreateProduct(ProductCreateRequest{
		ProductID:  "P000000001",
		CategoryID: "C001",
		Name:       "Green tea",
		Price:      decimal.RequireFromString("10.00"),
		OnSale:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "P000000001", created.ProductID)

	_, err = svc.CreateProduct(ProductCreateRequest{ProductID: "P000000001", CategoryID: "C001", Name: "dup"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestPatchProductPartialUpdate(t *testing.T) {
	repo := &listingProductRepo{}
	repo.products = map[string]*models.Product{
		"P000000001": {ProductID: "P000000001", CategoryID: "C001", Name: "Green tea", Price: decimal.RequireFromString("10.00"), OnSale: true},
	}
	svc := NewProductService(repo, &fakeCategoryRepo{categories: map[string]*models.Category{
		"C001": {CategoryID: "C001"},
	}})

	newPrice := decimal.RequireFromString("12.00")
	updated, err := svc.PatchProduct("P000000001", ProductPatch{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Green tea", updated.Name)
	assert.True(t, updated.OnSale)
}
