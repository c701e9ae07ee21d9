package handlers

import (
	"net/http"

	"wechat_mall/internal/pagination"
	"wechat_mall/internal/repository"
	"wechat_mall/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products services.ProductService
}

func NewProductHandler(products services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type productListQuery struct {
	CategoryID string `form:"categoryId"`
	OrderBy    int    `form:"orderBy"`
	PageNumber int    `form:"pageNumber"`
	PageSize   int    `form:"pageSize"`
}

// ListProducts is the admin catalog listing; a category is optional here.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var q productListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_query", "message": "invalid query parameters"})
		return
	}
	page, err := h.products.ListProducts(services.ProductListParams{
		CategoryID: q.CategoryID,
		Sort:       repository.ProductSort(q.OrderBy),
		Page:       pagination.NewPageRequest(q.PageNumber, q.PageSize),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	writePagination(c, page)
	c.JSON(http.StatusOK, page.Items)
}

// ListCategoryProducts is the storefront listing: browsing without a
// category is answered with an empty page, never the whole catalog.
func (h *ProductHandler) ListCategoryProducts(c *gin.Context) {
	var q productListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_query", "message": "invalid query parameters"})
		return
	}
	page, err := h.products.ListProducts(services.ProductListParams{
		CategoryID:      c.Param("categoryID"),
		Sort:            repository.ProductSort(q.OrderBy),
		RequireCategory: true,
		Page:            pagination.NewPageRequest(q.PageNumber, q.PageSize),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	writePagination(c, page)
	c.JSON(http.StatusOK, page.Items)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.products.GetProduct(c.Param("productID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	product, err := h.products.CreateProduct(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req services.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	product, err := h.products.UpdateProduct(c.Param("productID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) PatchProduct(c *gin.Context) {
	var patch services.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	product, err := h.products.PatchProduct(c.Param("productID"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
