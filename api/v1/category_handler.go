package v1

import (
	"strconv"

	"github.com/venkatesh141/Ecom/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup, jwtAuth, adminOnly gin.HandlerFunc) {
	category := rg.Group("/category")
	{
		category.POST("/create", jwtAuth, adminOnly, h.Create)
		category.PUT("/update/:categoryId", jwtAuth, adminOnly, h.Update)
		category.GET("/get-all", h.GetAll)
		category.GET("/get-category-by-id/:categoryId", h.GetByID)
		category.DELETE("/delete/:categoryId", jwtAuth, adminOnly, h.Delete)
	}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "category name is required")
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "Category created successfully", Category: category})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		badRequest(c, "invalid category id")
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "category name is required")
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), categoryID, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "category updated successfully", Category: category})
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "successful", CategoryList: categories})
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		badRequest(c, "invalid category id")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "successful", Category: category})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		badRequest(c, "invalid category id")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), categoryID); err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "Category was deleted successfully"})
}
