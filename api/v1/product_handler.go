package v1

import (
	"strconv"

	"github.com/venkatesh141/Ecom/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup, jwtAuth, adminOnly gin.HandlerFunc) {
	product := rg.Group("/product")
	{
		product.POST("/create", jwtAuth, adminOnly, h.Create)
		product.PUT("/update/:productId", jwtAuth, adminOnly, h.Update)
		product.DELETE("/delete/:productId", jwtAuth, adminOnly, h.Delete)
		product.GET("/get-by-product-id/:productId", h.GetByID)
		product.GET("/get-all", h.GetAll)
		product.GET("/get-by-category-id/:categoryId", h.GetByCategory)
		product.GET("/search", h.Search)
	}
}

// parseProductForm reads the multipart form shared by create and update.
// The image part is optional.
func parseProductForm(c *gin.Context) (service.ProductInput, bool) {
	var in service.ProductInput

	categoryID, _ := strconv.ParseInt(c.PostForm("categoryId"), 10, 64)
	in.CategoryID = categoryID
	in.Name = c.PostForm("name")
	in.Description = c.PostForm("description")

	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			badRequest(c, "invalid price")
			return in, false
		}
		in.Price = price
	}

	fileHeader, err := c.FormFile("image")
	if err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			badRequest(c, "unable to read image")
			return in, false
		}
		// Closed when the request body is released; the upload consumes it
		// within this request.
		in.Image = file
		in.ImageName = fileHeader.Filename
		in.ImageContentType = fileHeader.Header.Get("Content-Type")
	}

	return in, true
}

func (h *ProductHandler) Create(c *gin.Context) {
	in, okForm := parseProductForm(c)
	if !okForm {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "Product successfully created", Product: product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		badRequest(c, "invalid product id")
		return
	}
	in, okForm := parseProductForm(c)
	if !okForm {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), productID, in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "Product updated successfully", Product: product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		badRequest(c, "invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), productID); err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "Product deleted successfully"})
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		badRequest(c, "invalid product id")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "successful", Product: product})
}

func (h *ProductHandler) GetAll(c *gin.Context) {
	products, err := h.productService.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "successful", ProductList: products})
}

func (h *ProductHandler) GetByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		badRequest(c, "invalid category id")
		return
	}

	products, err := h.productService.GetByCategory(c.Request.Context(), categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "successful", ProductList: products})
}

func (h *ProductHandler) Search(c *gin.Context) {
	products, err := h.productService.Search(c.Request.Context(), c.Query("value"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "successful", ProductList: products})
}
