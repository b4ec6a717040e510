package v1

import (
	"strconv"
	"time"

	"github.com/venkatesh141/Ecom/api/middleware"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup, jwtAuth, adminOnly gin.HandlerFunc) {
	order := rg.Group("/order", jwtAuth)
	{
		order.POST("/create", h.PlaceOrder)
		order.PUT("/update-item-status/:orderItemId", adminOnly, h.UpdateItemStatus)
		order.GET("/filter", adminOnly, h.Filter)
	}
}

type orderItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int32 `json:"quantity" binding:"required"`
}

type orderRequest struct {
	Items      []orderItemRequest `json:"items" binding:"required"`
	TotalPrice *decimal.Decimal   `json:"totalPrice"`
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid order payload")
		return
	}

	lineItems := make([]service.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, service.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	userID := middleware.CurrentUserID(c)
	if _, err := h.orderService.PlaceOrder(c.Request.Context(), userID, lineItems, req.TotalPrice); err != nil {
		fail(c, err)
		return
	}

	ok(c, Response{Message: "Order was successfully placed"})
}

func (h *OrderHandler) UpdateItemStatus(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("orderItemId"), 10, 64)
	if err != nil {
		badRequest(c, "invalid order item id")
		return
	}
	status := c.Query("status")
	if status == "" {
		badRequest(c, "status query parameter is required")
		return
	}

	if err := h.orderService.UpdateItemStatus(c.Request.Context(), itemID, status); err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "Order status updated successfully"})
}

// Filter accepts optional startDate, endDate (ISO-8601 date-time), status and
// itemId parameters; page defaults to 0 and size to 1000.
func (h *OrderHandler) Filter(c *gin.Context) {
	var params service.OrderItemFilterParams

	if s := c.Query("status"); s != "" {
		status, err := model.ParseOrderStatus(s)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		params.Status = &status
	}

	startDate, okParse := parseDateTime(c, "startDate")
	if !okParse {
		return
	}
	params.StartDate = startDate

	endDate, okParse := parseDateTime(c, "endDate")
	if !okParse {
		return
	}
	params.EndDate = endDate

	if s := c.Query("itemId"); s != "" {
		itemID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			badRequest(c, "invalid item id")
			return
		}
		params.ItemID = &itemID
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		badRequest(c, "page must be a non-negative integer")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "1000"))
	if err != nil || size < 1 {
		badRequest(c, "size must be a positive integer")
		return
	}
	params.Page = page
	params.Size = size

	result, err := h.orderService.FilterItems(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, Response{
		OrderItemList: result.Items,
		TotalPage:     result.TotalPage,
		TotalElement:  result.TotalElement,
	})
}

// parseDateTime reads an optional ISO-8601 date-time query parameter,
// accepting a seconds-less form as well.
func parseDateTime(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	badRequest(c, name+" must be an ISO-8601 date-time")
	return nil, false
}
