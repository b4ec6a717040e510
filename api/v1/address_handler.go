package v1

import (
	"github.com/venkatesh141/Ecom/api/middleware"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/internal/service"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressService *service.AddressService
}

func NewAddressHandler(addressService *service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (h *AddressHandler) RegisterRoutes(rg *gin.RouterGroup, jwtAuth gin.HandlerFunc) {
	address := rg.Group("/address", jwtAuth)
	{
		address.POST("/save", h.Save)
	}
}

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Save creates or replaces the caller's single address.
func (h *AddressHandler) Save(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid address payload")
		return
	}

	userID := middleware.CurrentUserID(c)
	addr, err := h.addressService.SaveAndUpdate(c.Request.Context(), userID, &model.Address{
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "Address successfully updated", Address: addr})
}
