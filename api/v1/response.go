package v1

import (
	"net/http"

	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope every endpoint answers with. Unset fields are
// omitted.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`

	Token string `json:"token,omitempty"`
	Role  string `json:"role,omitempty"`

	User     *model.User   `json:"user,omitempty"`
	UserList []*model.User `json:"userList,omitempty"`

	Category     *model.Category   `json:"category,omitempty"`
	CategoryList []*model.Category `json:"categoryList,omitempty"`

	Product     *model.Product   `json:"product,omitempty"`
	ProductList []*model.Product `json:"productList,omitempty"`

	Address *model.Address `json:"address,omitempty"`

	OrderItemList []*model.OrderItem `json:"orderItemList,omitempty"`
	TotalPage     int                `json:"totalPage,omitempty"`
	TotalElement  int64              `json:"totalElement,omitempty"`
}

// ok writes a 200 envelope.
func ok(c *gin.Context, resp Response) {
	resp.Status = http.StatusOK
	c.JSON(http.StatusOK, resp)
}

// fail maps a service error onto the envelope, carrying the HTTP status the
// domain failure declares.
func fail(c *gin.Context, err error) {
	ae := e.AsAppError(err)
	c.JSON(ae.Status, Response{Status: ae.Status, Message: ae.Message})
}

// badRequest writes a 400 envelope for malformed transport input.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Status: http.StatusBadRequest, Message: msg})
}
