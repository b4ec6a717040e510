package e

// Business error codes.
const (
	SUCCESS        = 0
	ERROR          = 1
	INVALID_PARAMS = 2

	ERROR_AUTH_CHECK_TOKEN_FAIL    = 10001
	ERROR_AUTH_CHECK_TOKEN_TIMEOUT = 10002
	ERROR_AUTH_TOKEN               = 10003
	ERROR_AUTH                     = 10004
	ERROR_FORBIDDEN                = 10005

	ERROR_USER_EXISTS     = 20001
	ERROR_USER_NOT_EXISTS = 20002
	ERROR_PASSWORD        = 20003

	ERROR_CATEGORY_NOT_EXISTS   = 30001
	ERROR_PRODUCT_NOT_EXISTS    = 30002
	ERROR_ORDER_ITEM_NOT_EXISTS = 30003
	ERROR_NO_ORDER_FOUND        = 30004
)

var MsgFlags = map[int]string{
	SUCCESS:        "success",
	ERROR:          "internal error",
	INVALID_PARAMS: "invalid request parameters",

	ERROR_AUTH_CHECK_TOKEN_FAIL:    "token verification failed",
	ERROR_AUTH_CHECK_TOKEN_TIMEOUT: "token expired",
	ERROR_AUTH_TOKEN:               "token generation failed",
	ERROR_AUTH:                     "authentication required",
	ERROR_FORBIDDEN:                "insufficient privileges",

	ERROR_USER_EXISTS:     "user already exists",
	ERROR_USER_NOT_EXISTS: "user not found",
	ERROR_PASSWORD:        "wrong password",

	ERROR_CATEGORY_NOT_EXISTS:   "category not found",
	ERROR_PRODUCT_NOT_EXISTS:    "product not found",
	ERROR_ORDER_ITEM_NOT_EXISTS: "order item not found",
	ERROR_NO_ORDER_FOUND:        "no order found",
}

func GetMsg(code int) string {
	msg, ok := MsgFlags[code]
	if ok {
		return msg
	}
	return MsgFlags[ERROR]
}
