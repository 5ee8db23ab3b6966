package errors

// Error codes returned in API responses
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeProductNotFound    = "PRODUCT_NOT_FOUND"
	CodeCartNotFound       = "CART_NOT_FOUND"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeEmailTaken         = "EMAIL_ALREADY_REGISTERED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAlreadyInWishlist  = "ALREADY_IN_WISHLIST"
)
