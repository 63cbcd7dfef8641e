package api

import "github.com/junianwoo/fyd-sub001/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid account credentials",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmailTaken.Error(),
		1101: "account not found",

		1200: store.ErrListingNotFound.Error(),
		1201: "unknown accepting status",

		1300: store.ErrSubscriptionNotFound.Error(),
		1301: "unable to geocode the given address",

		1400: store.ErrApplicationExists.Error(),
		1401: store.ErrApplicationNotFound.Error(),
		1402: store.ErrApplicationReviewed.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken      = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorListingNotFound = errorJSON(1200)
	errorUnknownStatus   = errorJSON(1201)

	errorSubscriptionNotFound = errorJSON(1300)
	errorGeocodeFailed        = errorJSON(1301)

	errorApplicationExists   = errorJSON(1400)
	errorApplicationNotFound = errorJSON(1401)
	errorApplicationReviewed = errorJSON(1402)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
