package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cloudreel-server/utils/platformerrors"
)

// ErrorResponse is the wire shape of every failure.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError maps a domain error to an HTTP response. Store and
// infrastructure failures are logged with full detail but answered with the
// generic message; validation and authorization failures keep their own
// message since they describe the caller's input.
func HandleError(reqCtx *gin.Context, err error, genericMessage string, log zerolog.Logger) {
	domainErr := platformerrors.GetPlatformError(err)
	if domainErr == nil {
		log.Error().Err(err).Msg(genericMessage)
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error: genericMessage,
		})
		return
	}

	platformerrors.LogError(log, domainErr)

	message := genericMessage
	switch domainErr.GetErrorType() {
	case platformerrors.ErrorTypeValidation, platformerrors.ErrorTypeUnauthorized, platformerrors.ErrorTypeNotFound:
		if domainErr.Message != "" {
			message = domainErr.Message
		}
	}

	reqCtx.AbortWithStatusJSON(platformerrors.ErrorTypeToHTTPStatus(domainErr.GetErrorType()), ErrorResponse{
		Error:     message,
		Code:      domainErr.GetUUID(),
		RequestID: domainErr.GetRequestID(),
	})
}

// Unauthorized writes the standard authentication rejection.
func Unauthorized(reqCtx *gin.Context) {
	reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Error: "Unauthorized",
	})
}
