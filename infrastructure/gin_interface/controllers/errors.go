package controllers

import (
	"errors"
	"net/http"

	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/gin-gonic/gin"
)

// abortWithDomainError maps the pipeline's error taxonomy to HTTP statuses.
// Errors are reported verbatim; nothing is swallowed or retried here.
func abortWithDomainError(c *gin.Context, err error) {
	var (
		validationErr  *domain.ValidationError
		unsupportedErr *domain.UnsupportedPlatformError
		providerErr    *domain.ProviderError
		timeoutErr     *domain.ProviderTimeoutError
	)
	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &unsupportedErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": unsupportedErr.Error()})
	case errors.As(err, &timeoutErr):
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{"error": timeoutErr.Error()})
	case errors.As(err, &providerErr):
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": providerErr.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
