package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoplist/internal/adapter/http/middleware"
	"shoplist/internal/adapter/http/validation"
	"shoplist/internal/core/domain"
	"shoplist/pkg/apierrors"
)

const maxBodyBytes = 64 << 10

// domainErrors maps sentinel errors to their status and message key.
var domainErrors = []struct {
	err    error
	status int
	msgKey string
}{
	{domain.ErrItemNotFound, http.StatusNotFound, apierrors.MsgItemNotFound},
	{domain.ErrCategoryNotFound, http.StatusNotFound, apierrors.MsgCategoryNotFound},
	{domain.ErrCategoryNameTaken, http.StatusConflict, apierrors.MsgCategoryNameTaken},
	{domain.ErrCategoryInUse, http.StatusConflict, apierrors.MsgCategoryInUse},
}

// writeError renders err. Anything not part of the domain taxonomy is logged
// and answered with 500 and failKey.
func writeError(c *gin.Context, err error, failKey string, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateFieldError(http.StatusBadRequest, vErr.Field, vErr.Reason, vErr.Params, lang),
		)
		return
	}

	for _, known := range domainErrors {
		if errors.Is(err, known.err) {
			c.JSON(known.status, apierrors.CreateError(known.status, known.msgKey, lang))
			return
		}
	}

	zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	_ = c.Error(err)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
	)
}

// pathID returns the :id parameter, answering 400 when it is not a UUID.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !validation.IsID(id) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateFieldError(http.StatusBadRequest, "id", apierrors.MsgInvalidID, nil, middleware.GetLang(c)),
		)
		return "", false
	}
	return id, true
}

// readObject reads the request body as a JSON object keyed by field name.
func readObject(c *gin.Context) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.NewValidationError("body", domain.ReasonMalformedBody)
	}
	return validation.DecodeObject(body)
}
