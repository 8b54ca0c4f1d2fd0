package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsledger/ledgerd/internal/apperrors"
	"github.com/opsledger/ledgerd/internal/core/services"
	"github.com/opsledger/ledgerd/internal/middleware"
)

// respondError maps a service error to its HTTP status and body. Typed errors
// carry their structured detail alongside the message so callers never have
// to parse it back out of the string.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var unbalanced *apperrors.UnbalancedEntryError
	var unknownAccount *apperrors.UnknownAccountError
	var invalidTransition *apperrors.InvalidTransitionError
	var overpayment *apperrors.OverpaymentError
	var amountMismatch *apperrors.AmountMismatchError

	switch {
	case errors.As(err, &unbalanced):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"detail": gin.H{
				"totalDebit":  unbalanced.TotalDebit,
				"totalCredit": unbalanced.TotalCredit,
			},
		})
	case errors.As(err, &unknownAccount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  err.Error(),
			"detail": gin.H{"accountCode": unknownAccount.Code},
		})
	case errors.As(err, &invalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
			"detail": gin.H{
				"from": invalidTransition.From,
				"to":   invalidTransition.To,
			},
		})
	case errors.As(err, &overpayment):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
			"detail": gin.H{
				"outstanding": overpayment.Outstanding,
				"attempted":   overpayment.Attempted,
			},
		})
	case errors.As(err, &amountMismatch):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
			"detail": gin.H{
				"expected": amountMismatch.Expected,
				"actual":   amountMismatch.Actual,
			},
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicateCode),
		errors.Is(err, apperrors.ErrDuplicateReference),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrAlreadyReconciled),
		errors.Is(err, apperrors.ErrAllocationExhausted),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidHierarchy),
		errors.Is(err, apperrors.ErrMalformedLine),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, services.ErrInactiveAccount),
		errors.Is(err, services.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// respondBindError reports a request body or query that failed binding.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
