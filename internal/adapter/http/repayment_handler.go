package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"microfin-ledger/internal/usecase/repayment"
)

type RepaymentHandler struct {
	uc     *repayment.Usecase
	logger *zap.Logger
}

func NewRepaymentHandler(uc *repayment.Usecase, logger *zap.Logger) *RepaymentHandler {
	return &RepaymentHandler{uc: uc, logger: logger}
}

type applyPaymentReq struct {
	AmountPaid  decimal.Decimal `json:"amount_paid"   validate:"required"`
	Method      string          `json:"method"        validate:"required,oneof=mobile-money cash bank cheque"`
	PaymentDate string          `json:"payment_date"  validate:"omitempty,datetime=2006-01-02"`
}

func (h *RepaymentHandler) ApplyPayment(c echo.Context) error {
	installmentID := c.Param("installment_id")
	if installmentID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing installment_id path param"})
	}
	var req applyPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var paymentDate time.Time
	if req.PaymentDate != "" {
		var err error
		paymentDate, err = time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: []FieldError{{Field: "PaymentDate", Message: "must be a date in YYYY-MM-DD format"}},
			})
		}
	}

	dto, err := h.uc.ApplyPayment(c.Request().Context(), installmentID, repayment.ApplyPaymentInput{
		AmountPaid:  req.AmountPaid,
		Method:      req.Method,
		PaymentDate: paymentDate,
	})
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) ListInstallments(c echo.Context) error {
	out, err := h.uc.ListByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, out)
}
