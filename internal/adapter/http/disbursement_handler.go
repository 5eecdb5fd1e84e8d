package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"microfin-ledger/internal/usecase/disbursement"
)

type DisbursementHandler struct {
	uc     *disbursement.Usecase
	logger *zap.Logger
}

func NewDisbursementHandler(uc *disbursement.Usecase, logger *zap.Logger) *DisbursementHandler {
	return &DisbursementHandler{uc: uc, logger: logger}
}

type disburseReq struct {
	Kind      string `json:"kind"        validate:"required,oneof=mobile bank person"`
	Status    string `json:"status"      validate:"omitempty,oneof=pending disbursed"`
	ValueDate string `json:"value_date"  validate:"omitempty,datetime=2006-01-02"`
	BranchID  uint64 `json:"branch_id"   validate:"required"`

	Provider      string `json:"provider,omitempty"`
	MobileNumber  string `json:"mobile_number,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`

	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`

	RecipientName    string `json:"recipient_name,omitempty"`
	SignedDocumentID string `json:"signed_document_id,omitempty" validate:"omitempty,uuidref"`
}

func (h *DisbursementHandler) Disburse(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req disburseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var valueDate time.Time
	if req.ValueDate != "" {
		var err error
		valueDate, err = time.Parse("2006-01-02", req.ValueDate)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: []FieldError{{Field: "ValueDate", Message: "must be a date in YYYY-MM-DD format"}},
			})
		}
	}

	dto, err := h.uc.Disburse(c.Request().Context(), loanID, disbursement.DisburseInput{
		Kind:             req.Kind,
		Status:           req.Status,
		ValueDate:        valueDate,
		BranchID:         req.BranchID,
		Provider:         req.Provider,
		MobileNumber:     req.MobileNumber,
		TransactionID:    req.TransactionID,
		BankName:         req.BankName,
		AccountNumber:    req.AccountNumber,
		RecipientName:    req.RecipientName,
		SignedDocumentID: req.SignedDocumentID,
	})
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type confirmReq struct {
	TransactionID    string `json:"transaction_id,omitempty"`
	SignedDocumentID string `json:"signed_document_id,omitempty" validate:"omitempty,uuidref"`
	RecipientName    string `json:"recipient_name,omitempty"`
	BankName         string `json:"bank_name,omitempty"`
	AccountNumber    string `json:"account_number,omitempty"`
}

func (h *DisbursementHandler) Confirm(c echo.Context) error {
	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Confirm(c.Request().Context(), c.Param("disbursement_id"), disbursement.ConfirmInput{
		TransactionID:    req.TransactionID,
		SignedDocumentID: req.SignedDocumentID,
		RecipientName:    req.RecipientName,
		BankName:         req.BankName,
		AccountNumber:    req.AccountNumber,
	})
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DisbursementHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("disbursement_id"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto)
}
