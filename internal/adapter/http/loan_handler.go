package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"microfin-ledger/internal/usecase/loan"
)

type LoanHandler struct {
	uc     *loan.Usecase
	logger *zap.Logger
}

func NewLoanHandler(uc *loan.Usecase, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{uc: uc, logger: logger}
}

type createLoanReq struct {
	ClientID      string          `json:"client_id"       validate:"required,uuidref"`
	BranchID      uint64          `json:"branch_id"       validate:"required"`
	Type          string          `json:"type"            validate:"required,oneof=salary personal business"`
	Principal     decimal.Decimal `json:"principal"       validate:"required"`
	TenureMonths  int             `json:"tenure_months"   validate:"required,gt=0"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		ClientID:      req.ClientID,
		BranchID:      req.BranchID,
		Type:          req.Type,
		Principal:     req.Principal,
		TenureMonths:  req.TenureMonths,
		InterestRate:  req.InterestRate,
		ProcessingFee: req.ProcessingFee,
	})
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	branchID, _ := strconv.ParseUint(c.QueryParam("branch_id"), 10, 64)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	out, err := h.uc.List(c.Request().Context(), branchID, page, pageSize)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req loan.UpdateLoanInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("loan_id"), req)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_id")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
