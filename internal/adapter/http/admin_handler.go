package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanuc "nftlend-backend/internal/usecase/loan"
)

// AdminHandler carries the operations restricted to the administrative
// principal. Authorization is identity equality, enforced in the usecase.
type AdminHandler struct{ uc *loanuc.Usecase }

func NewAdminHandler(uc *loanuc.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

func (h *AdminHandler) ApproveLoan(c echo.Context) error {
	caller := callerID(c)
	if caller == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Caller-Id"})
	}
	id, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Approve(c.Request().Context(), caller, id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type verifyUserReq struct {
	Verified *bool `json:"verified" validate:"required"`
}

func (h *AdminHandler) VerifyUser(c echo.Context) error {
	caller := callerID(c)
	if caller == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Caller-Id"})
	}
	userID := c.Param("user_id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	var req verifyUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	if err := h.uc.VerifyUser(c.Request().Context(), caller, userID, *req.Verified); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"user_id": userID, "verified": *req.Verified})
}
