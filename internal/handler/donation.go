package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/doemais/donation-engine/internal/domain"
	"github.com/doemais/donation-engine/internal/service"
	customError "github.com/doemais/donation-engine/pkg/errors"
	"github.com/doemais/donation-engine/pkg/response"
)

type DonationHandler struct {
	service   *service.DonationService
	validator *validator.Validate
}

func NewDonationHandler(service *service.DonationService) *DonationHandler {
	return &DonationHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateDonation handles POST /api/v1/donations
func (h *DonationHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "request validation failed", customError.WrapValidationError(err))
		return
	}

	donation, schedule, err := h.service.CreateDonation(r.Context(), &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, &domain.CreateDonationResponse{
		Donation: donation,
		Schedule: schedule,
	})
}

// GetDonation handles GET /api/v1/donations/{donationId}
func (h *DonationHandler) GetDonation(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["donationId"]

	donation, err := h.service.GetDonation(r.Context(), donationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, donation)
}

// GetCarne handles GET /api/v1/donations/{donationId}/carne
func (h *DonationHandler) GetCarne(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["donationId"]

	carne, err := h.service.GetCarne(r.Context(), donationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, carne)
}

// GetTotals handles GET /api/v1/donations/{donationId}/totals
func (h *DonationHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["donationId"]

	totals, err := h.service.GetTotals(r.Context(), donationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, &domain.TotalsResponse{
		DonationID: donationID,
		Totals:     totals,
	})
}

// RegisterPayment handles POST /api/v1/donations/{donationId}/payments
func (h *DonationHandler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["donationId"]

	var request domain.RegisterPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "request validation failed", customError.WrapValidationError(err))
		return
	}

	payment, err := h.service.RegisterPayment(r.Context(), donationID, &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, payment)
}

// writeServiceError maps business errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if !errors.As(err, &businessErr) {
		response.InternalServerError(w, "unexpected error", err)
		return
	}

	switch businessErr.Code {
	case customError.ErrCodeDonationNotFound, customError.ErrCodeInstallmentNotFound:
		response.NotFound(w, businessErr.Message)
	case customError.ErrCodeDonationAlreadyExists:
		response.Conflict(w, businessErr.Message, businessErr)
	case customError.ErrCodeInvalidDonationValue,
		customError.ErrCodeInvalidInstallmentCount,
		customError.ErrCodeInvalidPaymentValue,
		customError.ErrCodeDonationNotActive,
		customError.ErrCodeValidationError:
		response.BadRequest(w, businessErr.Message, businessErr)
	default:
		response.InternalServerError(w, businessErr.Message, businessErr)
	}
}
