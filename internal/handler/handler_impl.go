// Package handler provides HTTP request handlers for the application.
package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/mapping"
	"github.com/getconnects/leadrelay/internal/middleware"
	"github.com/getconnects/leadrelay/internal/models"
	"github.com/getconnects/leadrelay/internal/service"
)

const (
	errorCodeEndpointNotFound = "ENDPOINT_NOT_FOUND"
	errorCodeInvalidPayload   = "INVALID_PAYLOAD"
	errorCodeInvalidMapping   = "INVALID_MAPPING"
	errorCodeInvalidRequest   = "INVALID_REQUEST"
	errorCodeLeadNotFound     = "LEAD_NOT_FOUND"
	errorCodeCampaignNotFound = "CAMPAIGN_NOT_FOUND"
)

const (
	errorMessageEndpointNotFound = "Webhook endpoint not found"
	errorMessageInvalidPayload   = "Payload must be a JSON object or an array of objects"
	errorMessageInvalidMapping   = "Mapping must be a JSON object of field to path strings"
	errorMessageLeadNotFound     = "Lead not found"
	errorMessageCampaignNotFound = "Campaign not found"
	errorMessageInternal         = "Internal server error"
)

// maxBodyBytes bounds inbound request bodies. Dialer batches are small; a
// megabyte is generous.
const maxBodyBytes = 1 << 20

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ErrorResponse is the error envelope shared by all endpoints.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// EndpointResponse describes a provisioned webhook endpoint.
type EndpointResponse struct {
	Token  string `json:"token"`
	Target string `json:"target"`
	URL    string `json:"url"`
}

// LeadResponse wraps a persisted lead together with soft notification
// warnings from the post-commit dispatch.
type LeadResponse struct {
	Lead     *LeadBody `json:"lead"`
	Warnings []string  `json:"warnings,omitempty"`
}

// LeadBody is the wire form of a lead.
type LeadBody struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Company        string `json:"company"`
	SecondaryPhone string `json:"secondary_phone"`
	LeadType       string `json:"lead_type"`
	CallerName     string `json:"caller_name"`
	CallerNumber   string `json:"caller_number"`
	Notes          string `json:"notes"`
	NumberID       string `json:"number_id"`
	ClientID       *int64 `json:"client_id"`
	CampaignID     string `json:"campaign_id,omitempty"`
}

// ReassignResponse reports a campaign client reassignment.
type ReassignResponse struct {
	CampaignID     string `json:"campaign_id"`
	RepointedLeads int64  `json:"repointed_leads"`
}

// NotificationLogsResponse is a page of the notification log.
type NotificationLogsResponse struct {
	Logs   []NotificationLogBody `json:"logs"`
	Total  int64                 `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// NotificationLogBody is the wire form of one notification log entry.
type NotificationLogBody struct {
	ID        int64     `json:"id"`
	ClientID  *int64    `json:"client_id"`
	LeadID    *int64    `json:"lead_id"`
	Channel   string    `json:"channel"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// IngestWebhook accepts one dialer delivery. Success and absorbed duplicates
// both answer 204 so the dialer never retries what has been taken.
func (h *Handler) IngestWebhook(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidPayload, errorMessageInvalidPayload)
		return
	}

	if err := h.service.Webhook.Ingest(r.Context(), token, body); err != nil {
		h.sendIngestError(w, r, token, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sendIngestError(w http.ResponseWriter, r *http.Request, token string, err error) {
	requestID := middleware.GetRequestID(r.Context())

	var campaignErr *mapping.CampaignNotFoundError
	var writeErr *service.DomainWriteError

	switch {
	case errors.Is(err, service.ErrEndpointNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeEndpointNotFound, errorMessageEndpointNotFound)
	case errors.Is(err, service.ErrInvalidPayload):
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidPayload, errorMessageInvalidPayload)
	case errors.As(err, &campaignErr):
		h.sendError(w, r, http.StatusConflict, errorCodeCampaignNotFound, campaignErr.Error())
	case errors.As(err, &writeErr):
		h.sendError(w, r, http.StatusConflict, errorCodeInvalidRequest, writeErr.Error())
	default:
		h.logger.Error("Failed to process webhook",
			zap.String("request_id", requestID),
			zap.String("token", token),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageInternal)
	}
}

// CreateEndpoint provisions a new webhook endpoint for a target kind.
func (h *Handler) CreateEndpoint(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target string `json:"target"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Request body must be a JSON object")
		return
	}

	kind := models.TargetKind(req.Target)
	if kind == "" {
		kind = models.TargetKindLead
	}
	if !kind.Valid() {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Target must be \"lead\" or \"campaign\"")
		return
	}

	endpoint, err := h.service.Webhook.CreateEndpoint(r.Context(), kind)
	if err != nil {
		h.logger.Error("Failed to create webhook endpoint",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageInternal)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EndpointResponse{
		Token:  endpoint.Token,
		Target: string(endpoint.TargetKind),
		URL:    "/webhooks/dialer/" + endpoint.Token,
	})
}

// DeleteEndpoint removes a webhook endpoint and its payload log.
func (h *Handler) DeleteEndpoint(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.service.Webhook.DeleteEndpoint(r.Context(), token); err != nil {
		if isNoRows(err) {
			h.sendError(w, r, http.StatusNotFound, errorCodeEndpointNotFound, errorMessageEndpointNotFound)
			return
		}
		h.logger.Error("Failed to delete webhook endpoint",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageInternal)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetLatestPayload returns the most recent raw delivery for an endpoint.
func (h *Handler) GetLatestPayload(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	payload, err := h.service.Webhook.LatestPayload(r.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrEndpointNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeEndpointNotFound, errorMessageEndpointNotFound)
			return
		}
		h.logger.Error("Failed to load latest payload",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageInternal)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

// GetMapping returns the endpoint's saved field mapping.
func (h *Handler) GetMapping(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	raw, err := h.service.Webhook.GetMapping(r.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrEndpointNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeEndpointNotFound, errorMessageEndpointNotFound)
			return
		}
		h.logger.Error("Failed to load mapping",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageInternal)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

// SaveMapping replaces the endpoint's field mapping.
func (h *Handler) SaveMapping(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidMapping, errorMessageInvalidMapping)
		return
	}

	if err := h.service.Webhook.SaveMapping(r.Context(), token, raw); err != nil {
		switch {
		case errors.Is(err, service.ErrEndpointNotFound):
			h.sendError(w, r, http.StatusNotFound, errorCodeEndpointNotFound, errorMessageEndpointNotFound)
		case errors.Is(err, service.ErrInvalidMapping):
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidMapping, errorMessageInvalidMapping)
		default:
			h.logger.Error("Failed to save mapping",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.Error(err))
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageInternal)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateLead persists a lead submitted through the interactive API and
// returns it together with any notification warnings.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var input service.LeadInput
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&input); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Request body must be a JSON object")
		return
	}

	lead, warnings, err := h.service.Lead.Create(r.Context(), input)
	if err != nil {
		h.sendLeadError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, LeadResponse{
		Lead:     leadBody(lead),
		Warnings: warnings,
	})
}

// UpdateLead rewrites a lead's mutable fields.
func (h *Handler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Lead id must be an integer")
		return
	}

	var input service.LeadInput
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&input); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Request body must be a JSON object")
		return
	}

	lead, err := h.service.Lead.Update(r.Context(), id, input)
	if err != nil {
		h.sendLeadError(w, r, err)
		return
	}

	render.JSON(w, r, LeadResponse{Lead: leadBody(lead)})
}

func (h *Handler) sendLeadError(w http.ResponseWriter, r *http.Request, err error) {
	var writeErr *service.DomainWriteError

	switch {
	case errors.Is(err, service.ErrLeadNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeLeadNotFound, errorMessageLeadNotFound)
	case errors.Is(err, service.ErrCampaignNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeCampaignNotFound, errorMessageCampaignNotFound)
	case errors.As(err, &writeErr):
		h.sendError(w, r, http.StatusConflict, errorCodeInvalidRequest, writeErr.Error())
	default:
		h.logger.Error("Lead write failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageInternal)
	}
}

// ReassignCampaignClient changes a campaign's owning client and cascades the
// change to the campaign's leads.
func (h *Handler) ReassignCampaignClient(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	var req struct {
		ClientID *int64 `json:"client_id"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Request body must be a JSON object")
		return
	}

	repointed, err := h.service.Lead.ReassignCampaignClient(r.Context(), campaignID, req.ClientID)
	if err != nil {
		h.sendLeadError(w, r, err)
		return
	}

	render.JSON(w, r, ReassignResponse{
		CampaignID:     campaignID,
		RepointedLeads: repointed,
	})
}

// GetNotificationLogs returns a page of the notification log, newest first.
func (h *Handler) GetNotificationLogs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	logs, total, err := h.service.Notification.ListLogs(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list notification logs",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageInternal)
		return
	}

	response := NotificationLogsResponse{
		Logs:   make([]NotificationLogBody, 0, len(logs)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, entry := range logs {
		response.Logs = append(response.Logs, notificationLogBody(entry))
	}

	render.JSON(w, r, response)
}

// HealthCheck reports dependency liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.service.Health.Check(r.Context())

	if status.Status != "ok" {
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, status)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	now := time.Now()
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: &now,
	})
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func leadBody(lead *models.Lead) *LeadBody {
	body := &LeadBody{
		ID:             lead.ID,
		Name:           lead.Name,
		Phone:          lead.Phone,
		Email:          lead.Email,
		Address:        lead.Address,
		Company:        lead.Company,
		SecondaryPhone: lead.SecondaryPhone,
		LeadType:       lead.LeadType,
		CallerName:     lead.CallerName,
		CallerNumber:   lead.CallerNumber,
		Notes:          lead.Notes,
		NumberID:       lead.NumberID,
	}
	if lead.ClientID.Valid {
		clientID := lead.ClientID.Int64
		body.ClientID = &clientID
	}
	if lead.CampaignID.Valid {
		body.CampaignID = lead.CampaignID.String
	}
	return body
}

func notificationLogBody(entry *models.NotificationLog) NotificationLogBody {
	body := NotificationLogBody{
		ID:        entry.ID,
		Channel:   string(entry.Channel),
		Status:    string(entry.Status),
		Message:   entry.Message,
		CreatedAt: entry.CreatedAt,
	}
	if entry.ClientID.Valid {
		clientID := entry.ClientID.Int64
		body.ClientID = &clientID
	}
	if entry.LeadID.Valid {
		leadID := entry.LeadID.Int64
		body.LeadID = &leadID
	}
	return body
}
