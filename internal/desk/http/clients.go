package http

import (
	"bytes"
	"mime"
	"net/http"

	"github.com/aussiebroadwan/clientdesk/internal/desk/service"
	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

// ClientsHandler handles all client endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleList handles GET /v1/clients
//
//	@Summary		List Clients
//	@Description	Returns the caller's clients, newest first. q matches name or email, company matches the company;
//	@Description	both are case-insensitive substring matches.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q		query		string						false	"Search name or email"
//	@Param			company	query		string						false	"Filter by company"
//	@Success		200		{object}	desksdk.ListClientsResponse	"clients"
//	@Failure		401		{object}	desksdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	desksdk.ErrorResponse		"error, error_description"
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := domain.ClientFilter{
		Query:   r.URL.Query().Get("q"),
		Company: r.URL.Query().Get("company"),
	}

	clients, err := h.ClientService.List(r.Context(), subject(r), filter)
	if err != nil {
		writeServiceError(w, r, err, "list clients")
		return
	}

	out := make([]desksdk.Client, len(clients))
	for i, c := range clients {
		out[i] = desksdk.ClientFromDomain(c)
	}
	httpx.WriteJSON(w, http.StatusOK, desksdk.ListClientsResponse{Clients: out})
}

// HandleCreate handles POST /v1/clients
//
//	@Summary		Create Client
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		desksdk.ClientRequest			true	"Client form"
//	@Success		201		{object}	desksdk.Client					"Created client"
//	@Failure		400		{object}	desksdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req desksdk.ClientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.ClientService.Create(r.Context(), subject(r), clientInput(req))
	if err != nil {
		writeServiceError(w, r, err, "create client")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, desksdk.ClientFromDomain(c))
}

// HandleUpdate handles PUT /v1/clients/{id}
//
//	@Summary		Update Client
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Client ID (ULID)"
//	@Param			request	body		desksdk.ClientRequest			true	"Client form"
//	@Success		200		{object}	desksdk.Client					"Updated client"
//	@Failure		400		{object}	desksdk.ValidationErrorResponse	"code, message, details"
//	@Failure		404		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req desksdk.ClientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.ClientService.Update(r.Context(), subject(r), r.PathValue("id"), clientInput(req))
	if err != nil {
		writeServiceError(w, r, err, "update client")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, desksdk.ClientFromDomain(c))
}

// HandleDelete handles DELETE /v1/clients/{id}
//
//	@Summary		Delete Client
//	@Description	Deletes the client together with its domains and hosting services.
//	@Tags			Clients
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Client ID (ULID)"
//	@Success		204	"Client deleted"
//	@Failure		404	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ClientService.Delete(r.Context(), subject(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleExport handles GET /v1/clients/export
//
//	@Summary		Export Clients
//	@Description	Downloads every client of the caller as CSV: Client Name, Email, Company, Phone, Created Date.
//	@Tags			Clients
//	@Produce		text/csv
//	@Security		BearerAuth
//	@Success		200	{string}	string					"CSV attachment"
//	@Failure		401	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/export [get].
func (h *ClientsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	filename, err := h.ClientService.ExportCSV(r.Context(), subject(r), &buf)
	if err != nil {
		writeServiceError(w, r, err, "export clients")
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slogx.FromContext(r.Context()).Warn("failed to write export", "error", err)
	}
}

func clientInput(req desksdk.ClientRequest) service.ClientInput {
	return service.ClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	}
}
