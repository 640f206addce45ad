package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientdesk/internal/desk/service"
	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
)

// DomainsHandler handles domain registration endpoints. Records are
// rendered with their client's name and an expiration classified at
// request time.
type DomainsHandler struct {
	DomainService *service.DomainService
}

// HandleList handles GET /v1/domains
//
//	@Summary		List Domains
//	@Description	Returns the caller's domains, newest first. q matches the domain name or the client name.
//	@Tags			Domains
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q	query		string						false	"Search domain or client name"
//	@Success		200	{object}	desksdk.ListDomainsResponse	"domains"
//	@Failure		401	{object}	desksdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	desksdk.ErrorResponse		"error, error_description"
//	@Router			/v1/domains [get].
func (h *DomainsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	domains, names, err := h.DomainService.List(r.Context(), subject(r), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, "list domains")
		return
	}

	now, loc := h.DomainService.NowIn()
	out := make([]desksdk.Domain, len(domains))
	for i, d := range domains {
		out[i] = desksdk.DomainFromDomain(d, domain.ClientName(names, d.ClientID), now, loc)
	}
	httpx.WriteJSON(w, http.StatusOK, desksdk.ListDomainsResponse{Domains: out})
}

// HandleCreate handles POST /v1/domains
//
//	@Summary		Create Domain
//	@Tags			Domains
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		desksdk.DomainRequest			true	"Domain form"
//	@Success		201		{object}	desksdk.Domain					"Created domain"
//	@Failure		400		{object}	desksdk.ValidationErrorResponse	"code, message, details"
//	@Failure		404		{object}	desksdk.ErrorResponse			"client not found"
//	@Failure		500		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/domains [post].
func (h *DomainsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req desksdk.DomainRequest
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := h.DomainService.Create(r.Context(), subject(r), domainInput(req))
	if err != nil {
		writeServiceError(w, r, err, "create domain")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, h.render(r, d))
}

// HandleUpdate handles PUT /v1/domains/{id}
//
//	@Summary		Update Domain
//	@Tags			Domains
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Domain ID (ULID)"
//	@Param			request	body		desksdk.DomainRequest			true	"Domain form"
//	@Success		200		{object}	desksdk.Domain					"Updated domain"
//	@Failure		400		{object}	desksdk.ValidationErrorResponse	"code, message, details"
//	@Failure		404		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/domains/{id} [put].
func (h *DomainsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req desksdk.DomainRequest
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := h.DomainService.Update(r.Context(), subject(r), r.PathValue("id"), domainInput(req))
	if err != nil {
		writeServiceError(w, r, err, "update domain")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.render(r, d))
}

// HandleDelete handles DELETE /v1/domains/{id}
//
//	@Summary		Delete Domain
//	@Tags			Domains
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Domain ID (ULID)"
//	@Success		204	"Domain deleted"
//	@Failure		404	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/domains/{id} [delete].
func (h *DomainsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DomainService.Delete(r.Context(), subject(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete domain")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// render resolves the client name of a single record. A failed lookup only
// costs the name.
func (h *DomainsHandler) render(r *http.Request, d domain.Domain) desksdk.Domain {
	name := domain.UnknownClientName
	if c, err := h.DomainService.Store.Clients().GetClient(r.Context(), subject(r), d.ClientID); err == nil {
		name = c.Name
	}
	now, loc := h.DomainService.NowIn()
	return desksdk.DomainFromDomain(d, name, now, loc)
}

func domainInput(req desksdk.DomainRequest) service.DomainInput {
	return service.DomainInput{
		ClientID:       req.ClientID,
		DomainName:     req.DomainName,
		Registrar:      req.Registrar,
		DNSProvider:    req.DNSProvider,
		ExpirationDate: req.ExpirationDate,
		Status:         req.Status,
	}
}

// HostingHandler handles hosting service endpoints.
type HostingHandler struct {
	HostingService *service.HostingService
}

// HandleList handles GET /v1/hosting
//
//	@Summary		List Hosting Services
//	@Description	Returns the caller's hosting services, newest first. q matches the service name or the client name.
//	@Tags			Hosting
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q	query		string						false	"Search service or client name"
//	@Success		200	{object}	desksdk.ListHostingResponse	"hosting"
//	@Failure		401	{object}	desksdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	desksdk.ErrorResponse		"error, error_description"
//	@Router			/v1/hosting [get].
func (h *HostingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	hosting, names, err := h.HostingService.List(r.Context(), subject(r), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, "list hosting")
		return
	}

	now, loc := h.HostingService.NowIn()
	out := make([]desksdk.Hosting, len(hosting))
	for i, s := range hosting {
		out[i] = desksdk.HostingFromDomain(s, domain.ClientName(names, s.ClientID), now, loc)
	}
	httpx.WriteJSON(w, http.StatusOK, desksdk.ListHostingResponse{Hosting: out})
}

// HandleCreate handles POST /v1/hosting
//
//	@Summary		Create Hosting Service
//	@Tags			Hosting
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		desksdk.HostingRequest			true	"Hosting form"
//	@Success		201		{object}	desksdk.Hosting					"Created hosting service"
//	@Failure		400		{object}	desksdk.ValidationErrorResponse	"code, message, details"
//	@Failure		404		{object}	desksdk.ErrorResponse			"client not found"
//	@Failure		500		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/hosting [post].
func (h *HostingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req desksdk.HostingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s, err := h.HostingService.Create(r.Context(), subject(r), hostingInput(req))
	if err != nil {
		writeServiceError(w, r, err, "create hosting")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, h.render(r, s))
}

// HandleUpdate handles PUT /v1/hosting/{id}
//
//	@Summary		Update Hosting Service
//	@Tags			Hosting
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Hosting ID (ULID)"
//	@Param			request	body		desksdk.HostingRequest			true	"Hosting form"
//	@Success		200		{object}	desksdk.Hosting					"Updated hosting service"
//	@Failure		400		{object}	desksdk.ValidationErrorResponse	"code, message, details"
//	@Failure		404		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/hosting/{id} [put].
func (h *HostingHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req desksdk.HostingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s, err := h.HostingService.Update(r.Context(), subject(r), r.PathValue("id"), hostingInput(req))
	if err != nil {
		writeServiceError(w, r, err, "update hosting")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.render(r, s))
}

// HandleDelete handles DELETE /v1/hosting/{id}
//
//	@Summary		Delete Hosting Service
//	@Tags			Hosting
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Hosting ID (ULID)"
//	@Success		204	"Hosting service deleted"
//	@Failure		404	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/hosting/{id} [delete].
func (h *HostingHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.HostingService.Delete(r.Context(), subject(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete hosting")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HostingHandler) render(r *http.Request, s domain.Hosting) desksdk.Hosting {
	name := domain.UnknownClientName
	if c, err := h.HostingService.Store.Clients().GetClient(r.Context(), subject(r), s.ClientID); err == nil {
		name = c.Name
	}
	now, loc := h.HostingService.NowIn()
	return desksdk.HostingFromDomain(s, name, now, loc)
}

func hostingInput(req desksdk.HostingRequest) service.HostingInput {
	return service.HostingInput{
		ClientID:       req.ClientID,
		ServiceName:    req.ServiceName,
		Provider:       req.Provider,
		PlanType:       req.PlanType,
		ExpirationDate: req.ExpirationDate,
		Status:         req.Status,
	}
}
