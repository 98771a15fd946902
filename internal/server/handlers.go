// internal/server/handlers.go
package server

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"towncar-relay/internal/common/errors"
	"towncar-relay/internal/tenant"
)

// headerTenantOverride carries an explicit tenant override. Honored only on
// preview-site traffic; see the resolver.
const headerTenantOverride = "X-Tenant"

type successResponse struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	SID         string   `json:"sid,omitempty"`
	AdminErrors []string `json:"adminErrors,omitempty"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.String(http.StatusOK, "🚗 SMS API is live")
}

// handleHealth must not require tenant resolution to succeed.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSend(c echo.Context) error {
	body, err := decodeBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
	}

	rc := s.resolveTenant(c)
	s.logRequest(c, "send", rc)

	result, svcErr := s.svc.HandleReservation(c.Request().Context(), rc, body)
	if svcErr != nil {
		return s.writeError(c, svcErr)
	}

	return c.JSON(http.StatusOK, successResponse{
		Success:     true,
		Message:     result.Message,
		SID:         result.SID,
		AdminErrors: result.AdminErrors,
	})
}

func (s *Server) handleContact(c echo.Context) error {
	body, err := decodeBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
	}

	rc := s.resolveTenant(c)
	s.logRequest(c, "contact", rc)

	result, svcErr := s.svc.HandleContact(c.Request().Context(), rc, body)
	if svcErr != nil {
		return s.writeError(c, svcErr)
	}

	return c.JSON(http.StatusOK, successResponse{
		Success:     true,
		Message:     result.Message,
		AdminErrors: result.AdminErrors,
	})
}

func (s *Server) resolveTenant(c echo.Context) tenant.Resolved {
	override := c.QueryParam("tenant")
	if override == "" {
		override = c.Request().Header.Get(headerTenantOverride)
	}
	return s.registry.Resolve(
		c.Request().Header.Get(echo.HeaderOrigin),
		c.Request().Header.Get("Referer"),
		override,
	)
}

func (s *Server) logRequest(c echo.Context, route string, rc tenant.Resolved) {
	s.logger.Info("submission received", map[string]interface{}{
		"route":     route,
		"tenant":    rc.Tenant.Key,
		"rule":      rc.Rule,
		"origin":    c.Request().Header.Get(echo.HeaderOrigin),
		"referer":   c.Request().Header.Get("Referer"),
		"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

func (s *Server) writeError(c echo.Context, err error) error {
	stdErr := errors.AsStandardError(err)
	status := errors.HTTPStatus(stdErr.Code)

	if status == http.StatusBadRequest {
		detail := stdErr.Message
		if stdErr.Details != "" {
			detail = stdErr.Message + ": " + stdErr.Details
		}
		return c.JSON(status, map[string]string{"error": detail})
	}

	return c.JSON(status, failureResponse{
		Success: false,
		Error:   stdErr.Message,
		Code:    string(stdErr.Code),
		Detail:  stdErr.Details,
	})
}

func decodeBody(c echo.Context) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]interface{}{}
	}
	return body, nil
}
