// File: handlers.go
// Title: API Handlers
// Description: JSON handlers for parsing, validation, template
//              scanning, language listing and health. Engine error
//              codes map onto HTTP statuses so clients can distinguish
//              unsupported languages from unparseable input.
// Version: v0.1.0
// Created: 2025-11-18

package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	lokaerror "github.com/lokascript/semantic-go/core/error"
	lokascanner "github.com/lokascript/semantic-go/scanner"
)

func (s *Server) handleParse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: "invalid request body"})
		return
	}

	cmd, err := s.engine.Resolve(req.Language, req.Input, req.Commands...)
	if err != nil {
		s.writeEngineError(c, err)
		return
	}

	s.parses.Add(1)
	c.JSON(http.StatusOK, ParseResponse{Command: cmd})
}

func (s *Server) handleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: "invalid request body"})
		return
	}

	cmd, err := s.engine.Resolve(req.Language, req.Input)
	if err != nil {
		if lokaerror.HasCode(err, lokaerror.CodeLanguageNotSupported) {
			s.writeEngineError(c, err)
			return
		}
		c.JSON(http.StatusOK, ValidateResponse{Valid: false, Reason: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{Valid: true, Action: cmd.Action})
}

func (s *Server) handleScan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: "invalid request body"})
		return
	}

	usage := s.scanner.ScanContent(req.Content)
	c.JSON(http.StatusOK, ScanResponse{
		Report:   usage.Report(),
		Region:   lokascanner.OptimalRegion(usage.Languages),
		Warnings: lokascanner.Validate(usage),
	})
}

func (s *Server) handleLanguages(c *gin.Context) {
	registry := s.engine.Registry()

	var infos []LanguageInfo
	for _, code := range registry.Languages() {
		prof, err := registry.Profile(code)
		if err != nil {
			continue
		}
		infos = append(infos, LanguageInfo{
			Code:       prof.Code,
			Name:       prof.Name,
			NativeName: prof.NativeName,
			Direction:  string(prof.Direction),
			WordOrder:  string(prof.WordOrder),
			Commands:   registry.Commands(code),
		})
	}

	c.JSON(http.StatusOK, LanguagesResponse{Languages: infos})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: s.version,
		Uptime:  time.Since(s.started).Round(time.Second).String(),
		Parses:  s.parses.Load(),
	})
}

// writeEngineError maps engine error codes onto HTTP statuses
func (s *Server) writeEngineError(c *gin.Context, err error) {
	switch lokaerror.GetCode(err) {
	case lokaerror.CodeLanguageNotSupported, lokaerror.CodeCommandNotSupported:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_supported", Message: err.Error()})
	case lokaerror.CodeEmptyInput, lokaerror.CodeInputTooLong, lokaerror.CodeInvalidInput:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Message: err.Error()})
	case lokaerror.CodeParseFailure:
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "parse_failure", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal", Message: err.Error()})
	}
}
