package handler

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"labelcheck/internal/domain"
	"labelcheck/internal/export"
	"labelcheck/internal/service"
)

// VerifyHandler handles label verification endpoints.
type VerifyHandler struct {
	svc service.VerificationService
}

// NewVerifyHandler creates a VerifyHandler.
func NewVerifyHandler(svc service.VerificationService) *VerifyHandler {
	return &VerifyHandler{svc: svc}
}

// BatchRequest is the request body for batch verification and export.
type BatchRequest struct {
	Requests []domain.VerificationRequest `json:"requests"`
}

// Verify handles POST /api/v1/verify.
func (h *VerifyHandler) Verify(c *gin.Context) {
	var req domain.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("verify_handler.Verify: bind error: %v", err)
		HandleError(c, domain.ErrInvalidRequestBody)
		return
	}

	result, err := h.svc.Verify(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// VerifyBatch handles POST /api/v1/verify/batch.
func (h *VerifyHandler) VerifyBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("verify_handler.VerifyBatch: bind error: %v", err)
		HandleError(c, domain.ErrInvalidRequestBody)
		return
	}

	results, err := h.svc.VerifyBatch(c.Request.Context(), req.Requests)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"results": results, "total": len(results)})
}

// Export handles POST /api/v1/verify/export?format=csv|xlsx. Verifies the
// batch and streams the results as a downloadable report.
func (h *VerifyHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		HandleError(c, domain.ErrUnsupportedFormat)
		return
	}

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("verify_handler.Export: bind error: %v", err)
		HandleError(c, domain.ErrInvalidRequestBody)
		return
	}

	results, err := h.svc.VerifyBatch(c.Request.Context(), req.Requests)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("label_verification", format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	switch format {
	case "xlsx":
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, results); err != nil {
			log.Printf("verify_handler.Export: xlsx write error: %v", err)
			HandleError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		var buf bytes.Buffer
		buf.Write(export.BOM)
		w := export.NewWriter(&buf)
		if err := w.WriteHeader(); err != nil {
			HandleError(c, err)
			return
		}
		if err := w.WriteResults(results); err != nil {
			HandleError(c, err)
			return
		}
		w.Flush()
		if err := w.Error(); err != nil {
			log.Printf("verify_handler.Export: csv write error: %v", err)
			HandleError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	}
}
