package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/symptom-triage-server/internal/domain"
)

// AnalyzeRequest is the wire form of a triage query.
type AnalyzeRequest struct {
	Symptoms    []string `json:"symptoms" binding:"required"`
	Age         int      `json:"age,omitempty"`
	Sex         string   `json:"sex,omitempty"`
	Region      string   `json:"region,omitempty"`
	RiskFactors []string `json:"risk_factors,omitempty"`
}

// AnalyzeResponse wraps the engine result with request-scoped audit fields.
// The audit envelope stays out of AnalysisResult so the engine remains a pure,
// cacheable function of its inputs.
type AnalyzeResponse struct {
	AnalysisID       string                 `json:"analysis_id"`
	Result           *domain.AnalysisResult `json:"result"`
	ProcessingTimeMs int64                  `json:"processing_time_ms"`
}

// handleAnalyze runs the triage pipeline for a posted query.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	startTime := time.Now()
	query := &domain.Query{
		Symptoms:    req.Symptoms,
		Age:         req.Age,
		Sex:         req.Sex,
		Region:      domain.Region(req.Region),
		RiskFactors: req.RiskFactors,
	}

	result := s.analyzer.Analyze(c.Request.Context(), query)

	requestID := c.GetString("request_id")
	s.logger.WithFields(logrus.Fields{
		"request_id":     requestID,
		"matches":        len(result.AllMatches),
		"emergency_risk": result.EmergencyRisk,
	}).Debug("Analysis request served")

	c.JSON(http.StatusOK, AnalyzeResponse{
		AnalysisID:       requestID,
		Result:           result,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}

// handleListConditions returns the catalog, optionally filtered by category
// or region query parameters.
func (s *Server) handleListConditions(c *gin.Context) {
	snapshot := s.store.Snapshot()

	if cat := c.Query("category"); cat != "" {
		category := domain.Category(cat)
		if !category.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + cat})
			return
		}
		c.JSON(http.StatusOK, gin.H{"conditions": snapshot.ByCategory(category)})
		return
	}

	if reg := c.Query("region"); reg != "" {
		c.JSON(http.StatusOK, gin.H{
			"conditions": snapshot.ByRegion(domain.NormalizeRegion(domain.Region(reg))),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"conditions": snapshot.All()})
}

// handleSearchConditions searches display names and symptom names.
func (s *Server) handleSearchConditions(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conditions": s.store.Snapshot().Search(q)})
}

// handleGetCondition returns a single catalog record by ID.
func (s *Server) handleGetCondition(c *gin.Context) {
	rec, err := s.store.Snapshot().ByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
