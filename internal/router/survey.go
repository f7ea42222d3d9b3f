package router

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/endovision/depth-rater/internal/apperr"
	"github.com/endovision/depth-rater/internal/domain"
	"github.com/endovision/depth-rater/internal/dto"
	"github.com/endovision/depth-rater/internal/export"
	"github.com/endovision/depth-rater/internal/mailer"
	"github.com/endovision/depth-rater/internal/session"
	"github.com/endovision/depth-rater/internal/trialset"
)

const contentTypeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ScanFunc builds the trial pool for a new session.
type ScanFunc func() ([]domain.Item, error)

// SurveyRouter exposes the rating flow over HTTP: start a session, fetch the
// current trial, record judgments, and finalize (export + email) once done.
type SurveyRouter struct {
	e        *echo.Echo
	cfg      trialset.Config
	models   [2]string
	store    *session.Store
	exporter *export.XlsxExporter
	mailer   mailer.Mailer
	scan     ScanFunc
}

type SurveyRouterOption func(*SurveyRouter)

// WithScanFunc overrides how the trial pool is discovered. Tests use it to
// avoid touching the filesystem.
func WithScanFunc(scan ScanFunc) SurveyRouterOption {
	return func(r *SurveyRouter) {
		r.scan = scan
	}
}

func NewSurveyRouter(
	e *echo.Echo,
	cfg trialset.Config,
	models [2]string,
	store *session.Store,
	exporter *export.XlsxExporter,
	m mailer.Mailer,
	opts ...SurveyRouterOption,
) *SurveyRouter {
	r := &SurveyRouter{
		e:        e,
		cfg:      cfg,
		models:   models,
		store:    store,
		exporter: exporter,
		mailer:   m,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.scan == nil {
		r.scan = func() ([]domain.Item, error) {
			return trialset.Scan(cfg)
		}
	}
	return r
}

func (r *SurveyRouter) Bind() {
	r.e.POST("/api/sessions", r.startSessionHandler)
	r.e.GET("/api/sessions/:id", r.sessionStatusHandler)
	r.e.GET("/api/sessions/:id/trial", r.currentTrialHandler)
	r.e.GET("/api/sessions/:id/images/:role", r.trialImageHandler)
	r.e.POST("/api/sessions/:id/judgments", r.recordJudgmentHandler)
	r.e.POST("/api/sessions/:id/finalize", r.finalizeHandler)
	r.e.POST("/api/sessions/:id/deliver", r.deliverHandler)
	r.e.GET("/api/sessions/:id/export", r.downloadExportHandler)
}

// startSessionHandler godoc
// @Summary Start a rating session
// @Description Scans the survey trees, shuffles the trial pool and creates a session for the rater
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Rater identity"
// @Success 201 {object} dto.SessionStatus
// @Failure 400 {object} map[string]string
// @Router /api/sessions [post]
func (r *SurveyRouter) startSessionHandler(c echo.Context) error {
	var req dto.StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewInvalidInputWrap("invalid request body", err)
	}

	items, err := r.scan()
	if err != nil {
		return fmt.Errorf("scan trial set: %w", err)
	}

	s, err := session.New(req.RaterName, items, r.models)
	if err != nil {
		return err
	}
	r.store.Put(s)

	return c.JSON(http.StatusCreated, statusOf(s))
}

// sessionStatusHandler godoc
// @Summary Session status
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.SessionStatus
// @Failure 404 {object} map[string]string
// @Router /api/sessions/{id} [get]
func (r *SurveyRouter) sessionStatusHandler(c echo.Context) error {
	s, err := r.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusOf(s))
}

// currentTrialHandler godoc
// @Summary Current trial
// @Description Returns the reference frame and the two anonymized depth-map slots for the trial under the cursor. The slot layout is pinned until the trial is judged.
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.TrialResponse
// @Failure 404 {object} map[string]string
// @Router /api/sessions/{id}/trial [get]
func (r *SurveyRouter) currentTrialHandler(c echo.Context) error {
	s, err := r.session(c)
	if err != nil {
		return err
	}

	item, _, ok := s.CurrentTrial()
	if !ok {
		return c.JSON(http.StatusOK, dto.TrialResponse{
			Complete: true,
			Cursor:   s.Cursor(),
			Total:    s.Len(),
		})
	}

	return c.JSON(http.StatusOK, dto.TrialResponse{
		Cursor:       s.Cursor(),
		Total:        s.Len(),
		Filename:     item.Filename,
		Category:     item.Category,
		ReferenceURL: trialImageURL(s, "reference"),
		SlotAURL:     trialImageURL(s, "a"),
		SlotBURL:     trialImageURL(s, "b"),
	})
}

// trialImageHandler serves the current trial's images through anonymized,
// session-scoped roles. The markup only ever sees "a" and "b"; which result
// set sits behind a slot is resolved server-side through the pinned layout,
// so provenance stays blinded until the judgment is recorded.
func (r *SurveyRouter) trialImageHandler(c echo.Context) error {
	s, err := r.session(c)
	if err != nil {
		return err
	}

	item, presentation, ok := s.CurrentTrial()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no active trial")
	}

	switch c.Param("role") {
	case "reference":
		return c.File(item.Reference)
	case "a":
		return c.File(item.Results[presentation.ResultIndex(domain.SlotA)])
	case "b":
		return c.File(item.Results[presentation.ResultIndex(domain.SlotB)])
	}
	return echo.NewHTTPError(http.StatusNotFound, "unknown image role")
}

// recordJudgmentHandler godoc
// @Summary Record a judgment and advance
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.JudgmentRequest true "Chosen display slot"
// @Success 200 {object} dto.SessionStatus
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/sessions/{id}/judgments [post]
func (r *SurveyRouter) recordJudgmentHandler(c echo.Context) error {
	s, err := r.session(c)
	if err != nil {
		return err
	}

	var req dto.JudgmentRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewInvalidInputWrap("invalid request body", err)
	}

	slot := domain.Slot(strings.TrimSpace(req.Slot))
	if _, err := s.RecordAndAdvance(slot); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusOf(s))
}

// finalizeHandler godoc
// @Summary Export the judgment log and email it
// @Description Writes the results workbook and attempts delivery to the configured recipient. A failed delivery is reported, not raised; the workbook stays on disk.
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.FinalizeResponse
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/sessions/{id}/finalize [post]
func (r *SurveyRouter) finalizeHandler(c echo.Context) error {
	s, err := r.session(c)
	if err != nil {
		return err
	}
	if !s.IsComplete() {
		return apperr.NewInvalidState("session is not complete yet")
	}

	if err := r.exporter.Export(s.Judgments()); err != nil {
		return err
	}

	resp := dto.FinalizeResponse{
		Exported:   true,
		ExportPath: r.exporter.Path(),
	}
	if r.mailer.Deliver(r.exporter.Path()) {
		resp.Emailed = true
		resp.Message = "results exported and emailed"
	} else {
		resp.Message = "results exported; email failed, check the mail transport configuration"
	}

	return c.JSON(http.StatusOK, resp)
}

// deliverHandler godoc
// @Summary Re-attempt delivery of the exported workbook
// @Description Retries the email step on its own. Requires a completed session and a previously exported workbook.
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.DeliveryResponse
// @Failure 409 {object} map[string]string
// @Router /api/sessions/{id}/deliver [post]
func (r *SurveyRouter) deliverHandler(c echo.Context) error {
	s, err := r.session(c)
	if err != nil {
		return err
	}
	if !s.IsComplete() {
		return apperr.NewInvalidState("session is not complete yet")
	}
	if _, err := os.Stat(r.exporter.Path()); err != nil {
		return apperr.NewInvalidState("results have not been exported yet")
	}

	resp := dto.DeliveryResponse{}
	if r.mailer.Deliver(r.exporter.Path()) {
		resp.Emailed = true
		resp.Message = "results emailed"
	} else {
		resp.Message = "email failed, check the mail transport configuration"
	}

	return c.JSON(http.StatusOK, resp)
}

// downloadExportHandler godoc
// @Summary Download the results workbook
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Session id"
// @Success 200 {file} binary
// @Failure 409 {object} map[string]string
// @Router /api/sessions/{id}/export [get]
func (r *SurveyRouter) downloadExportHandler(c echo.Context) error {
	s, err := r.session(c)
	if err != nil {
		return err
	}
	if !s.IsComplete() {
		return apperr.NewInvalidState("session is not complete yet")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filepath.Base(r.exporter.Path())))
	c.Response().Header().Set(echo.HeaderContentType, contentTypeXlsx)
	c.Response().WriteHeader(http.StatusOK)

	return r.exporter.WriteTo(c.Response(), s.Judgments())
}

func (r *SurveyRouter) session(c echo.Context) (*session.Session, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	s, ok := r.store.Get(id)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return s, nil
}

func statusOf(s *session.Session) dto.SessionStatus {
	return dto.SessionStatus{
		ID:        s.ID().String(),
		RaterName: s.RaterName(),
		Cursor:    s.Cursor(),
		Total:     s.Len(),
		Complete:  s.IsComplete(),
	}
}

// trialImageURL addresses a trial image by its display role only. The trial
// query parameter exists to bust browser caches between trials; the handler
// ignores it.
func trialImageURL(s *session.Session, role string) string {
	return fmt.Sprintf("/api/sessions/%s/images/%s?trial=%d", s.ID(), role, s.Cursor())
}
