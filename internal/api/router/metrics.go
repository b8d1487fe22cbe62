package router

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/DjordjeVuckovic/ner-eval/internal/apperr"
	"github.com/DjordjeVuckovic/ner-eval/internal/dto"
	"github.com/DjordjeVuckovic/ner-eval/internal/evaluate"
	"github.com/labstack/echo/v4"
)

const noEntitiesMessage = "entity files could not be loaded"

var errPathEscapes = errors.New("path escapes data dir")

type MetricsRouter struct {
	e         *echo.Echo
	evaluator *evaluate.Evaluator
	dataDir   string
}

type MetricsRouterOption func(*MetricsRouter)

// WithDataDir resolves relative request paths against dir.
func WithDataDir(dir string) MetricsRouterOption {
	return func(r *MetricsRouter) {
		r.dataDir = dir
	}
}

func NewMetricsRouter(e *echo.Echo, evaluator *evaluate.Evaluator, opts ...MetricsRouterOption) *MetricsRouter {
	r := &MetricsRouter{
		e:         e,
		evaluator: evaluator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MetricsRouter) Bind() {
	g := r.e.Group("/metrics")
	g.POST("/calculateTextMetrics", r.textMetricsHandler)
	g.POST("/calculateTextLightMetrics", r.textLightMetricsHandler)
	g.GET("/calculateJsonTextMetrics", r.jsonTextMetricsHandler)
}

// textMetricsHandler godoc
// @Summary Entity level metrics for BIO tagged files
// @Description Computes micro, macro and per-class precision, recall, F1 and accuracy
// @Tags metrics
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Truth and prediction file paths"
// @Success 200 {object} dto.CommonResult{data=evaluate.Result}
// @Failure 400 {object} dto.CommonResult
// @Failure 404 {object} dto.CommonResult
// @Failure 500 {object} dto.CommonResult
// @Router /metrics/calculateTextMetrics [post]
func (r *MetricsRouter) textMetricsHandler(c echo.Context) error {
	truthPath, predPath, err := r.bindPaths(c)
	if err != nil {
		return err
	}

	res, err := r.evaluator.Evaluate(truthPath, predPath)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, r.result(c).WithData(res).Success())
}

// textLightMetricsHandler godoc
// @Summary Macro metrics for BIO tagged files
// @Description Computes the macro averaged record carrying the pooled TP, FP and FN
// @Tags metrics
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Truth and prediction file paths"
// @Success 200 {object} dto.CommonResult{data=metrics.Metrics}
// @Failure 400 {object} dto.CommonResult
// @Failure 404 {object} dto.CommonResult
// @Failure 500 {object} dto.CommonResult
// @Router /metrics/calculateTextLightMetrics [post]
func (r *MetricsRouter) textLightMetricsHandler(c echo.Context) error {
	truthPath, predPath, err := r.bindPaths(c)
	if err != nil {
		return err
	}

	m, err := r.evaluator.EvaluateLight(truthPath, predPath)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, r.result(c).WithData(m).Success())
}

// jsonTextMetricsHandler godoc
// @Summary Set match metrics for JSON entity files
// @Description Scores two JSON arrays of tagged entities by exact membership. Data is null when either file cannot be loaded.
// @Tags metrics
// @Produce json
// @Param predPath query string true "Prediction entity file"
// @Param gtPath query string true "Ground truth entity file"
// @Success 200 {object} dto.CommonResult{data=metrics.Metrics}
// @Failure 400 {object} dto.CommonResult
// @Router /metrics/calculateJsonTextMetrics [get]
func (r *MetricsRouter) jsonTextMetricsHandler(c echo.Context) error {
	predPath := c.QueryParam("predPath")
	if predPath == "" {
		return apperr.NewValidation("predPath", "query parameter is required")
	}
	truthPath := c.QueryParam("gtPath")
	if truthPath == "" {
		return apperr.NewValidation("gtPath", "query parameter is required")
	}

	predPath, err := r.resolve("predPath", predPath)
	if err != nil {
		return err
	}
	truthPath, err = r.resolve("gtPath", truthPath)
	if err != nil {
		return err
	}

	m, ok := r.evaluator.EvaluateAlternate(predPath, truthPath)
	if !ok {
		return c.JSON(http.StatusOK, r.result(c).WithMessage(noEntitiesMessage).Success())
	}

	return c.JSON(http.StatusOK, r.result(c).WithData(m).Success())
}

func (r *MetricsRouter) bindPaths(c echo.Context) (string, string, error) {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return "", "", apperr.NewValidationWrap("body", "invalid request body", err)
	}
	if req.TrueFilePath == "" {
		return "", "", apperr.NewValidation("trueFilePath", "field is required")
	}
	if req.PredFilePath == "" {
		return "", "", apperr.NewValidation("predFilePath", "field is required")
	}

	truthPath, err := r.resolve("trueFilePath", req.TrueFilePath)
	if err != nil {
		return "", "", err
	}
	predPath, err := r.resolve("predFilePath", req.PredFilePath)
	if err != nil {
		return "", "", err
	}
	return truthPath, predPath, nil
}

// resolve joins a relative path onto the data dir. Relative paths must stay
// inside it; absolute paths are used as given.
func (r *MetricsRouter) resolve(field, path string) (string, error) {
	if r.dataDir == "" || filepath.IsAbs(path) {
		return path, nil
	}
	if !filepath.IsLocal(path) {
		return "", apperr.NewValidationWrap(field, "invalid path", errPathEscapes)
	}
	return filepath.Join(r.dataDir, path), nil
}

func (r *MetricsRouter) result(c echo.Context) *dto.CommonResult {
	return dto.NewResult(c.Response().Header().Get(echo.HeaderXRequestID))
}
