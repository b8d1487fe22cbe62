// Package main NER Eval API
// @title NER Eval API
// @version 1.0
// @description Entity level evaluation of named entity recognition output
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/ner-eval/docs"
	"github.com/DjordjeVuckovic/ner-eval/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/ner-eval/internal/api/server"
	"github.com/DjordjeVuckovic/ner-eval/internal/evaluate"
	pkgserver "github.com/DjordjeVuckovic/ner-eval/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	evalCfg := evaluate.DefaultConfig()
	if sCfg.EvalConfigPath != "" {
		cfg, err := evaluate.LoadConfigFromFile(sCfg.EvalConfigPath)
		if err != nil {
			slog.Error("Failed to load evaluation config", "path", sCfg.EvalConfigPath, "error", err)
			os.Exit(1)
		}
		evalCfg = cfg
	}
	slog.Info("Evaluation config loaded",
		"perClassPolicy", evalCfg.PerClassPolicy.String(),
		"outsideLabel", evalCfg.OutsideLabel)

	var healthChecker pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	if sCfg.DataDir != "" {
		healthChecker = pkgserver.NewDirHealthChecker(sCfg.DataDir)
	}

	s := apiserver.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "NER Eval API is running")
	})

	var routerOpts []router.MetricsRouterOption
	if sCfg.DataDir != "" {
		routerOpts = append(routerOpts, router.WithDataDir(sCfg.DataDir))
		slog.Info("Resolving relative paths", "dataDir", sCfg.DataDir)
	}

	evaluator, err := evaluate.New(evalCfg)
	if err != nil {
		slog.Error("Failed to create evaluator", "error", err)
		os.Exit(1)
	}

	metricsRouter := router.NewMetricsRouter(s.Echo, evaluator, routerOpts...)
	metricsRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
