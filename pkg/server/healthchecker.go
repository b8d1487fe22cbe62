package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// DirHealthChecker is healthy while its directory can be listed.
type DirHealthChecker struct {
	dir string
}

func NewDirHealthChecker(dir string) *DirHealthChecker {
	return &DirHealthChecker{dir: dir}
}

func (hc *DirHealthChecker) Healthy(ctx context.Context) bool {
	f, err := os.Open(hc.dir)
	if err != nil {
		slog.WarnContext(ctx, "Data dir unavailable", "dir", hc.dir, "error", err)
		return false
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		slog.WarnContext(ctx, "Data dir unreadable", "dir", hc.dir, "error", err)
		return false
	}
	return true
}
