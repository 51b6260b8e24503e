package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/middleware"
)

// accessService answers capability checks against the module-access table.
// Handlers call it before exposing reads; the posting core never does.
type accessService struct {
	accessRepo portsrepo.AccessRepository
}

// NewAccessService creates a new AccessService.
func NewAccessService(accessRepo portsrepo.AccessRepository) portssvc.AccessSvcFacade {
	return &accessService{accessRepo: accessRepo}
}

var _ portssvc.AccessSvcFacade = (*accessService)(nil)

// HasReadAccess reports whether the user may read the given module.
func (s *accessService) HasReadAccess(ctx context.Context, userID string, moduleID int) (bool, error) {
	allowed, err := s.accessRepo.HasReadAccess(ctx, userID, moduleID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Access check failed", slog.String("user_id", userID), slog.Int("module_id", moduleID), slog.String("error", err.Error()))
		return false, fmt.Errorf("failed to check read access: %w", err)
	}
	return allowed, nil
}
