package usecases

import (
	"context"

	"github.com/atrium-inc/atrium/internal/domain/notification"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type RegisterEndpointCommand struct {
	UserID             uint
	Token              string
	EndpointURL        string
	P256dhKey          string
	AuthKey            string
	BrowserFingerprint string
}

type RegisterEndpointResult struct {
	EndpointID uint
	Refreshed  bool
}

// RegisterEndpointUseCase records a browser push subscription. Registration
// is an upsert keyed on (user, browser fingerprint): re-registering from the
// same browser refreshes the existing row instead of stacking a duplicate
// that fingerprint deduplication would have to discard at every dispatch.
type RegisterEndpointUseCase struct {
	endpoints notification.PushEndpointRepository
	logger    logger.Interface
}

func NewRegisterEndpointUseCase(endpoints notification.PushEndpointRepository, logger logger.Interface) *RegisterEndpointUseCase {
	return &RegisterEndpointUseCase{endpoints: endpoints, logger: logger}
}

func (uc *RegisterEndpointUseCase) Execute(ctx context.Context, cmd RegisterEndpointCommand) (*RegisterEndpointResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.EndpointURL == "" {
		return nil, errors.NewValidationError("endpoint URL is required")
	}

	if cmd.BrowserFingerprint != "" {
		existing, err := uc.endpoints.GetByFingerprint(ctx, cmd.UserID, cmd.BrowserFingerprint)
		if err != nil {
			uc.logger.Errorw("fingerprint lookup failed", "user_id", cmd.UserID, "error", err)
			return nil, err
		}
		if existing != nil {
			existing.UpdateKeys(cmd.EndpointURL, cmd.P256dhKey, cmd.AuthKey)
			if err := uc.endpoints.Update(ctx, existing); err != nil {
				uc.logger.Errorw("failed to refresh push endpoint", "endpoint_id", existing.ID(), "error", err)
				return nil, err
			}

			uc.logger.Infow("push endpoint refreshed", "endpoint_id", existing.ID(), "user_id", cmd.UserID)
			return &RegisterEndpointResult{EndpointID: existing.ID(), Refreshed: true}, nil
		}
	}

	endpoint, err := notification.NewPushEndpoint(
		cmd.UserID, cmd.Token, cmd.EndpointURL, cmd.P256dhKey, cmd.AuthKey, cmd.BrowserFingerprint,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.endpoints.Save(ctx, endpoint); err != nil {
		uc.logger.Errorw("failed to save push endpoint", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("push endpoint registered", "endpoint_id", endpoint.ID(), "user_id", cmd.UserID)
	return &RegisterEndpointResult{EndpointID: endpoint.ID()}, nil
}
