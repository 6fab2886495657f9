package nakama

import (
	"context"
	"database/sql"
	"fmt"

	"kartrace/internal/app/onboarding"

	"github.com/form3tech-oss/jwt-go"
	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// AfterAuthenticateDevice is triggered after an account is authenticated.
// New accounts get a generated racer name.
func AfterAuthenticateDevice(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error {
	if !out.Created {
		return nil
	}

	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		// The hook context carries no user yet for a fresh device login.
		resolvedID, err := userIDFromSessionToken(out.Token)
		if err != nil {
			logger.Error("AfterAuthenticateDevice: Failed to extract user ID from token: %v", err)
			return err
		}
		userID = resolvedID
	}

	logger.Info("Onboarding new racer %s", userID)

	service := onboarding.NewService(NewNakamaAccountAdapter(nk), nil)
	name, err := service.OnboardNewRacer(ctx, userID)
	if err != nil {
		// Racing works without a generated name, so login is not failed.
		logger.Warn("AfterAuthenticateDevice: Onboarding failed for user %s: %v", userID, err)
		return nil
	}
	logger.Debug("AfterAuthenticateDevice: User %s is now %s", userID, name)
	return nil
}

// userIDFromSessionToken reads the uid claim of a Nakama session token. The
// token was just issued by the server, so its signature is not checked.
func userIDFromSessionToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("token claims missing uid")
	}
	return uid, nil
}
