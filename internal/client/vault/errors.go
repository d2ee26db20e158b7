package vault

import (
	"context"
	"errors"

	"github.com/vaultdesk/vaultdesk/internal/bridge"
)

// ErrValidation is returned for input rejected client-side before any
// backend call is made.
var ErrValidation = errors.New("validation failed")

// noticeText maps known backend error codes to user-facing messages. The
// presentation layer may localize these further; unknown codes fall through
// to a generic message that includes the raw code for diagnosis.
var noticeText = map[string]string{
	bridge.CodeNetworkError:     "The backend is not responding",
	bridge.CodeValidationError:  "Some fields are invalid",
	bridge.CodeFolderNameExists: "A folder with this name already exists",
	bridge.CodeNotFound:         "This item no longer exists",
}

// classify routes a failed backend call per the shared error policy:
// VAULT_LOCKED triggers the lock flow and is not toasted; known codes get a
// friendly notice; anything else gets a generic notice carrying the raw
// code. The original error is always returned so callers can stop their
// action, and local state is never mutated on failure.
func classify(ctx context.Context, deps sessionDeps, op string, err error) error {
	be, ok := bridge.AsError(err)
	if !ok {
		deps.log.Error(ctx, "backend call failed", "op", op, "err", err)
		deps.events.notify(Notice{Code: bridge.CodeInternalError, Message: "The operation failed"})
		return err
	}

	if be.Code == bridge.CodeVaultLocked {
		deps.log.Warn(ctx, "vault locked during operation", "op", op)
		// The backend already considers the vault locked; tear down local
		// state so cached secrets and the clipboard do not outlive it.
		if deps.lockLocal != nil {
			deps.lockLocal(ctx)
		} else {
			deps.events.locked()
		}
		return err
	}

	deps.log.Error(ctx, "backend call failed", "op", op, "code", be.Code, "err", err)

	if msg, known := noticeText[be.Code]; known {
		deps.events.notify(Notice{Code: be.Code, Message: msg})
	} else {
		deps.events.notify(Notice{Code: be.Code, Message: "The operation failed (" + be.Code + ")"})
	}
	return err
}

// invalid surfaces a client-side validation failure without a backend round
// trip.
func invalid(deps sessionDeps, message string) error {
	deps.events.notify(Notice{Code: bridge.CodeValidationError, Message: message})
	return ErrValidation
}
