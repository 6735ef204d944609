package reminder

import (
	"context"

	"careinsight/models"

	"go.uber.org/zap"
)

// FailedTokens returns the tokens the delivery result marks as failed and not
// retryable. result.Responses is index-aligned with tokens.
func FailedTokens(tokens []string, result *models.DeliveryResult) []string {
	if result == nil || result.FailureCount == 0 {
		return nil
	}

	var failed []string
	for i, r := range result.Responses {
		if i >= len(tokens) {
			break
		}
		if !r.Success && !r.Retryable {
			failed = append(failed, tokens[i])
		}
	}
	return failed
}

// PruneTokens returns tokens minus failed, preserving order.
func PruneTokens(tokens, failed []string) []string {
	if len(failed) == 0 {
		return tokens
	}
	drop := make(map[string]struct{}, len(failed))
	for _, t := range failed {
		drop[t] = struct{}{}
	}

	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := drop[t]; !ok {
			kept = append(kept, t)
		}
	}
	return kept
}

type deliveryOutcome struct {
	sent    bool
	skipped bool
	failed  bool
	pruned  int
}

// deliver sends one message and prunes dead tokens. Every error is logged
// here and never returned, so one user's failure cannot affect another's.
func (d *Dispatcher) deliver(ctx context.Context, msg *models.ReminderMessage, day string) deliveryOutcome {
	log := d.Logger.With(
		zap.String("userId", msg.UserID),
		zap.String("prescriptionId", msg.PrescriptionID),
		zap.String("time", msg.DoseTime),
	)

	key := DoseKey(msg.PrescriptionID, msg.DoseTime, day)
	if d.Ledger != nil {
		claimed, err := d.Ledger.Claim(ctx, key)
		if err != nil {
			log.Warn("sent-dose ledger unavailable, sending anyway", zap.Error(err))
		} else if !claimed {
			log.Debug("dose already notified today")
			return deliveryOutcome{skipped: true}
		}
	}

	result, err := d.Sender.SendReminder(ctx, msg)
	if err != nil {
		log.Error("failed to send reminder", zap.Error(err))
		d.release(ctx, key, log)
		return deliveryOutcome{failed: true}
	}

	log.Info("reminder sent",
		zap.Int("success", result.SuccessCount),
		zap.Int("failure", result.FailureCount),
	)

	out := deliveryOutcome{sent: true}
	if result.SuccessCount == 0 {
		// Nothing reached a device; a later tick in the window may retry.
		d.release(ctx, key, log)
		out = deliveryOutcome{failed: true}
	}

	failed := FailedTokens(msg.Tokens, result)
	if len(failed) == 0 {
		return out
	}
	if err := d.Users.RemoveTokens(ctx, msg.UserID, failed); err != nil {
		log.Error("failed to prune invalid tokens", zap.Int("tokens", len(failed)), zap.Error(err))
		return out
	}
	log.Info("pruned invalid tokens", zap.Int("tokens", len(failed)))
	out.pruned = len(failed)
	return out
}

func (d *Dispatcher) release(ctx context.Context, key string, log *zap.Logger) {
	if d.Ledger == nil {
		return
	}
	if err := d.Ledger.Release(ctx, key); err != nil {
		log.Warn("failed to release ledger claim", zap.Error(err))
	}
}
