package notification

import (
	"context"
	"errors"
	"fmt"

	"careinsight/models"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService delivers reminder pushes to device tokens.
type NotificationService interface {
	// SendReminder sends one message to every token on it. The returned result
	// is index-aligned with msg.Tokens. An error means the whole call failed.
	SendReminder(ctx context.Context, msg *models.ReminderMessage) (*models.DeliveryResult, error)
}

// DefaultNotificationService is the FCM-backed implementation.
type DefaultNotificationService struct {
	client *messaging.Client
	logger *zap.Logger
	send   func(ctx context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// maxMulticastTokens is the FCM limit on tokens per multicast call.
const maxMulticastTokens = 500

func NewDefaultNotificationService(client *messaging.Client, logger *zap.Logger) (*DefaultNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: messaging client is nil")
	}
	return &DefaultNotificationService{client: client, logger: logger, send: client.SendEachForMulticast}, nil
}

func (s *DefaultNotificationService) SendReminder(ctx context.Context, msg *models.ReminderMessage) (*models.DeliveryResult, error) {
	if len(msg.Tokens) == 0 {
		return &models.DeliveryResult{}, nil
	}

	message := &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID:   "medication_reminders",
				Sound:       "default",
				ClickAction: msg.Data["click_action"],
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Tag:                "medication-reminder",
				RequireInteraction: true,
			},
		},
	}

	result, err := s.sendBatches(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("SendReminder: failed to send FCM multicast: %w", err)
	}

	s.logger.Debug("FCM multicast sent",
		zap.String("prescriptionId", msg.PrescriptionID),
		zap.Int("success", result.SuccessCount),
		zap.Int("failure", result.FailureCount),
	)
	return result, nil
}

// sendBatches splits the token list into FCM-sized batches. A batch whose call
// fails marks its tokens as retryable failures; the error is returned only
// when every batch failed.
func (s *DefaultNotificationService) sendBatches(ctx context.Context, message *messaging.MulticastMessage) (*models.DeliveryResult, error) {
	tokens := message.Tokens
	result := &models.DeliveryResult{Responses: make([]models.TokenOutcome, 0, len(tokens))}

	var lastErr error
	batches, failedBatches := 0, 0
	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := start + maxMulticastTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := *message
		batch.Tokens = tokens[start:end]
		batches++

		response, err := s.send(ctx, &batch)
		if err != nil {
			failedBatches++
			lastErr = err
			s.logger.Warn("FCM batch failed", zap.Int("tokens", len(batch.Tokens)), zap.Error(err))
			for _, t := range batch.Tokens {
				result.FailureCount++
				result.Responses = append(result.Responses, models.TokenOutcome{Token: t, Retryable: true, Error: err})
			}
			continue
		}

		part := toDeliveryResult(batch.Tokens, response)
		result.SuccessCount += part.SuccessCount
		result.FailureCount += part.FailureCount
		result.Responses = append(result.Responses, part.Responses...)
	}

	if failedBatches == batches {
		return nil, lastErr
	}
	return result, nil
}

func toDeliveryResult(tokens []string, response *messaging.BatchResponse) *models.DeliveryResult {
	result := &models.DeliveryResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Responses:    make([]models.TokenOutcome, 0, len(response.Responses)),
	}
	for i, r := range response.Responses {
		outcome := models.TokenOutcome{Success: r.Success, Error: r.Error}
		if i < len(tokens) {
			outcome.Token = tokens[i]
		}
		if !r.Success {
			outcome.Retryable = IsRetryable(r.Error)
		}
		result.Responses = append(result.Responses, outcome)
	}
	return result
}

// IsRetryable reports whether a per-token failure is transient, so the token
// should be kept for the next dose.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	return messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err)
}
