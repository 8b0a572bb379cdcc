package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/atrium-inc/atrium/internal/domain/notification"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// WebPushConfig carries the VAPID keypair and contact address push services
// require.
type WebPushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string
	TTLSeconds      int
}

// WebPushTransport delivers notification payloads over the Web Push protocol.
type WebPushTransport struct {
	config WebPushConfig
	logger logger.Interface
}

func NewWebPushTransport(config WebPushConfig, logger logger.Interface) *WebPushTransport {
	if config.TTLSeconds <= 0 {
		config.TTLSeconds = 3600
	}
	return &WebPushTransport{
		config: config,
		logger: logger,
	}
}

// Send pushes the payload to one endpoint. A 404 or 410 from the push
// service means the subscription no longer exists; those are reported as
// notification.ErrEndpointGone so the caller can retire the endpoint.
func (t *WebPushTransport) Send(ctx context.Context, endpoint *notification.PushEndpoint, payload notification.PushPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}

	sub := &webpush.Subscription{
		Endpoint: endpoint.EndpointURL(),
		Keys: webpush.Keys{
			P256dh: endpoint.P256dhKey(),
			Auth:   endpoint.AuthKey(),
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, sub, &webpush.Options{
		Subscriber:      t.config.Subscriber,
		VAPIDPublicKey:  t.config.VAPIDPublicKey,
		VAPIDPrivateKey: t.config.VAPIDPrivateKey,
		TTL:             t.config.TTLSeconds,
	})
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("push service returned %d: %w", resp.StatusCode, notification.ErrEndpointGone)
	case resp.StatusCode >= 400:
		return fmt.Errorf("push service returned %d", resp.StatusCode)
	}

	return nil
}
