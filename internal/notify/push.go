package notify

import (
	"context"
	"errors"
	"fmt"

	fcm "github.com/appleboy/go-fcm"
)

// ErrNoServerKey is returned when push delivery is attempted without an
// FCM server key configured.
var ErrNoServerKey = errors.New("fcm server key not configured")

// FCMTransport sends push messages through Firebase Cloud Messaging.
type FCMTransport struct {
	client *fcm.Client
}

func NewFCMTransport(serverKey string) (*FCMTransport, error) {
	if serverKey == "" {
		return nil, ErrNoServerKey
	}
	client, err := fcm.NewClient(serverKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create fcm client: %w", err)
	}
	return &FCMTransport{client: client}, nil
}

// Send delivers one message to one device token.
func (t *FCMTransport) Send(ctx context.Context, token string, content PushContent) error {
	data := make(map[string]interface{}, len(content.Data))
	for k, v := range content.Data {
		data[k] = v
	}

	msg := &fcm.Message{
		To:   token,
		Data: data,
		Notification: &fcm.Notification{
			Title: content.Title,
			Body:  content.Body,
			Icon:  content.Icon,
		},
	}

	type result struct {
		res *fcm.Response
		err error
	}
	resCh := make(chan result, 1)
	go func() {
		res, err := t.client.Send(msg)
		resCh <- result{res: res, err: err}
	}()

	select {
	case r := <-resCh:
		if r.err != nil {
			return r.err
		}
		if r.res.Failure > 0 {
			for _, item := range r.res.Results {
				if item.Error != nil {
					return fmt.Errorf("fcm delivery failed: %w", item.Error)
				}
			}
			return errors.New("fcm delivery failed")
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
