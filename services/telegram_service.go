// services/telegram_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// sendTimeout caps the whole outbound call; exceeding it surfaces as a
// TransportError, never a hang.
const sendTimeout = 60 * time.Second

// DeliveryReceipt is the messaging API's decoded acknowledgment of a
// successful document transfer. It is echoed to the caller as-is.
type DeliveryReceipt map[string]any

// DocumentSender delivers a binary document with a caption to one chat.
type DocumentSender interface {
	SendDocument(chatID string, doc []byte, filename, caption string) (DeliveryReceipt, error)
}

// TelegramService sends documents through the Telegram Bot API.
type TelegramService struct {
	client *resty.Client
	token  string
}

// NewTelegramService builds a client against apiBase
// (normally https://api.telegram.org).
func NewTelegramService(apiBase, botToken string) *TelegramService {
	return &TelegramService{
		client: resty.New().
			SetBaseURL(apiBase).
			SetTimeout(sendTimeout),
		token: botToken,
	}
}

// SendDocument uploads doc via sendDocument. A network-level failure
// returns a TransportError; a non-success remote status returns a
// DeliveryError carrying the status code and response body. Nothing is
// retried: a single failed attempt is surfaced immediately.
func (s *TelegramService) SendDocument(chatID string, doc []byte, filename, caption string) (DeliveryReceipt, error) {
	resp, err := s.client.R().
		SetMultipartField("document", filename, "application/pdf", bytes.NewReader(doc)).
		SetFormData(map[string]string{
			"chat_id": chatID,
			"caption": caption,
		}).
		Post(fmt.Sprintf("/bot%s/sendDocument", s.token))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &DeliveryError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var receipt DeliveryReceipt
	if err := json.Unmarshal(resp.Body(), &receipt); err != nil {
		// a 2xx with an undecodable body is still a delivered document
		receipt = DeliveryReceipt{"ok": true}
	}
	return receipt, nil
}
