package messaging

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"meopastel/internal/usecase/interfaces"
)

const DefaultCompanyNumber = "5511954261780"

// WhatsAppChannel hands the vendor message off as a wa.me deep link the
// customer opens to send the order. When a webhook URL is configured the
// raw text is also POSTed there; webhook failures are logged and do not
// lose the link.

type WhatsAppChannel struct {
	number     string
	webhookURL string
	httpClient *http.Client
}

var _ interfaces.IOrderChannel = (*WhatsAppChannel)(nil)

func NewWhatsAppChannel(number, webhookURL string) *WhatsAppChannel {
	if number == "" {
		number = DefaultCompanyNumber
	}
	return &WhatsAppChannel{
		number:     number,
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *WhatsAppChannel) Deliver(ctx context.Context, message string) (string, error) {
	link := fmt.Sprintf("https://wa.me/%s?text=%s", c.number, url.QueryEscape(message))

	if c.webhookURL != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, strings.NewReader(message))
		if err != nil {
			return link, err
		}
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[messaging][channel] webhook post failed err=%v", err)
			return link, err
		}
		resp.Body.Close()
		if resp.StatusCode >= http.StatusBadRequest {
			log.Printf("[messaging][channel] webhook rejected status=%d", resp.StatusCode)
			return link, fmt.Errorf("order webhook status %d", resp.StatusCode)
		}
	}

	log.Printf("[messaging][channel] order handed off message_len=%d", len(message))
	return link, nil
}
