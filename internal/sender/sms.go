package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/config"
)

type smsRequest struct {
	ContactNumber string `json:"contact_number"`
	Body          string `json:"body"`
	FromNumber    string `json:"from_number,omitempty"`
}

type smsSender struct {
	cfg        *config.SMSConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewSMSSender creates an SMS client for the dialer platform's text API.
func NewSMSSender(cfg *config.SMSConfig, logger *zap.Logger) SMSSender {
	return &smsSender{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger: logger,
	}
}

// Send posts one message to the provider. A non-2xx response is a provider
// rejection (false, nil); transport failures surface as errors.
func (s *smsSender) Send(ctx context.Context, to, body string) (bool, error) {
	reqBody := smsRequest{
		ContactNumber: to,
		Body:          body,
		FromNumber:    s.cfg.FromNumber,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return false, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.cfg.AuthKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		s.logger.Warn("SMS provider rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("to", to))
		return false, nil
	}

	return true, nil
}
