package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// SMSService delivers one-time codes to phones. Without a configured gateway
// it degrades to recording the code in the log, which is the intended
// behavior for local development.
type SMSService struct {
	gatewayURL string
	client     *http.Client
	logger     *zap.Logger
}

// NewSMSService creates an SMSService. gatewayURL may be empty.
func NewSMSService(gatewayURL string, logger *zap.Logger) *SMSService {
	return &SMSService{
		gatewayURL: gatewayURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type smsPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendOTP delivers the code for phone out-of-band.
func (s *SMSService) SendOTP(phone, code string) error {
	if s.gatewayURL == "" {
		s.logger.Info("otp generated",
			zap.String("phone", phone),
			zap.String("code", code),
		)
		return nil
	}

	body, err := json.Marshal(smsPayload{
		Phone:   phone,
		Message: fmt.Sprintf("Your MedShare verification code is %s", code),
	})
	if err != nil {
		return err
	}

	resp, err := s.client.Post(s.gatewayURL, "application/json", bytes.NewReader(body))
	if err != nil {
		s.logger.Error("sms gateway request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("sms gateway rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("phone", phone),
		)
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
