package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pensees/internal/config"
)

type ContactRequest struct {
	Name        string `json:"name" validate:"required"`
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

// ContactService relays contact-form submissions to the external
// automation webhook. Only the HTTP status of the response is consumed.
type ContactService interface {
	Send(ctx context.Context, req ContactRequest) error
}

type contactService struct {
	cfg    *config.Config
	client *http.Client
}

func NewContactService(cfg *config.Config) ContactService {
	return &contactService{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *contactService) Send(ctx context.Context, req ContactRequest) error {
	if s.cfg.Contact.WebhookURL == "" {
		return fmt.Errorf("contact webhook is not configured")
	}

	payload := map[string]interface{}{
		"name":        req.Name,
		"senderEmail": req.SenderEmail,
		"subject":     req.Subject,
		"message":     req.Message,
		"app":         s.cfg.Contact.AppName,
		"timestamp":   time.Now().UnixMilli(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not encode contact payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Contact.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("could not reach contact webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("contact webhook answered %d", resp.StatusCode)
	}

	return nil
}
