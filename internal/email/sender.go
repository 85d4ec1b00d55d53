package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para avisar que el reporte esta listo.
type Sender interface {
	SendReportReady(ctx context.Context, toEmail, mbtiType, packageID string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendReportReady(_ context.Context, _, _, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
