package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Talento-api/internal/application/ports"
	"github.com/jhoicas/Talento-api/pkg/config"
	"github.com/jhoicas/Talento-api/pkg/logger"
)

// Verificar en tiempo de compilación que SendGridService implementa EmailService.
var _ ports.EmailService = (*SendGridService)(nil)

const sendGridMailURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridService adaptador que implementa EmailService usando la API REST v3
// de SendGrid. Usa net/http de la librería estándar; no requiere el SDK oficial.
// Si no hay API key configurada, registra el correo en el log y no envía
// (modo desarrollo).
type SendGridService struct {
	cfg        config.MailConfig
	log        *logger.Logger
	httpClient *http.Client
}

// NewSendGridService construye el adaptador.
func NewSendGridService(cfg config.MailConfig, log *logger.Logger) *SendGridService {
	return &SendGridService{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo SendGrid v3 ────────────────────────────

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Send envía un correo transaccional. El contenido del mensaje no se loggea:
// puede contener credenciales temporales.
func (s *SendGridService) Send(ctx context.Context, toEmail, subject, plainText, htmlContent string) error {
	if s.cfg.APIKey == "" {
		s.log.Info().Str("to", toEmail).Str("subject", subject).
			Msg("SENDGRID_API_KEY no configurado: correo registrado, no enviado")
		return nil
	}

	payload := sgRequest{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: toEmail}}}},
		From:             sgAddress{Email: s.cfg.FromEmail, Name: s.cfg.FromName},
		Subject:          subject,
		Content: []sgContent{
			{Type: "text/plain", Value: plainText},
			{Type: "text/html", Value: htmlContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("email: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridMailURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("email: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email: enviar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("email: SendGrid respondió %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
