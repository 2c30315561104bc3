package ports

import "context"

// EmailService puerto de envío de correo transaccional (credenciales
// temporales, notificaciones). La composición y la entrega confiable quedan
// fuera del núcleo: un fallo de correo no revierte la operación de negocio.
type EmailService interface {
	Send(ctx context.Context, toEmail, subject, plainText, htmlContent string) error
}
