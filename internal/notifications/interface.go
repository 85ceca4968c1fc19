package notifications

import "github.com/redditpersona/persona-bot/internal/models"

// NotificationInterface defines the contract for persona delivery channels
type NotificationInterface interface {
	SendPersona(persona *models.Persona, reportText string) error
}
