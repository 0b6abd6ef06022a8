package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TeamInvitationEmailData holds data for the team invitation email.
type TeamInvitationEmailData struct {
	Email          string
	FirstName      string
	TeamName       string
	RoleName       string
	InviterName    string
	Link           string
	ExpiresInHours int
}

// WelcomeEmailData holds data for the welcome email.
type WelcomeEmailData struct {
	Email     string
	FirstName string
}

// EmailService is the notification port invoked to deliver invitation links
// and account emails. Delivery failures propagate to the caller.
type EmailService interface {
	SendTeamInvitation(ctx context.Context, data *TeamInvitationEmailData) error
	SendWelcomeMessage(ctx context.Context, data *WelcomeEmailData) error
}
