package mailer

import (
	"fmt"
	"net/http"

	"bountyboard/pkg/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Mailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	portalURL string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromEmail: cfg.InviteFromEmail,
		fromName:  cfg.InviteFromName,
		portalURL: cfg.PortalBaseURL,
	}
}

// SendInvite delivers an influencer invite code to the given address.
func (m *Mailer) SendInvite(toEmail, inviteCode, expiresAt string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail("", toEmail)
	subject := "You're invited to the BountyBoard influencer portal"

	plain := fmt.Sprintf(
		"You've been invited to apply as an influencer.\n\nInvite code: %s\nApply at: %s/apply?code=%s\n\nThis code expires at %s and can only be used once.",
		inviteCode, m.portalURL, inviteCode, expiresAt,
	)
	html := fmt.Sprintf(
		"<p>You've been invited to apply as an influencer.</p><p>Invite code: <strong>%s</strong></p><p><a href=\"%s/apply?code=%s\">Apply here</a></p><p>This code expires at %s and can only be used once.</p>",
		inviteCode, m.portalURL, inviteCode, expiresAt,
	)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send invite email: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
