package mailer

import (
	"fmt"
	"html"

	"github.com/sitebase-io/sitebase/internal/domain/models"
)

// ContactNotification builds the email sent to the site owner when a new
// contact message arrives.
func ContactNotification(to string, msg models.ContactMessage) Email {
	text := fmt.Sprintf(
		"New contact message received.\n\n"+
			"Name:    %s\n"+
			"Email:   %s\n"+
			"Phone:   %s\n"+
			"Subject: %s\n\n"+
			"%s\n",
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
	)

	htmlBody := fmt.Sprintf(
		"<h2>New contact message</h2>"+
			"<p><strong>Name:</strong> %s<br>"+
			"<strong>Email:</strong> %s<br>"+
			"<strong>Phone:</strong> %s<br>"+
			"<strong>Subject:</strong> %s</p>"+
			"<p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Phone),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message),
	)

	return Email{
		To:       to,
		Subject:  "New contact message: " + msg.Subject,
		TextBody: text,
		HTMLBody: htmlBody,
	}
}
