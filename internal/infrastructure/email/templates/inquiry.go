// Package templates provides email template rendering.
package templates

import (
	"bytes"
	"html/template"
	"log"
)

// InquiryEmailProps carries the contact-form fields into the notification
// email.
type InquiryEmailProps struct {
	Name      string
	Email     string
	Phone     string
	EventType string
	EventDate string
	Message   string
}

var inquiryTemplate = template.Must(template.New("inquiryNotification").Parse(`
<!doctype html>
<html lang="en">
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>New Inquiry</title>
  </head>
  <body style="font-family: Helvetica, sans-serif; font-size: 16px; margin: 0; padding: 24px; background-color: #f6f6f6;">
    <table role="presentation" border="0" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 4px; max-width: 600px; margin: 0 auto; padding: 24px;" width="100%">
      <tbody>
        <tr><td>
          <h2 style="margin: 0 0 16px;">New inquiry from {{.Name}}</h2>
          <p style="margin: 0 0 8px;"><strong>Email:</strong> {{.Email}}</p>
          {{if .Phone}}<p style="margin: 0 0 8px;"><strong>Phone:</strong> {{.Phone}}</p>{{end}}
          <p style="margin: 0 0 8px;"><strong>Event:</strong> {{.EventType}}</p>
          {{if .EventDate}}<p style="margin: 0 0 8px;"><strong>Date:</strong> {{.EventDate}}</p>{{end}}
          {{if .Message}}<p style="margin: 16px 0 0; white-space: pre-wrap;">{{.Message}}</p>{{end}}
        </td></tr>
      </tbody>
    </table>
  </body>
</html>`))

// GetInquiryEmailContent renders the inquiry notification HTML.
func GetInquiryEmailContent(props InquiryEmailProps) string {
	var buf bytes.Buffer
	if err := inquiryTemplate.Execute(&buf, props); err != nil {
		log.Printf("ERROR: Failed to execute inquiry email template: %v", err)
		return ""
	}
	return buf.String()
}
