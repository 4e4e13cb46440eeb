package templates

import (
	"bytes"
	"html/template"
	"log"
)

// ContactEmailProps carries the submitted form fields into the template.
// All values are escaped by html/template; nothing here is trusted HTML.
type ContactEmailProps struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Message string
}

var contactEmailTemplate = template.Must(template.New("contactEmail").Parse(`
<h2 style="font-family: Helvetica, sans-serif; font-size: 20px; font-weight: bold; margin: 0; margin-bottom: 16px;">New contact form submission</h2>
<table role="presentation" border="0" cellpadding="0" cellspacing="0" style="border-collapse: separate; width: 100%;" width="100%">
  <tr>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 12px 4px 0; color: #6b7280; white-space: nowrap;" valign="top">Name</td>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0;" valign="top">{{.Name}}</td>
  </tr>
  <tr>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 12px 4px 0; color: #6b7280; white-space: nowrap;" valign="top">Email</td>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0;" valign="top"><a href="mailto:{{.Email}}" style="color: #2563eb;">{{.Email}}</a></td>
  </tr>
  {{if .Company}}
  <tr>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 12px 4px 0; color: #6b7280; white-space: nowrap;" valign="top">Company</td>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0;" valign="top">{{.Company}}</td>
  </tr>
  {{end}}
  {{if .Phone}}
  <tr>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 12px 4px 0; color: #6b7280; white-space: nowrap;" valign="top">Phone</td>
    <td style="font-family: Helvetica, sans-serif; font-size: 16px; padding: 4px 0;" valign="top">{{.Phone}}</td>
  </tr>
  {{end}}
</table>
<p style="font-family: Helvetica, sans-serif; font-size: 16px; font-weight: bold; margin: 16px 0 8px;">Message</p>
<p style="font-family: Helvetica, sans-serif; font-size: 16px; margin: 0; white-space: pre-wrap;">{{.Message}}</p>`))

// GetContactEmailContent renders the contact notification body.
func GetContactEmailContent(props ContactEmailProps) string {
	var buf bytes.Buffer
	if err := contactEmailTemplate.Execute(&buf, props); err != nil {
		log.Printf("Failed to render contact email content: %v", err)
		return ""
	}
	return buf.String()
}
