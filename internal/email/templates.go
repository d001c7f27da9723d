package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title    string
	Heading  string
	Brand    string
	CTALabel string
	CTAURL   template.URL
}

// Inquiry is the contact form content mailed to the business.
type Inquiry struct {
	CompanyName string
	Industry    string
	ContactName string
	Email       string
	Phone       string
	CompanySize string
	Comments    string
	ReceivedAt  time.Time
}

type inquiryNotificationData struct {
	baseEmailData
	Inquiry
	ReceivedOn string
}

type inquiryAutoReplyData struct {
	baseEmailData
	ContactName string
	CompanyName string
}

// InquiryNotification builds the mail sent to the business inbox.
func InquiryNotification(in Inquiry, recipient, brand string) (Message, error) {
	if strings.TrimSpace(in.Phone) == "" {
		in.Phone = "Not provided"
	}
	received := in.ReceivedAt
	if received.IsZero() {
		received = time.Now()
	}
	content, err := renderEmailTemplate("inquiry_notification.html", inquiryNotificationData{
		baseEmailData: baseEmailData{
			Title:    "New AI Business Inquiry",
			Heading:  "New AI Business Inquiry",
			Brand:    brand,
			CTALabel: "Reply to " + in.ContactName,
			CTAURL:   template.URL("mailto:" + in.Email),
		},
		Inquiry:    in,
		ReceivedOn: received.Format("02/01/2006 at 15:04:05"),
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      recipient,
		ReplyTo: in.Email,
		Subject: fmt.Sprintf(subjectInquiryNotificationFmt, in.CompanyName),
		HTML:    content,
	}, nil
}

// InquiryAutoReply builds the acknowledgement sent to the submitter.
func InquiryAutoReply(in Inquiry, brand string) (Message, error) {
	content, err := renderEmailTemplate("inquiry_auto_reply.html", inquiryAutoReplyData{
		baseEmailData: baseEmailData{
			Title:   "Welcome to The Future of Business",
			Heading: "Welcome to The Future of Business",
			Brand:   brand,
		},
		ContactName: in.ContactName,
		CompanyName: in.CompanyName,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      in.Email,
		Subject: fmt.Sprintf(subjectInquiryAutoReplyFmt, brand),
		HTML:    content,
	}, nil
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}
