package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type mailConfig struct {
	user, pass, brevo string
}

func (c mailConfig) GetEmailUser() string        { return c.user }
func (c mailConfig) GetEmailPass() string        { return c.pass }
func (c mailConfig) GetSMTPHost() string         { return "smtp.gmail.com" }
func (c mailConfig) GetSMTPPort() int            { return 587 }
func (c mailConfig) GetBrevoAPIKey() string      { return c.brevo }
func (c mailConfig) GetInquiryRecipient() string { return "phil@vu.co.uk" }
func (c mailConfig) GetEmailFromName() string    { return "The Ai Business" }

func sampleInquiry() Inquiry {
	return Inquiry{
		CompanyName: "Acme <Ltd>",
		Industry:    "Retail",
		ContactName: "Sam Taylor",
		Email:       "sam@acme.test",
		CompanySize: "10-50",
		ReceivedAt:  time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
	}
}

func TestNewSenderSelection(t *testing.T) {
	if _, ok := NewSender(mailConfig{brevo: "key", user: "a@b.c"}).(*BrevoSender); !ok {
		t.Fatalf("expected brevo sender when api key is set")
	}
	if _, ok := NewSender(mailConfig{user: "a@b.c", pass: "secret"}).(*SMTPSender); !ok {
		t.Fatalf("expected smtp sender with gmail credentials")
	}
	s := NewSender(mailConfig{})
	if IsConfigured(s) {
		t.Fatalf("expected disabled sender without credentials")
	}
	if err := s.Send(context.Background(), Message{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestInquiryNotification(t *testing.T) {
	msg, err := InquiryNotification(sampleInquiry(), "phil@vu.co.uk", "The Ai Business")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if msg.To != "phil@vu.co.uk" || msg.ReplyTo != "sam@acme.test" {
		t.Fatalf("unexpected addressing %#v", msg)
	}
	if msg.Subject != "New AI Business Inquiry from Acme <Ltd>" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "Acme &lt;Ltd&gt;") {
		t.Fatalf("expected escaped company name")
	}
	if !strings.Contains(msg.HTML, "Not provided") {
		t.Fatalf("expected phone placeholder")
	}
	if strings.Contains(msg.HTML, "AI Requirements") {
		t.Fatalf("expected comments block to be omitted")
	}
	if !strings.Contains(msg.HTML, "Received on 05/03/2024 at 14:30:00") {
		t.Fatalf("expected received timestamp")
	}
}

func TestInquiryAutoReply(t *testing.T) {
	msg, err := InquiryAutoReply(sampleInquiry(), "The Ai Business")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if msg.To != "sam@acme.test" || msg.Subject != "Thank you for your interest in The Ai Business" {
		t.Fatalf("unexpected message %#v", msg)
	}
	if !strings.Contains(msg.HTML, "Dear Sam Taylor,") {
		t.Fatalf("expected greeting")
	}
}

func TestBrevoSend(t *testing.T) {
	var got brevoEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewBrevoSender("secret", "noreply@example.com", "The Ai Business").WithEndpoint(srv.URL)
	err := s.Send(context.Background(), Message{To: "a@b.c", ReplyTo: "r@b.c", Subject: "Hi", HTML: "<p>x</p>"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if got.Sender.Email != "noreply@example.com" || len(got.To) != 1 || got.To[0].Email != "a@b.c" {
		t.Fatalf("unexpected payload %#v", got)
	}
	if got.ReplyTo == nil || got.ReplyTo.Email != "r@b.c" {
		t.Fatalf("expected reply-to in payload")
	}
}

func TestBrevoSendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad sender", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewBrevoSender("k", "f@b.c", "n").WithEndpoint(srv.URL).Send(context.Background(), Message{To: "a@b.c"})
	if err == nil || !strings.Contains(err.Error(), "status 400") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestSMTPBuildMsgRejectsBadAddress(t *testing.T) {
	s := NewSMTPSender("smtp.gmail.com", 587, "u", "p", "from@example.com", "The Ai Business")
	if _, err := s.buildMsg(Message{To: "not an address"}); err == nil {
		t.Fatalf("expected invalid recipient to fail")
	}
	if _, err := s.buildMsg(Message{To: "to@example.com", ReplyTo: "r@example.com", Subject: "s", HTML: "<p>x</p>"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
