package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Submission is one contact form post. Minimum lengths follow the public
// form: short names and one-word messages are rejected before dispatch.
type Submission struct {
	FullName      string `json:"full_name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contact_number,omitempty" validate:"omitempty,min=10"`
	Subject       string `json:"subject" validate:"required,min=5"`
	Message       string `json:"message" validate:"required,min=10"`
}

var validate = validator.New()

// fieldMessages are the user-facing validation errors, keyed by struct field.
var fieldMessages = map[string]string{
	"FullName":      "Name must be at least 2 characters",
	"Email":         "Please enter a valid email address",
	"ContactNumber": "Please enter a valid phone number",
	"Subject":       "Subject must be at least 5 characters",
	"Message":       "Message must be at least 10 characters",
}

// Validate checks a submission and returns per-field error messages, empty
// when the submission is valid.
func Validate(s *Submission) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			msg, ok := fieldMessages[fe.StructField()]
			if !ok {
				msg = "Invalid value"
			}
			out[fe.StructField()] = msg
		}
		return out
	}
	out["form"] = "Invalid form data"
	return out
}

// Dispatcher relays validated submissions to an EmailJS-compatible endpoint.
// With no service configured it only logs, which is enough for local runs.
type Dispatcher struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Client     *http.Client
}

func NewDispatcher() *Dispatcher {
	endpoint := os.Getenv("EMAILJS_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://api.emailjs.com/api/v1.0/email/send"
	}
	return &Dispatcher{
		Endpoint:   endpoint,
		ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Send logs the submission and relays it when a service is configured.
// No persistence: the catalog tables are the only store this service touches.
func (d *Dispatcher) Send(s *Submission) error {
	log.Printf("contact submission: from=%q email=%q subject=%q", s.FullName, s.Email, s.Subject)

	if d.ServiceID == "" || d.TemplateID == "" {
		log.Println("contact relay not configured, submission logged only")
		return nil
	}

	number := s.ContactNumber
	if number == "" {
		number = "Not provided"
	}
	payload := map[string]interface{}{
		"service_id":  d.ServiceID,
		"template_id": d.TemplateID,
		"user_id":     d.PublicKey,
		"template_params": map[string]string{
			"from_name":      s.FullName,
			"from_email":     s.Email,
			"contact_number": number,
			"subject":        s.Subject,
			"message":        s.Message,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := d.Client.Post(d.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contact relay: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("contact relay: status %d", resp.StatusCode)
	}
	return nil
}
