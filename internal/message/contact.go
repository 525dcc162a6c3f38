package message

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/meaeduarda/cronossolutions/internal/domain"
)

// ContactForm is the site's contact form payload.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var knownDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com",
	"aol.com", "protonmail.com", "zoho.com", "yandex.com", "mail.com",
	"gmx.com", "live.com", "msn.com", "bol.com.br", "uol.com.br",
	"terra.com.br", "ig.com.br", "r7.com", "globo.com", "oi.com.br",
	"empresa.com", "empresa.com.br", "company.com", "org.com",
	"edu.br", "usp.br", "ufmg.br", "unb.br", "ufrgs.br",
	"ifsp.edu.br", "ifmg.edu.br", "senac.br", "senai.br",
}

var validExtensions = []string{".com", ".com.br", ".br", ".net", ".org", ".edu", ".gov", ".mil", ".info"}

var disposableDomains = []string{
	"tempmail.com", "temp-mail.org", "guerrillamail.com", "mailinator.com",
	"10minutemail.com", "yopmail.com", "trashmail.com", "fakeinbox.com",
	"throwawaymail.com", "disposablemail.com",
}

// EmailCheck is the outcome of ValidateEmail. Warning is set for accepted
// addresses on domains outside the known list.
type EmailCheck struct {
	Valid   bool
	Warning bool
	Message string
}

// ValidateEmail applies the contact form's email rules.
func ValidateEmail(email string) EmailCheck {
	email = strings.TrimSpace(email)
	if !emailRegexp.MatchString(email) {
		return EmailCheck{Message: "Formato de email inválido. Use: usuario@dominio.com"}
	}
	host := strings.ToLower(email[strings.LastIndex(email, "@")+1:])
	if !strings.Contains(host, ".") {
		return EmailCheck{Message: "Domínio de email inválido. Deve conter um ponto (ex: .com, .com.br)"}
	}

	hasExt := false
	for _, ext := range validExtensions {
		if strings.HasSuffix(host, ext) {
			hasExt = true
			break
		}
	}
	if !hasExt {
		return EmailCheck{Message: "Extensão de domínio não reconhecida. Use .com, .com.br, .br, etc."}
	}

	for _, d := range disposableDomains {
		if strings.Contains(host, d) {
			return EmailCheck{Message: "Não aceitamos emails temporários/disponíveis."}
		}
	}

	for _, d := range knownDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return EmailCheck{Valid: true, Message: "Email válido!"}
		}
	}
	return EmailCheck{Valid: true, Warning: true, Message: "Email aceito. Verifique se o domínio está correto."}
}

// ValidationError carries a message that is safe to show to the visitor.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidContact }

// Normalize trims every field.
func (f *ContactForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
}

// Validate checks required fields and the email address. The returned
// EmailCheck carries a warning for unusual but accepted domains.
func (f ContactForm) Validate() (EmailCheck, error) {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.Message) == "" {
		return EmailCheck{}, &ValidationError{Message: "Por favor, preencha Nome, Email e Mensagem."}
	}
	check := ValidateEmail(f.Email)
	if !check.Valid {
		return check, &ValidationError{Message: check.Message}
	}
	return check, nil
}

// ComposeContact formats a validated contact form.
func ComposeContact(f ContactForm, l Labels) string {
	subject := strings.TrimSpace(f.Subject)
	if subject == "" {
		subject = l.NoSubject
	}
	var b strings.Builder
	b.WriteString(l.ContactHeading)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", l.ContactName, strings.TrimSpace(f.Name))
	fmt.Fprintf(&b, "%s %s\n", l.ContactEmail, strings.TrimSpace(f.Email))
	fmt.Fprintf(&b, "%s %s\n", l.ContactSubject, subject)
	b.WriteString(l.ContactMessage)
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(f.Message))
	b.WriteString("\n\n")
	b.WriteString(l.ContactFooter)
	return b.String()
}
