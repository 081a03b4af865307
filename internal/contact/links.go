package contact

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	nonDial   = regexp.MustCompile(`[^\d+]`)
	nonDigits = regexp.MustCompile(`\D`)
)

// SubjectPrefix starts the subject of every composed email.
const SubjectPrefix = "Portfolio Contact: "

// encode escapes s the way URI components are escaped in mailto links,
// with spaces as %20 rather than '+'.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Mailto is a plain link to the address.
func Mailto(to string) string {
	return "mailto:" + to
}

// ComposeMailto builds the mailto link that pre-fills subject and body with
// the form contents.
func ComposeMailto(to string, f Form) string {
	subject := SubjectPrefix + f.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", f.Name, f.Email, f.Message)
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, encode(subject), encode(body))
}

// Tel keeps only digits and '+' from phone.
func Tel(phone string) string {
	return "tel:" + nonDial.ReplaceAllString(phone, "")
}

// WhatsApp links to a chat with phone, pre-filled with text. It returns ""
// when phone has no digits.
func WhatsApp(phone, text string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if digits == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, encode(text))
}
