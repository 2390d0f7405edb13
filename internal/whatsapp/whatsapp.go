package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hmse-unipi/portal/internal/format"
	"github.com/hmse-unipi/portal/internal/model"
)

// Link is a wa.me deep link opening a chat with number, pre-filled with
// message. number has no leading "+".
func Link(number, message string) string {
	number = strings.TrimPrefix(number, "+")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// RegistrationMessage asks the organisers about registering for e.
func RegistrationMessage(e *model.Event) string {
	var b strings.Builder
	b.WriteString("Halo, saya ingin mendaftar untuk event:\n\n")
	fmt.Fprintf(&b, "*%s*\n", e.Title)
	fmt.Fprintf(&b, "Tanggal: %s\n", format.Date(e.Date))
	fmt.Fprintf(&b, "Waktu: %s\n", e.Time)
	fmt.Fprintf(&b, "Lokasi: %s\n", e.Location)
	fmt.Fprintf(&b, "Biaya: %s\n\n", format.Price(e.Price))
	b.WriteString("Mohon informasi lebih lanjut mengenai cara pendaftaran. Terima kasih!")
	return b.String()
}

// RegistrationLink is Link with RegistrationMessage for e.
func RegistrationLink(number string, e *model.Event) string {
	return Link(number, RegistrationMessage(e))
}
