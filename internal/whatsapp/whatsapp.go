// Package whatsapp builds the wa.me deep links the storefront hands
// orders and inquiries to. There is no API call behind checkout: the
// link opens a prefilled chat and the conversation takes over.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/cart"
)

const inquiryText = "Hello! I'm interested in learning more about UVC Solar products and services."

// FormatNaira renders a whole-Naira amount with the currency symbol and
// thousands grouping, no decimals.
func FormatNaira(amount int64) string {
	digits := fmt.Sprintf("%d", amount)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return "₦" + b.String()
}

// OrderMessage assembles the plain-text order summary: the customer
// block, one line per cart item, and the grand total.
func OrderMessage(name, whatsappNumber, address string, items []cart.Item, total int64) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("• %s (Qty: %d) - %s", item.Name, item.Quantity, FormatNaira(item.Subtotal())))
	}

	return fmt.Sprintf(
		"🛒 New Order from UVC Solar Website\n\n"+
			"👤 Customer: %s\n"+
			"📞 WhatsApp: %s\n"+
			"📍 Delivery Address: %s\n\n"+
			"📦 Order Items:\n%s\n\n"+
			"💰 Total Amount: %s\n\n"+
			"Please confirm this order and provide payment instructions. Thank you!",
		name, whatsappNumber, address, strings.Join(lines, "\n"), FormatNaira(total))
}

// Link builds the deep link that opens a chat with the store number,
// prefilled with text.
func Link(number, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, encoded)
}

// InquiryLink is the chat-widget quick action: a prefilled general
// inquiry to the store number.
func InquiryLink(number string) string {
	return Link(number, inquiryText)
}
