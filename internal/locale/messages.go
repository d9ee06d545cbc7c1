package locale

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message ids.
const (
	MsgMissingFields = "contact.missing_fields"
	MsgInvalidEmail  = "contact.invalid_email"
	MsgThanks        = "contact.thanks"
	MsgName          = "contact.name"
	MsgEmail         = "contact.email"
	MsgMessage       = "contact.message"
	MsgSend          = "contact.send"
	MsgClose         = "panel.close"
	MsgMenu          = "nav.menu"
	MsgHelp          = "page.help"
	MsgCopied        = "page.copied"
	MsgJump          = "page.jump"
)

var english = []*i18n.Message{
	{ID: MsgMissingFields, Other: "Please fill in all fields"},
	{ID: MsgInvalidEmail, Other: "Please enter a valid email address"},
	{ID: MsgThanks, Other: "Thank you for your message! I will get back to you soon."},
	{ID: MsgName, Other: "Name"},
	{ID: MsgEmail, Other: "Email"},
	{ID: MsgMessage, Other: "Message"},
	{ID: MsgSend, Other: "Send (ctrl+s)"},
	{ID: MsgClose, Other: "close"},
	{ID: MsgMenu, Other: "menu"},
	{ID: MsgHelp, Other: "1-9 sections · enter/c open · t theme · l language · m menu · / jump · y copy · esc close · q quit"},
	{ID: MsgCopied, Other: "Copied to clipboard"},
	{ID: MsgJump, Other: "Jump to: "},
}

var arabic = []*i18n.Message{
	{ID: MsgMissingFields, Other: "يرجى ملء جميع الحقول"},
	{ID: MsgInvalidEmail, Other: "يرجى إدخال بريد إلكتروني صحيح"},
	{ID: MsgThanks, Other: "شكراً لرسالتك! سأرد عليك قريباً."},
	{ID: MsgName, Other: "الاسم"},
	{ID: MsgEmail, Other: "البريد الإلكتروني"},
	{ID: MsgMessage, Other: "الرسالة"},
	{ID: MsgSend, Other: "إرسال (ctrl+s)"},
	{ID: MsgClose, Other: "إغلاق"},
	{ID: MsgMenu, Other: "القائمة"},
	{ID: MsgHelp, Other: "1-9 الأقسام · enter/c فتح · t السمة · l اللغة · m القائمة · / انتقال · y نسخ · esc إغلاق · q خروج"},
	{ID: MsgCopied, Other: "تم النسخ إلى الحافظة"},
	{ID: MsgJump, Other: "انتقال إلى: "},
}

// Catalog looks up localized strings.
type Catalog struct {
	bundle     *i18n.Bundle
	localizers map[Lang]*i18n.Localizer
}

// NewCatalog builds the catalog with the built-in English and Arabic strings.
func NewCatalog() *Catalog {
	bundle := i18n.NewBundle(language.English)
	must(bundle.AddMessages(language.English, english...))
	must(bundle.AddMessages(language.Arabic, arabic...))

	return &Catalog{
		bundle: bundle,
		localizers: map[Lang]*i18n.Localizer{
			English: i18n.NewLocalizer(bundle, string(English)),
			Arabic:  i18n.NewLocalizer(bundle, string(Arabic), string(English)),
		},
	}
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("locale: built-in messages: %v", err))
	}
}

// Text returns the string for id in lang, falling back to English and then
// to the id itself.
func (c *Catalog) Text(lang Lang, id string) string {
	loc, ok := c.localizers[lang]
	if !ok {
		loc = c.localizers[English]
	}
	s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if s != "" {
		return s
	}
	if err != nil {
		return id
	}
	return s
}
