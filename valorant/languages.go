package valorant

import "fmt"

// Language is a display-language tag accepted by valorant-api.com.
// Localized fields (display names, descriptions) are returned in the
// selected language.
type Language string

const (
	LanguageArabic             Language = "ar-AE"
	LanguageGerman             Language = "de-DE"
	LanguageEnglish            Language = "en-US"
	LanguageSpanishSpain       Language = "es-ES"
	LanguageSpanishMexico      Language = "es-MX"
	LanguageFrench             Language = "fr-FR"
	LanguageIndonesian         Language = "id-ID"
	LanguageItalian            Language = "it-IT"
	LanguageJapanese           Language = "ja-JP"
	LanguageKorean             Language = "ko-KR"
	LanguagePolish             Language = "pl-PL"
	LanguagePortuguese         Language = "pt-BR"
	LanguageRussian            Language = "ru-RU"
	LanguageThai               Language = "th-TH"
	LanguageTurkish            Language = "tr-TR"
	LanguageVietnamese         Language = "vi-VN"
	LanguageChineseSimplified  Language = "zh-CN"
	LanguageChineseTraditional Language = "zh-TW"
)

// Languages returns every language tag the API accepts
func Languages() []Language {
	return []Language{
		LanguageArabic,
		LanguageGerman,
		LanguageEnglish,
		LanguageSpanishSpain,
		LanguageSpanishMexico,
		LanguageFrench,
		LanguageIndonesian,
		LanguageItalian,
		LanguageJapanese,
		LanguageKorean,
		LanguagePolish,
		LanguagePortuguese,
		LanguageRussian,
		LanguageThai,
		LanguageTurkish,
		LanguageVietnamese,
		LanguageChineseSimplified,
		LanguageChineseTraditional,
	}
}

// IsValid reports whether the tag is accepted by the API
func (l Language) IsValid() bool {
	for _, known := range Languages() {
		if l == known {
			return true
		}
	}
	return false
}

// String returns the raw language tag
func (l Language) String() string {
	return string(l)
}

// ParseLanguage converts a raw tag into a Language, failing with
// ErrInvalidLanguage for anything outside the supported set
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
	}
	return l, nil
}
