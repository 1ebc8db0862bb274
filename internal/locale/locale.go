package locale

import "strings"

const (
	LanguageChinese = "zh"
	LanguageEnglish = "en"
)

// DefaultLanguage is used when neither the profile nor the request names a supported language.
const DefaultLanguage = LanguageEnglish

type Preference struct {
	Language string
	Locale   string
}

func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "zh") || trimmed == "cn" {
		return LanguageChinese
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

func LanguageFromAcceptLanguage(header string) string {
	trimmed := strings.ToLower(strings.TrimSpace(header))
	if trimmed == "" {
		return ""
	}
	for _, part := range strings.Split(trimmed, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if language := NormalizeLanguage(tag); language != "" {
			return language
		}
	}
	return ""
}

// Resolve picks the first supported language from the candidates, falling back to DefaultLanguage.
func Resolve(candidates ...string) string {
	for _, candidate := range candidates {
		if language := NormalizeLanguage(candidate); language != "" {
			return language
		}
	}
	return DefaultLanguage
}

func PreferenceForLanguage(language string) Preference {
	if NormalizeLanguage(language) == LanguageChinese {
		return Preference{Language: LanguageChinese, Locale: "zh_CN"}
	}
	return Preference{Language: LanguageEnglish, Locale: "en_US"}
}
