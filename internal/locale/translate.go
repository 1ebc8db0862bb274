package locale

import "fmt"

// Pick returns the text matching the language, defaulting to English.
func Pick(language, english, chinese string) string {
	if NormalizeLanguage(language) == LanguageChinese {
		if chinese != "" {
			return chinese
		}
		return english
	}
	if english != "" {
		return english
	}
	return chinese
}

// Pickf formats the text picked for the language with args.
func Pickf(language, english, chinese string, args ...any) string {
	return fmt.Sprintf(Pick(language, english, chinese), args...)
}
