// Package i18n provides translations for user-facing strings.
package i18n

// Language represents a supported language.
type Language string

const (
	// English is the English language.
	English Language = "en"
	// Finnish is the Finnish language.
	Finnish Language = "fi"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = Language(English)

// translations maps language codes to translation keys and their values.
var translations = map[Language]map[string]string{
	English: {
		"home.title":               "Ironweek",
		"home.tagline":             "Your training week, planned and tracked.",
		"language.picker.label":    "Language",
		"language.name.en":         "English",
		"language.name.fi":         "Suomi",
		"status.planned":           "Planned",
		"status.partial":           "In progress",
		"status.completed":         "Completed",
		"status.skipped":           "Skipped",
		"status.rest":              "Rest day",
		"insight.volume.up":        "Your training volume is trending up. Keep it going!",
		"insight.volume.down":      "Your training volume has dropped recently. Consider an easier week to get back on track.",
		"insight.consistency.high": "Excellent consistency. You rarely miss a planned session.",
		"insight.consistency.low":  "You've been missing sessions. A lighter program might be easier to stick to.",
		"insight.focus":            "Most of your training volume goes to: %s.",
		"nutrition.streak":         "Days in a row on target",
	},
	Finnish: {
		"home.title":               "Ironweek",
		"home.tagline":             "Treeniviikkosi, suunniteltuna ja seurattuna.",
		"language.picker.label":    "Kieli",
		"language.name.en":         "English",
		"language.name.fi":         "Suomi",
		"status.planned":           "Suunniteltu",
		"status.partial":           "Kesken",
		"status.completed":         "Valmis",
		"status.skipped":           "Väliin jäänyt",
		"status.rest":              "Lepopäivä",
		"insight.volume.up":        "Harjoitusvolyymisi on nousussa. Jatka samaan malliin!",
		"insight.volume.down":      "Harjoitusvolyymisi on laskenut viime aikoina. Kevyempi viikko voi auttaa pääsemään takaisin rytmiin.",
		"insight.consistency.high": "Erinomainen säännöllisyys. Jätät harvoin treenin väliin.",
		"insight.consistency.low":  "Treenejä on jäänyt väliin. Kevyempi ohjelma voi olla helpompi pitää.",
		"insight.focus":            "Suurin osa harjoitusvolyymistasi kohdistuu lihasryhmään: %s.",
		"nutrition.streak":         "Päivää putkeen tavoitteessa",
	},
}

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{English, Finnish}
}

// IsSupported checks if a language is supported.
func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// Translate returns the translation for the given key in the specified language.
// If the key is not found, it falls back to the default language.
// If still not found, it returns the key itself.
func Translate(lang Language, key string) string {
	// Try the requested language.
	if langTranslations, ok := translations[lang]; ok {
		if translation, ok := langTranslations[key]; ok {
			return translation
		}
	}

	// Fallback to default language.
	if lang != DefaultLanguage {
		if langTranslations, ok := translations[DefaultLanguage]; ok {
			if translation, ok := langTranslations[key]; ok {
				return translation
			}
		}
	}

	// Return the key itself if no translation found.
	return key
}
