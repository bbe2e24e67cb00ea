package translator

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageEn = "en"
	LanguagePt = "pt"
)

// InitTranslator loads <lang>.toml from the folder for each supported
// language. A missing file is logged and skipped; English stays the default.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	languages := cfg.SupportedLanguages
	if len(languages) == 0 {
		languages = []string{LanguageEn}
	}

	for _, lang := range languages {
		path := filepath.Join(cfg.TranslationFolder, lang+".toml")
		if _, err := Translator.LoadMessageFile(path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", path), zap.Error(err))
		}
	}
}

// Supported reports whether lang has a translation file.
func Supported(lang string) bool {
	if Translator == nil {
		return lang == LanguageEn
	}
	for _, tag := range Translator.LanguageTags() {
		base, _ := tag.Base()
		if base.String() == lang {
			return true
		}
	}
	return false
}
