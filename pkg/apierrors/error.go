package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"shoplist/pkg/translator"
)

// JsonErr is the body of every error response.
type JsonErr struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e JsonErr) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("Code: %d, Field: %s, Message: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{Code: code, Message: GetTransErrorMsg(msgKey, lang, nil)}
}

// CreateFieldError reports a failure tied to one request field. The field
// name is available to the message template as {{.Field}} alongside data.
func CreateFieldError(code int, field, msgKey string, data map[string]any, lang string) JsonErr {
	templateData := make(map[string]any, len(data)+1)
	for key, value := range data {
		templateData[key] = value
	}
	templateData["Field"] = field

	return JsonErr{
		Code:    code,
		Message: GetTransErrorMsg(msgKey, lang, templateData),
		Field:   field,
	}
}

// GetTransErrorMsg retrieves the translated error message, falling back to
// the key itself.
func GetTransErrorMsg(msgKey string, lang string, templateData map[string]any) string {
	if translator.Translator == nil {
		return msgKey
	}

	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    msgKey,
		TemplateData: templateData,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
