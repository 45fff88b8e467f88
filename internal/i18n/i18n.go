package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	MsgNow           = "now"
	MsgUpNext        = "upNext"
	MsgTimeLeft      = "timeLeft"
	MsgSubtasks      = "subtasks"
	MsgNoActiveTasks = "noActiveTasks"
	MsgTimeline      = "timeline"
	MsgComplete      = "complete"
	MsgNext          = "next"
	MsgScroll        = "scroll"
	MsgQuit          = "quit"
	MsgImage         = "image"
	MsgSimulated     = "simulated"
)

// Translator resolves UI labels for one language, falling back to English and
// then to the message id.
type Translator struct {
	localizer *goi18n.Localizer
	lang      string
}

func NewBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", name, err)
		}
	}
	return bundle, nil
}

func New(lang string) (*Translator, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, lang, language.English.String()),
		lang:      lang,
	}, nil
}

// MustNew is New for the embedded locales, which are known to parse.
func MustNew(lang string) *Translator {
	tr, err := New(lang)
	if err != nil {
		panic(err)
	}
	return tr
}

func (t *Translator) Lang() string {
	if t == nil {
		return language.English.String()
	}
	return t.lang
}

func (t *Translator) T(id string) string {
	return t.TData(id, nil)
}

func (t *Translator) TData(id string, data map[string]any) string {
	if t == nil || t.localizer == nil {
		return id
	}
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
