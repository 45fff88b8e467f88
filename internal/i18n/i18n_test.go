package i18n

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatorLanguages(t *testing.T) {
	en := MustNew("en")
	ru := MustNew("ru")

	assert.Equal(t, "No active tasks.", en.T(MsgNoActiveTasks))
	assert.Equal(t, "Нет активных задач.", ru.T(MsgNoActiveTasks))
	assert.Equal(t, "Сейчас", ru.T(MsgNow))
	assert.Equal(t, "ru", ru.Lang())
}

func TestTranslatorFallbacks(t *testing.T) {
	de := MustNew("de")
	assert.Equal(t, "Time left", de.T(MsgTimeLeft), "unknown language falls back to English")
	assert.Equal(t, "missing.id", de.T("missing.id"))

	var nilTr *Translator
	assert.Equal(t, MsgNow, nilTr.T(MsgNow))
	assert.Equal(t, "en", nilTr.Lang())
}

func TestTranslatorTemplateData(t *testing.T) {
	en := MustNew("en")
	assert.Equal(t, "simulated +31m0s", en.TData(MsgSimulated, map[string]any{"Offset": "31m0s"}))
}

func TestLocalesHaveSameKeys(t *testing.T) {
	read := func(name string) map[string]string {
		b, err := localeFS.ReadFile("locales/" + name)
		require.NoError(t, err)
		var m map[string]string
		require.NoError(t, json.Unmarshal(b, &m))
		return m
	}
	en := read("active.en.json")
	ru := read("active.ru.json")
	require.Equal(t, len(en), len(ru))
	for key := range en {
		assert.Contains(t, ru, key)
	}
	for _, id := range []string{MsgNow, MsgUpNext, MsgTimeLeft, MsgSubtasks, MsgNoActiveTasks, MsgTimeline,
		MsgComplete, MsgNext, MsgScroll, MsgQuit, MsgImage, MsgSimulated} {
		assert.Contains(t, en, id)
	}
}
