package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultBundle(t *testing.T) {
	b := Default()
	require.NotNil(t, b)

	assert.Equal(t, []language.Tag{language.German, language.English, language.French}, b.Languages())
	assert.True(t, b.HasKey(language.French, "helpfmt.error.nil_command"))
	assert.Equal(t, `unknown label key "X"`, b.T("helpfmt.error.unknown_label_key", "X"))
	assert.Equal(t, `clé de libellé inconnue "X"`, b.TL(language.French, "helpfmt.error.unknown_label_key", "X"))
}

func TestBundle_Message(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "alpha %s"}))

	assert.Equal(t, "alpha %s", b.Message(language.English, "a"))
	assert.Equal(t, "alpha %s", b.Message(language.Spanish, "a"), "falls back to default language")
	assert.Equal(t, "missing", b.Message(language.English, "missing"))
}

func TestBundle_AddLanguage(t *testing.T) {
	t.Run("new language must match default keys", func(t *testing.T) {
		b := NewEmptyBundle()
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "A", "b": "B"}))

		err := b.AddLanguage(language.German, map[string]string{"a": "A"})
		assert.ErrorIs(t, err, ErrInvalidTranslations)
		assert.False(t, b.HasLanguage(language.German))
	})

	t.Run("updating existing language merges", func(t *testing.T) {
		b := NewEmptyBundle()
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "A"}))
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"b": "B"}))

		assert.True(t, b.HasKey(language.English, "a"))
		assert.Equal(t, "B", b.T("b"))
	})

	t.Run("default language switch", func(t *testing.T) {
		b := NewEmptyBundle()
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "A"}))
		require.NoError(t, b.AddLanguage(language.French, map[string]string{"a": "À"}))

		b.SetDefaultLanguage(language.French)
		assert.Equal(t, language.French, b.GetDefaultLanguage())
		assert.Equal(t, "À", b.T("a"))
	})
}
