package locale

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLanguage(t *testing.T) {
	for _, tag := range []string{"ar", "fr", "en"} {
		lang, ok := ParseLanguage(tag)
		require.True(t, ok, "tag %q", tag)
		assert.Equal(t, Language(tag), lang)
	}

	for _, tag := range []string{"", "es", "AR", "fr-TN"} {
		_, ok := ParseLanguage(tag)
		assert.False(t, ok, "tag %q", tag)
	}
}

func TestNewManagerDefaultsToFrench(t *testing.T) {
	m := NewManager(context.Background(), &MemoryTagStore{}, zap.NewNop())
	assert.Equal(t, LangFrench, m.Language())
	assert.Equal(t, DirectionLTR, m.Direction())
	assert.False(t, m.IsRTL())
}

func TestNewManagerRestoresPersistedTag(t *testing.T) {
	store := &MemoryTagStore{}
	require.NoError(t, store.Save(context.Background(), "ar"))

	m := NewManager(context.Background(), store, zap.NewNop())
	assert.Equal(t, LangArabic, m.Language())
}

func TestNewManagerIgnoresInvalidPersistedTag(t *testing.T) {
	store := &MemoryTagStore{}
	require.NoError(t, store.Save(context.Background(), "klingon"))

	m := NewManager(context.Background(), store, zap.NewNop())
	assert.Equal(t, LangFrench, m.Language())
}

func TestSetLanguagePersistsTag(t *testing.T) {
	store := &MemoryTagStore{}
	m := NewManager(context.Background(), store, zap.NewNop())

	m.SetLanguage(context.Background(), LangEnglish)
	assert.Equal(t, LangEnglish, m.Language())

	tag, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "en", tag)

	// A restart sees the persisted tag.
	restored := NewManager(context.Background(), store, zap.NewNop())
	assert.Equal(t, LangEnglish, restored.Language())
}

type failingTagStore struct{}

func (failingTagStore) Load(ctx context.Context) (string, error) {
	return "", errors.New("connection refused")
}

func (failingTagStore) Save(ctx context.Context, tag string) error {
	return errors.New("connection refused")
}

func TestSetLanguageSurvivesStoreFailure(t *testing.T) {
	m := NewManager(context.Background(), failingTagStore{}, zap.NewNop())
	assert.Equal(t, LangFrench, m.Language())

	// Persistence fails but the in-memory switch still happens.
	m.SetLanguage(context.Background(), LangArabic)
	assert.Equal(t, LangArabic, m.Language())
	assert.True(t, m.IsRTL())
	assert.Equal(t, DirectionRTL, m.Direction())
}

func TestTranslateLooksUpActiveLanguage(t *testing.T) {
	m := NewManager(context.Background(), &MemoryTagStore{}, zap.NewNop())

	assert.Equal(t, "Services", m.Translate("services"))

	m.SetLanguage(context.Background(), LangArabic)
	assert.Equal(t, "الخدمات", m.Translate("services"))

	m.SetLanguage(context.Background(), LangEnglish)
	assert.Equal(t, "Book Now", m.Translate("bookNow"))
}

func TestTranslateUnknownKeyEchoesKey(t *testing.T) {
	m := NewManager(context.Background(), &MemoryTagStore{}, zap.NewNop())
	assert.Equal(t, "noSuchKey", m.Translate("noSuchKey"))
}

func TestTranslationTablesCoverSameKeys(t *testing.T) {
	base := translations[LangFrench]
	for _, lang := range []Language{LangArabic, LangEnglish} {
		table := translations[lang]
		require.Equal(t, len(base), len(table), "table size for %s", lang)
		for key := range base {
			_, ok := table[key]
			assert.True(t, ok, "key %q missing for %s", key, lang)
		}
	}
}
