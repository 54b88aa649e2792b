package locale

import (
	"context"
	"sync"

	"servigo/config"

	"go.uber.org/zap"
)

// Language is one of the fixed supported language tags.
type Language string

const (
	LangArabic  Language = "ar"
	LangFrench  Language = "fr"
	LangEnglish Language = "en"
)

// Text directions derived from the active language.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// ParseLanguage maps a raw tag to a supported Language. Unknown tags are
// rejected so invalid values are never constructible by callers.
func ParseLanguage(tag string) (Language, bool) {
	switch Language(tag) {
	case LangArabic, LangFrench, LangEnglish:
		return Language(tag), true
	}
	return "", false
}

// Manager holds the process-wide active language, persists it across
// restarts and exposes the translation lookup.
type Manager struct {
	store  TagStore
	logger *zap.Logger

	mu     sync.RWMutex
	active Language
}

// NewManager restores the persisted language tag, falling back to the
// configured default (fr when unset or invalid).
func NewManager(ctx context.Context, store TagStore, logger *zap.Logger) *Manager {
	m := &Manager{store: store, logger: logger, active: defaultLanguage()}

	tag, err := store.Load(ctx)
	if err != nil {
		logger.Warn("locale: failed to load persisted language, using default", zap.Error(err))
		return m
	}
	if lang, ok := ParseLanguage(tag); ok {
		m.active = lang
	}
	return m
}

func defaultLanguage() Language {
	if lang, ok := ParseLanguage(config.AppConfig.DefaultLanguage); ok {
		return lang
	}
	return LangFrench
}

// SetLanguage switches the active language and persists the tag. There is no
// error path for the caller: persistence failures are logged and the
// in-memory state still switches.
func (m *Manager) SetLanguage(ctx context.Context, lang Language) {
	m.mu.Lock()
	m.active = lang
	m.mu.Unlock()

	if err := m.store.Save(ctx, string(lang)); err != nil {
		m.logger.Warn("locale: failed to persist language tag",
			zap.String("language", string(lang)), zap.Error(err))
	}
}

// Language returns the active language tag.
func (m *Manager) Language() Language {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// Translate looks up key in the active language's table. When the key is
// absent it returns the key itself verbatim; it never fails and never
// returns an empty string for a non-empty key.
func (m *Manager) Translate(key string) string {
	table := translations[m.Language()]
	if value, ok := table[key]; ok {
		return value
	}
	return key
}

// IsRTL reports whether the active language is written right to left.
func (m *Manager) IsRTL() bool {
	return m.Language() == LangArabic
}

// Direction returns the document text direction for the active language.
func (m *Manager) Direction() string {
	if m.IsRTL() {
		return DirectionRTL
	}
	return DirectionLTR
}
