package prefs

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/belugatempo-dot/census-dashboard/internal/i18n"
)

// LanguageKey is the store key holding the display language.
const LanguageKey = "language"

// Preference reads and updates the language preference. Updates are
// serialized so concurrent toggles never lose a flip.
type Preference struct {
	mu    sync.Mutex
	store Store
}

// New returns a Preference backed by store.
func New(store Store) *Preference {
	return &Preference{store: store}
}

// Get returns the stored language, or i18n.Default when nothing valid
// is stored.
func (p *Preference) Get(ctx context.Context) (i18n.Language, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.load(ctx)
}

// Set stores l.
func (p *Preference) Set(ctx context.Context, l i18n.Language) error {
	if !l.Valid() {
		return eris.Errorf("prefs: unsupported language %q", l)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return eris.Wrap(p.store.Save(ctx, LanguageKey, string(l)), "prefs: set language")
}

// Toggle flips between English and Chinese and returns the new value.
func (p *Preference) Toggle(ctx context.Context) (i18n.Language, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cur, err := p.load(ctx)
	if err != nil {
		return "", err
	}
	next := cur.Toggle()
	if err := p.store.Save(ctx, LanguageKey, string(next)); err != nil {
		return "", eris.Wrap(err, "prefs: toggle language")
	}
	return next, nil
}

func (p *Preference) load(ctx context.Context) (i18n.Language, error) {
	v, ok, err := p.store.Load(ctx, LanguageKey)
	if err != nil {
		return "", eris.Wrap(err, "prefs: load language")
	}
	if !ok {
		return i18n.Default, nil
	}
	l := i18n.Language(v)
	if !l.Valid() {
		zap.L().Warn("prefs: ignoring stored language", zap.String("value", v))
		return i18n.Default, nil
	}
	return l, nil
}
