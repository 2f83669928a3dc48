package feature

import "context"

// Flag names declared in the site document.
const (
	MemberRegistration = "memberRegistration"
	EventManagement    = "eventManagement"
	OnlinePayments     = "onlinePayments"
	MemberDirectory    = "memberDirectory"
	Notifications      = "notifications"
	MultiLanguage      = "multiLanguage"
)

// Flag is a named on/off switch.
type Flag struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Provider resolves feature flags.
type Provider interface {
	// IsEnabled reports whether the flag is on. Unknown flags return
	// false and ErrFlagNotFound.
	IsEnabled(ctx context.Context, name string) (bool, error)

	// ListFlags returns all flags sorted by name.
	ListFlags(ctx context.Context) ([]Flag, error)

	// SetEnabled switches an existing flag.
	SetEnabled(ctx context.Context, name string, enabled bool) error
}

// Config carries deployment overrides of the seeded flags.
type Config struct {
	Overrides map[string]bool `env:"FEATURE_FLAGS"`
}

// Enabled is IsEnabled that treats any error as disabled.
func Enabled(ctx context.Context, p Provider, name string) bool {
	ok, err := p.IsEnabled(ctx, name)
	return err == nil && ok
}
