package membership

import "context"

// MemberStore persists registered members. Create must reject a member whose
// email or phone is already stored with ErrDuplicateMember.
type MemberStore interface {
	Create(ctx context.Context, m Member) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	// List returns members in registration order.
	List(ctx context.Context, offset, limit int) ([]Member, error)
	Count(ctx context.Context) (int, error)
	CountByConstituency(ctx context.Context) (map[string]int, error)
}

// ContactStore persists contact form messages.
type ContactStore interface {
	SaveContact(ctx context.Context, c Contact) error
}
