//go:build unit || e2e

package builder

import (
	"staykit/internal/auth"
	"staykit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileBuilder struct {
	ID       string
	FullName string
	Email    string
	Phone    string
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		ID:       uuid.NewString(),
		FullName: "Nguyen Van A",
		Email:    "guest@example.com",
		Phone:    "+84901234567",
	}
}

func (b *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(b)
	return b
}

func (b *ProfileBuilder) BuildView() *queries.ProfileView {
	return &queries.ProfileView{
		ID:       b.ID,
		FullName: b.FullName,
		Email:    b.Email,
		Phone:    b.Phone,
	}
}

func (b *ProfileBuilder) BuildDomain() *auth.Profile {
	return &auth.Profile{
		ID:       b.ID,
		FullName: b.FullName,
		Email:    b.Email,
		Phone:    b.Phone,
	}
}

func (b *ProfileBuilder) WithEmail(email string) *ProfileBuilder {
	b.Email = email
	return b
}
