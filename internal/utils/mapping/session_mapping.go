package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/models"
	"github.com/SscSPs/business_panel/internal/utils"
)

// ToModelSession seals the token and flattens the cached user for storage.
func ToModelSession(s domain.Session, sealer *utils.TokenSealer) (models.Session, error) {
	sealed, err := sealer.Seal(s.Token)
	if err != nil {
		return models.Session{}, fmt.Errorf("sealing session token: %w", err)
	}
	m := models.Session{
		ID:          s.ID,
		SealedToken: sealed,
		ExpiresAt:   s.ExpiresAt,
		CreatedAt:   s.CreatedAt,
	}
	if s.User != nil {
		if m.User, err = json.Marshal(s.User); err != nil {
			return models.Session{}, fmt.Errorf("encoding session user: %w", err)
		}
	}
	return m, nil
}

// ToDomainSession opens the sealed token. A token sealed with another secret
// fails with utils.ErrUnsealFailed.
func ToDomainSession(m models.Session, sealer *utils.TokenSealer) (domain.Session, error) {
	token, err := sealer.Open(m.SealedToken)
	if err != nil {
		return domain.Session{}, err
	}
	s := domain.Session{
		ID:        m.ID,
		Token:     token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
	if len(m.User) > 0 && string(m.User) != "null" {
		var user domain.User
		if err := json.Unmarshal(m.User, &user); err != nil {
			return domain.Session{}, fmt.Errorf("decoding session user: %w", err)
		}
		s.User = &user
	}
	return s, nil
}
