package response

import (
	"time"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

// Created carries the identifier of a newly inserted record, rendered
// as a string the way the store-native IDs appear everywhere else.
type Created struct {
	ID string `json:"_id"`
}

type NGO struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	RegistrationID string    `json:"registration_id"`
	Category       string    `json:"category"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewNGO(n domain.NGO) NGO {
	return NGO{
		ID:             n.ID.String(),
		Name:           n.Name,
		RegistrationID: n.RegistrationID,
		Category:       string(n.Category),
		City:           n.City,
		State:          n.State,
		Verified:       n.Verified,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func NewNGOs(ngos []domain.NGO) []NGO {
	out := make([]NGO, len(ngos))
	for i, n := range ngos {
		out[i] = NewNGO(n)
	}

	return out
}
