package model

import (
	"time"

	"fogon/internal/domain/entity"

	"github.com/paulmach/orb"
)

// UserModel is the `users` collection document shape, keyed by the
// identity provider uid.
type UserModel struct {
	Email          string         `firestore:"email"`
	Role           string         `firestore:"role"`
	DisplayName    string         `firestore:"displayName"`
	PhotoURL       string         `firestore:"photoURL,omitempty"`
	SavedAddresses []AddressModel `firestore:"savedAddresses,omitempty"`
	SavedCards     []CardModel    `firestore:"savedCards,omitempty"`
	CreatedAt      any            `firestore:"createdAt,omitempty"`
	UpdatedAt      any            `firestore:"updatedAt,omitempty"`
}

// AddressModel is one saved address array element. Coordinates flatten to
// two floats because the store has no point type the clients agree on.
type AddressModel struct {
	ID        string  `firestore:"id"`
	Alias     string  `firestore:"alias"`
	Text      string  `firestore:"text"`
	Latitude  float64 `firestore:"lat"`
	Longitude float64 `firestore:"lng"`
}

// CardModel is one saved card array element: display data only, never a
// full card number.
type CardModel struct {
	ID     string `firestore:"id"`
	Alias  string `firestore:"alias"`
	Brand  string `firestore:"brand"`
	Holder string `firestore:"holder"`
	Last4  string `firestore:"last4"`
}

// ToEntity converts the document into the domain profile.
func (m *UserModel) ToEntity(uid string) *entity.UserProfile {
	addresses := make([]entity.SavedAddress, 0, len(m.SavedAddresses))
	for _, a := range m.SavedAddresses {
		addresses = append(addresses, a.ToEntity())
	}

	cards := make([]entity.SavedCard, 0, len(m.SavedCards))
	for _, c := range m.SavedCards {
		cards = append(cards, c.ToEntity())
	}

	return &entity.UserProfile{
		UID:            uid,
		Email:          m.Email,
		Role:           entity.Role(m.Role),
		DisplayName:    m.DisplayName,
		PhotoURL:       m.PhotoURL,
		SavedAddresses: addresses,
		SavedCards:     cards,
		CreatedAt:      NormalizeTime(m.CreatedAt),
		UpdatedAt:      NormalizeTime(m.UpdatedAt),
	}
}

// ToEntity converts an address array element into its domain shape.
func (m AddressModel) ToEntity() entity.SavedAddress {
	return entity.SavedAddress{
		ID:         m.ID,
		Alias:      m.Alias,
		Text:       m.Text,
		Coordinate: orb.Point{m.Longitude, m.Latitude},
	}
}

// ToEntity converts a card array element into its domain shape.
func (m CardModel) ToEntity() entity.SavedCard {
	return entity.SavedCard{
		ID:     m.ID,
		Alias:  m.Alias,
		Brand:  m.Brand,
		Holder: m.Holder,
		Last4:  m.Last4,
	}
}

// UserFromEntity converts a domain profile into its document shape.
func UserFromEntity(profile *entity.UserProfile) *UserModel {
	addresses := make([]AddressModel, 0, len(profile.SavedAddresses))
	for _, a := range profile.SavedAddresses {
		addresses = append(addresses, AddressFromEntity(a))
	}

	cards := make([]CardModel, 0, len(profile.SavedCards))
	for _, c := range profile.SavedCards {
		cards = append(cards, CardFromEntity(c))
	}

	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &UserModel{
		Email:          profile.Email,
		Role:           string(profile.Role),
		DisplayName:    profile.DisplayName,
		PhotoURL:       profile.PhotoURL,
		SavedAddresses: addresses,
		SavedCards:     cards,
		CreatedAt:      createdAt,
		UpdatedAt:      time.Now(),
	}
}

// AddressFromEntity converts a domain address into its array element shape.
func AddressFromEntity(address entity.SavedAddress) AddressModel {
	return AddressModel{
		ID:        address.ID,
		Alias:     address.Alias,
		Text:      address.Text,
		Latitude:  address.Coordinate.Lat(),
		Longitude: address.Coordinate.Lon(),
	}
}

// CardFromEntity converts a domain card into its array element shape.
func CardFromEntity(card entity.SavedCard) CardModel {
	return CardModel{
		ID:     card.ID,
		Alias:  card.Alias,
		Brand:  card.Brand,
		Holder: card.Holder,
		Last4:  card.Last4,
	}
}
