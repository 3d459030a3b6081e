package model

import (
	"testing"
	"time"

	"fogon/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	reference := time.Date(2024, 6, 15, 20, 30, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		value any
		want  time.Time
	}{
		{name: "native time", value: reference, want: reference},
		{name: "time pointer", value: &reference, want: reference},
		{name: "nil time pointer", value: (*time.Time)(nil), want: time.Time{}},
		{name: "rfc3339 string", value: "2024-06-15T20:30:00Z", want: reference},
		{name: "rfc3339 with offset", value: "2024-06-15T14:30:00-06:00", want: reference},
		{name: "garbage string", value: "ayer en la noche", want: time.Time{}},
		{name: "epoch seconds", value: int64(1718483400), want: reference},
		{name: "epoch millis", value: int64(1718483400000), want: reference},
		{name: "epoch millis as float", value: float64(1718483400000), want: reference},
		{name: "zero epoch", value: int64(0), want: time.Time{}},
		{
			name:  "provider wrapper",
			value: map[string]any{"seconds": int64(1718483400), "nanos": int64(0)},
			want:  reference,
		},
		{
			name:  "client wrapper",
			value: map[string]any{"_seconds": float64(1718483400), "_nanoseconds": float64(0)},
			want:  reference,
		},
		{name: "empty wrapper", value: map[string]any{}, want: time.Time{}},
		{name: "nil", value: nil, want: time.Time{}},
		{name: "unrelated type", value: []string{"2024"}, want: time.Time{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTime(tc.value)
			assert.True(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}
}

func TestUserModel_AddressRoundTrip(t *testing.T) {
	address := entity.SavedAddress{
		ID:         "addr-1",
		Alias:      "Casa",
		Text:       "Av. Juárez 123, Centro",
		Coordinate: orb.Point{-99.1332, 19.4326},
	}

	model := AddressFromEntity(address)
	assert.Equal(t, 19.4326, model.Latitude)
	assert.Equal(t, -99.1332, model.Longitude)

	assert.Equal(t, address, model.ToEntity())
}

func TestUserModel_RoundTrip(t *testing.T) {
	profile := &entity.UserProfile{
		UID:         "uid-1",
		Email:       "ana@example.com",
		Role:        entity.RoleCustomer,
		DisplayName: "Ana",
		SavedCards: []entity.SavedCard{
			{ID: "card-1", Alias: "Nómina", Brand: "Visa", Holder: "Ana López", Last4: "4242"},
		},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	model := UserFromEntity(profile)
	got := model.ToEntity("uid-1")

	assert.Equal(t, profile.Email, got.Email)
	assert.Equal(t, profile.Role, got.Role)
	assert.Equal(t, profile.DisplayName, got.DisplayName)
	require.Len(t, got.SavedCards, 1)
	assert.Equal(t, profile.SavedCards[0], got.SavedCards[0])
	assert.True(t, profile.CreatedAt.Equal(got.CreatedAt))
	assert.False(t, got.UpdatedAt.IsZero())
}
