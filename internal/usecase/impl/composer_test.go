package impl

import (
	"testing"

	"homeradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRent_IndianGrouping(t *testing.T) {
	tests := []struct {
		name string
		rent float64
		want string
	}{
		{name: "thousands", rent: 9000, want: "9,000"},
		{name: "tens of thousands", rent: 25000, want: "25,000"},
		{name: "lakh", rent: 150000, want: "1,50,000"},
		{name: "crore", rent: 12500000, want: "1,25,00,000"},
		{name: "drops fraction", rent: 12000.75, want: "12,001"},
		{name: "small", rent: 500, want: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRent(tt.rent))
		})
	}
}

func TestComposeNewListing(t *testing.T) {
	event := &entity.ListingEvent{
		ListingID: uuid.New(),
		Title:     "2BHK in Koramangala",
		Rent:      25000,
		Latitude:  12.9352,
		Longitude: 77.6245,
	}
	recipients := []*entity.NearbyRecipient{
		{UserID: uuid.New(), PushToken: "ExponentPushToken[a]", DistanceKm: 1.2345},
		{UserID: uuid.New(), PushToken: "ExponentPushToken[b]", DistanceKm: 7.96},
	}

	messages := composeNewListing(event, recipients)

	require.Len(t, messages, 2)

	assert.Equal(t, "ExponentPushToken[a]", messages[0].To)
	assert.Equal(t, "default", messages[0].Sound)
	assert.Equal(t, "New home near you!", messages[0].Title)
	assert.Equal(t, "₹25,000/month • 2BHK in Koramangala is just 1.2 km from your location", messages[0].Body)

	// Body rounds to one decimal; the payload keeps full precision.
	assert.Equal(t, "₹25,000/month • 2BHK in Koramangala is just 8.0 km from your location", messages[1].Body)
	assert.Equal(t, 7.96, messages[1].Data["distance"])

	assert.Equal(t, entity.NotificationKindNewListing, messages[0].Data["type"])
	assert.Equal(t, event.ListingID.String(), messages[0].Data["listingId"])
}

func TestComposeNewListing_Empty(t *testing.T) {
	event := &entity.ListingEvent{ListingID: uuid.New(), Title: "Studio", Rent: 9000}

	messages := composeNewListing(event, nil)

	assert.Empty(t, messages)
}

func TestComposeNearbySeeker(t *testing.T) {
	recipients := []*entity.NearbyRecipient{
		{UserID: uuid.New(), PushToken: "ExponentPushToken[owner]", DistanceKm: 0.449},
	}

	messages := composeNearbySeeker(recipients)

	require.Len(t, messages, 1)
	assert.Equal(t, "ExponentPushToken[owner]", messages[0].To)
	assert.Equal(t, "Seeker Looking Nearby!", messages[0].Title)
	assert.Equal(t, "Someone is looking for a property 0.4 km from your listing", messages[0].Body)
	assert.Equal(t, entity.NotificationKindNearbySeeker, messages[0].Data["type"])
	assert.Equal(t, 0.449, messages[0].Data["distance"])
	assert.NotContains(t, messages[0].Data, "listingId")
}
