// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"fmt"

	"homeradar/internal/domain/entity"
	"homeradar/internal/domain/service"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	newListingTitle   = "New home near you!"
	nearbySeekerTitle = "Seeker Looking Nearby!"
	defaultSound      = "default"
)

// rupeePrinter renders rent amounts with Indian digit grouping (₹1,50,000).
//
//nolint:gochecknoglobals
var rupeePrinter = message.NewPrinter(language.MustParse("en-IN"))

func formatRent(rent float64) string {
	return rupeePrinter.Sprint(number.Decimal(rent, number.MaxFractionDigits(0)))
}

// composeNewListing builds one push message per nearby seeker. The body shows
// the distance rounded to one decimal; the data payload carries it at full
// precision so the client can re-render without re-computing.
func composeNewListing(event *entity.ListingEvent, recipients []*entity.NearbyRecipient) []service.PushMessage {
	messages := make([]service.PushMessage, 0, len(recipients))
	for _, recipient := range recipients {
		messages = append(messages, service.PushMessage{
			To:    recipient.PushToken,
			Sound: defaultSound,
			Title: newListingTitle,
			Body: fmt.Sprintf("₹%s/month • %s is just %.1f km from your location",
				formatRent(event.Rent), event.Title, recipient.DistanceKm),
			Data: map[string]any{
				"type":      entity.NotificationKindNewListing,
				"listingId": event.ListingID.String(),
				"distance":  recipient.DistanceKm,
			},
		})
	}

	return messages
}

// composeNearbySeeker builds one push message per nearby owner.
func composeNearbySeeker(recipients []*entity.NearbyRecipient) []service.PushMessage {
	messages := make([]service.PushMessage, 0, len(recipients))
	for _, recipient := range recipients {
		messages = append(messages, service.PushMessage{
			To:    recipient.PushToken,
			Sound: defaultSound,
			Title: nearbySeekerTitle,
			Body: fmt.Sprintf("Someone is looking for a property %.1f km from your listing",
				recipient.DistanceKm),
			Data: map[string]any{
				"type":     entity.NotificationKindNearbySeeker,
				"distance": recipient.DistanceKm,
			},
		})
	}

	return messages
}
