// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP event publisher.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects the Google Pub/Sub event publisher.
	PubSubProviderGoogle = "google"
)

const (
	// BusinessIDLength is the identifier length for business documents.
	BusinessIDLength = 16

	// DocumentIDLength is the identifier length for products, cart items
	// and transactions.
	DocumentIDLength = 20
)
