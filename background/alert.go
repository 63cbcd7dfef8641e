package background

import (
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junianwoo/fyd-sub001/alert"
	"github.com/junianwoo/fyd-sub001/external/mailer"
	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/store"
)

// RunAlertEngine is the background job behind a listing flipping to
// accepting. It walks every eligible subscriber, finds their first
// matching active subscription and sends one alert email. Per-subscriber
// failures are logged and skipped; the scan always finishes.
func (m *BackgroundManager) RunAlertEngine(listingID string) (int64, error) {
	logger := log.WithFields(log.Fields{
		"prefix":     "alert",
		"listing_id": listingID,
	})

	oid, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return 0, err
	}

	listing, err := m.mongoStore.GetListing(oid)
	if err != nil {
		if err == store.ErrListingNotFound {
			logger.Warn("listing disappeared before alert run")
		}
		return 0, err
	}

	// the status may have changed again between trigger and execution
	if listing.AcceptingStatus != schema.StatusAccepting {
		logger.WithField("status", listing.AcceptingStatus).
			Info("listing no longer accepting, skipping alert run")
		return 0, nil
	}

	if listing.Coordinates() == nil {
		logger.Warn("listing has no coordinates, skipping alert run")
		return 0, nil
	}

	accounts, err := m.store.ListEligibleAlertAccounts()
	if err != nil {
		return 0, err
	}

	var alertsSent int64
	for _, account := range accounts {
		subscriptions, err := m.mongoStore.ListActiveSubscriptions(account.AccountNumber)
		if err != nil {
			logger.WithError(err).WithField("account_number", account.AccountNumber).
				Error("list active subscriptions")
			continue
		}

		match, ok := alert.FirstMatch(*listing, subscriptions)
		if !ok {
			continue
		}

		err = m.mailer.SendListingAlert(account.Email, mailer.AlertEmailData{
			ListingName: listing.Name,
			Address:     listing.Address,
			Phone:       listing.Phone,
			DistanceKm:  match.DistanceKm,
			Label:       match.Subscription.Label,
			Language:    account.PreferredLanguage,
		})
		if err != nil {
			logger.WithError(err).WithField("account_number", account.AccountNumber).
				Error("send listing alert")
			continue
		}

		alertsSent++
	}

	logger.WithField("alerts_sent", alertsSent).Info("alert run finished")
	return alertsSent, nil
}
