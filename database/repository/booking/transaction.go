package bookingRepo

import (
	"context"
	"fmt"

	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InsertIfNoConflict commits a booking inside a single Mongo transaction.
// The overlap check runs against the live booking set at commit time, so a
// slot obtained from an earlier search is re-validated here; two concurrent
// commits for a shared participant cannot both pass the check.
func (repo *MongoBookingRepo) InsertIfNoConflict(ctx context.Context, booking *models.Booking) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := repo.coll.CountDocuments(sc, overlapFilter(booking.PersonIDs, booking.Start, booking.End))
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrConflict
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrConflict {
			return ErrConflict
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
