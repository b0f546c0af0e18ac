package impl

import (
	"context"

	"groove/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Cascade deletes. Deleting an entity removes everything that transitively
// references it; each function below walks one level and recurses through the
// dependents' own cascades. Every cascade runs inside the caller's
// transaction, so a failure anywhere rolls the whole delete back.

// deleteLabelCascade removes a label, its artists and its records.
func deleteLabelCascade(ctx context.Context, f repository.Factory, labelID uuid.UUID) error {
	artists, err := f.Artists().FindByLabelID(ctx, labelID)
	if err != nil {
		return errors.Wrap(err, "failed to load artists for label cascade")
	}
	for _, artist := range artists {
		if err := deleteArtistCascade(ctx, f, artist.ID); err != nil {
			return err
		}
	}

	// Records reference the label directly as well; an artist cascade above may
	// have removed some already, the rest go here.
	records, err := f.Records().FindByLabelID(ctx, labelID)
	if err != nil {
		return errors.Wrap(err, "failed to load records for label cascade")
	}
	for _, record := range records {
		if err := deleteRecordCascade(ctx, f, record.ID); err != nil {
			return err
		}
	}

	return f.Labels().Delete(ctx, labelID)
}

// deleteArtistCascade removes an artist, its band memberships and its records.
func deleteArtistCascade(ctx context.Context, f repository.Factory, artistID uuid.UUID) error {
	if err := f.BandMembers().DeleteByArtistID(ctx, artistID); err != nil {
		return errors.Wrap(err, "failed to delete band members for artist cascade")
	}

	records, err := f.Records().FindByArtistID(ctx, artistID)
	if err != nil {
		return errors.Wrap(err, "failed to load records for artist cascade")
	}
	for _, record := range records {
		if err := deleteRecordCascade(ctx, f, record.ID); err != nil {
			return err
		}
	}

	return f.Artists().Delete(ctx, artistID)
}

// deletePersonCascade removes a person and their band memberships.
func deletePersonCascade(ctx context.Context, f repository.Factory, personID uuid.UUID) error {
	if err := f.BandMembers().DeleteByPersonID(ctx, personID); err != nil {
		return errors.Wrap(err, "failed to delete band members for person cascade")
	}

	return f.Persons().Delete(ctx, personID)
}

// deleteRecordCascade removes a record, its genre links and the album
// listings selling it.
func deleteRecordCascade(ctx context.Context, f repository.Factory, recordID uuid.UUID) error {
	if err := f.RecordGenres().DeleteByRecordID(ctx, recordID); err != nil {
		return errors.Wrap(err, "failed to delete genre links for record cascade")
	}

	albums, err := f.Albums().FindByRecordID(ctx, recordID)
	if err != nil {
		return errors.Wrap(err, "failed to load albums for record cascade")
	}
	for _, album := range albums {
		if err := deleteAlbumCascade(ctx, f, album.ID); err != nil {
			return err
		}
	}

	return f.Records().Delete(ctx, recordID)
}

// deleteGenreCascade removes a genre and its record links.
func deleteGenreCascade(ctx context.Context, f repository.Factory, genreID uuid.UUID) error {
	if err := f.RecordGenres().DeleteByGenreID(ctx, genreID); err != nil {
		return errors.Wrap(err, "failed to delete record links for genre cascade")
	}

	return f.Genres().Delete(ctx, genreID)
}

// deleteAlbumCascade removes an album listing and every cart or order line
// holding it.
func deleteAlbumCascade(ctx context.Context, f repository.Factory, albumID uuid.UUID) error {
	if err := f.CartItems().DeleteByAlbumID(ctx, albumID); err != nil {
		return errors.Wrap(err, "failed to delete cart items for album cascade")
	}
	if err := f.OrderItems().DeleteByAlbumID(ctx, albumID); err != nil {
		return errors.Wrap(err, "failed to delete order items for album cascade")
	}

	return f.Albums().Delete(ctx, albumID)
}

// deleteShoppingSessionCascade removes a cart session and its items.
func deleteShoppingSessionCascade(ctx context.Context, f repository.Factory, sessionID uuid.UUID) error {
	if err := f.CartItems().DeleteBySessionID(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete cart items for session cascade")
	}

	return f.ShoppingSessions().Delete(ctx, sessionID)
}

// deleteOrderDetailCascade removes an order and its lines.
func deleteOrderDetailCascade(ctx context.Context, f repository.Factory, orderID uuid.UUID) error {
	if err := f.OrderItems().DeleteByOrderDetailID(ctx, orderID); err != nil {
		return errors.Wrap(err, "failed to delete order items for order cascade")
	}

	return f.OrderDetails().Delete(ctx, orderID)
}

// deleteUserPaymentCascade removes a payment instrument and the orders paid
// with it.
func deleteUserPaymentCascade(ctx context.Context, f repository.Factory, paymentID uuid.UUID) error {
	orders, err := f.OrderDetails().FindByUserPaymentID(ctx, paymentID)
	if err != nil {
		return errors.Wrap(err, "failed to load orders for payment cascade")
	}
	for _, order := range orders {
		if err := deleteOrderDetailCascade(ctx, f, order.ID); err != nil {
			return err
		}
	}

	return f.UserPayments().Delete(ctx, paymentID)
}

// deleteUserCascade removes a user account and everything hanging off it:
// album listings, cart sessions, payment instruments with their orders,
// addresses and refresh token sessions.
func deleteUserCascade(ctx context.Context, f repository.Factory, userID uuid.UUID) error {
	albums, err := f.Albums().FindByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load albums for user cascade")
	}
	for _, album := range albums {
		if err := deleteAlbumCascade(ctx, f, album.ID); err != nil {
			return err
		}
	}

	sessions, err := f.ShoppingSessions().FindByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load sessions for user cascade")
	}
	for _, session := range sessions {
		if err := deleteShoppingSessionCascade(ctx, f, session.ID); err != nil {
			return err
		}
	}

	payments, err := f.UserPayments().FindByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load payments for user cascade")
	}
	for _, payment := range payments {
		if err := deleteUserPaymentCascade(ctx, f, payment.ID); err != nil {
			return err
		}
	}

	// Orders normally vanish with their payment instrument; catch any left
	// behind by direct references.
	orders, err := f.OrderDetails().FindByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load orders for user cascade")
	}
	for _, order := range orders {
		if err := deleteOrderDetailCascade(ctx, f, order.ID); err != nil {
			return err
		}
	}

	if err := f.UserAddresses().DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete addresses for user cascade")
	}
	if err := f.RefreshTokens().DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens for user cascade")
	}

	return f.Users().Delete(ctx, userID)
}
