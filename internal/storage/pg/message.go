package pg

import (
	"context"

	"github.com/palengke-dev/palengke/internal/domain"
)

// Saves message to db. Pure insert; the listing reference is not checked here,
// dangling listing ids are accepted by design.
func (s *Storage) CreateMessage(ctx context.Context, data domain.MessageCreationData) (domain.Message, error) {
	var m domain.Message
	err := s.db.QueryRowContext(ctx, `
	INSERT INTO messages(listing_id, buyer_email, seller_email, message)
	VALUES($1, $2, $3, $4)
	RETURNING id, listing_id, buyer_email, seller_email, message, created_at`,
		data.ListingId, data.BuyerEmail, data.SellerEmail, data.Text,
	).Scan(&m.Id, &m.ListingId, &m.BuyerEmail, &m.SellerEmail, &m.Text, &m.CreatedAt)
	if err != nil {
		return domain.Message{}, err
	}
	return m, nil
}
