package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/palengke-dev/palengke/internal/domain"
	internal_errors "github.com/palengke-dev/palengke/internal/errors"
)

const listingColumns = "id, title, price, image_url, category, location, seller_email, description, created_at"

// Saves listing to db. Id and created_at are assigned here and returned with
// the rest of the row so callers get the fully materialized record.
func (s *Storage) CreateListing(ctx context.Context, data domain.ListingCreationData) (domain.Listing, error) {
	var l domain.Listing
	err := s.db.QueryRowContext(ctx, `
	INSERT INTO listings(title, price, image_url, category, location, seller_email, description)
	VALUES($1, $2, $3, $4, $5, $6, $7)
	RETURNING `+listingColumns,
		data.Title, data.Price, data.ImageUrl, data.Category, data.Location, data.SellerEmail, data.Description,
	).Scan(&l.Id, &l.Title, &l.Price, &l.ImageUrl, &l.Category, &l.Location, &l.SellerEmail, &l.Description, &l.CreatedAt)
	if err != nil {
		return domain.Listing{}, err
	}
	return l, nil
}

// GetListings returns listings newest first. Filters compose with AND; the
// search term matches as a literal case-insensitive substring of the title,
// so % and _ in it carry no wildcard meaning.
func (s *Storage) GetListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	query := "SELECT " + listingColumns + " FROM listings"
	var conditions []string
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		conditions = append(conditions, fmt.Sprintf("strpos(lower(title), lower($%d)) > 0", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0) // empty result serializes as [], not null
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.Id, &l.Title, &l.Price, &l.ImageUrl, &l.Category, &l.Location, &l.SellerEmail, &l.Description, &l.CreatedAt); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *Storage) GetListing(ctx context.Context, id domain.ListingId) (domain.Listing, error) {
	var l domain.Listing
	err := s.db.QueryRowContext(ctx, `
	SELECT `+listingColumns+`
	FROM listings
	WHERE id = $1`, id).Scan(&l.Id, &l.Title, &l.Price, &l.ImageUrl, &l.Category, &l.Location, &l.SellerEmail, &l.Description, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Listing{}, internal_errors.NotFound("Item not found")
		}
		return domain.Listing{}, err
	}
	return l, nil
}

// GetCategories returns the distinct category values currently present across
// listings. There is no canonical category registry.
func (s *Storage) GetCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT DISTINCT category
	FROM listings
	ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
