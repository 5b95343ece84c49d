package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"items-api/config"
	"items-api/models"
)

const itemsTable = "items"

// SupabaseStore talks to the hosted backend through its table API.
type SupabaseStore struct {
	client *supabase.Client
}

// NewSupabaseStore builds the remote store from configuration. Both the
// service URL and the access key are required; a missing value fails
// construction so the selector can fall back to the local database.
func NewSupabaseStore(cfg *config.Config) (*SupabaseStore, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, errors.New("SUPABASE_URL and SUPABASE_KEY must be set in environment variables")
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("creating supabase client: %w", err)
	}
	return &SupabaseStore{client: client}, nil
}

func (s *SupabaseStore) Create(ctx context.Context, patch models.ItemPatch) (*models.Item, error) {
	// Timestamps are sent explicitly so created_at/updated_at do not
	// depend on remote column defaults.
	now := time.Now().UTC()
	fields := patch.Fields()
	if _, ok := fields["description"]; !ok {
		fields["description"] = ""
	}
	if _, ok := fields["is_active"]; !ok {
		fields["is_active"] = true
	}
	fields["created_at"] = now
	fields["updated_at"] = now

	var rows []models.Item
	_, err := s.client.From(itemsTable).
		Insert(fields, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, storageErr("creating item", err)
	}
	if len(rows) == 0 {
		return nil, storageErr("creating item", errors.New("failed to create item"))
	}
	return &rows[0], nil
}

func (s *SupabaseStore) GetAll(ctx context.Context) ([]models.Item, error) {
	var rows []models.Item
	_, err := s.client.From(itemsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, storageErr("fetching items", err)
	}
	return rows, nil
}

func (s *SupabaseStore) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var rows []models.Item
	_, err := s.client.From(itemsTable).
		Select("*", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, storageErr("fetching item", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *SupabaseStore) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	fields := patch.Fields()
	fields["updated_at"] = time.Now().UTC()

	var rows []models.Item
	_, err := s.client.From(itemsTable).
		Update(fields, "representation", "").
		Eq("id", strconv.FormatInt(id, 10)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, storageErr("updating item", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *SupabaseStore) Delete(ctx context.Context, id int64) (bool, error) {
	var rows []models.Item
	_, err := s.client.From(itemsTable).
		Delete("representation", "").
		Eq("id", strconv.FormatInt(id, 10)).
		ExecuteTo(&rows)
	if err != nil {
		return false, storageErr("deleting item", err)
	}
	return len(rows) > 0, nil
}

func (s *SupabaseStore) Search(ctx context.Context, term string) ([]models.Item, error) {
	var rows []models.Item
	filter := fmt.Sprintf("name.ilike.%%%s%%,description.ilike.%%%s%%", term, term)
	_, err := s.client.From(itemsTable).
		Select("*", "", false).
		Or(filter, "").
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, storageErr("searching items", err)
	}
	return rows, nil
}
