package word

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/word/mock_repository.go -package=mock_word

// Repository defines operations for managing words.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Word, error)
	ListByOwnerAndLanguage(ctx context.Context, ownerID, language string) ([]Word, error)
	FindFirstByText(ctx context.Context, ownerID, language, text string) (*Word, error)
	Create(ctx context.Context, w *Word) error
	Update(ctx context.Context, w *Word) error
}

// DBRepository implements Repository with a SQL database or transaction.
type DBRepository struct {
	db  sqlx.ExtContext
	now func() time.Time
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db sqlx.ExtContext) *DBRepository {
	return &DBRepository{db: db, now: time.Now}
}

// FindByID returns the word with id, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*Word, error) {
	var w Word
	err := sqlx.GetContext(ctx, r.db, &w, "SELECT * FROM words WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(word) > %w", err)
	}
	return &w, nil
}

// ListByOwnerAndLanguage returns all words of an owner in a language.
func (r *DBRepository) ListByOwnerAndLanguage(ctx context.Context, ownerID, language string) ([]Word, error) {
	var words []Word
	if err := sqlx.SelectContext(ctx, r.db, &words,
		"SELECT * FROM words WHERE owner_id = ? AND language = ? ORDER BY id",
		ownerID, language); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(words) > %w", err)
	}
	return words, nil
}

// FindFirstByText returns the oldest word whose text matches exactly, or nil if none does.
func (r *DBRepository) FindFirstByText(ctx context.Context, ownerID, language, text string) (*Word, error) {
	var w Word
	err := sqlx.GetContext(ctx, r.db, &w,
		"SELECT * FROM words WHERE owner_id = ? AND language = ? AND text = ? ORDER BY id LIMIT 1",
		ownerID, language, text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(word by text) > %w", err)
	}
	return &w, nil
}

// Create inserts w and sets its ID and timestamps.
func (r *DBRepository) Create(ctx context.Context, w *Word) error {
	now := r.now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now

	result, err := sqlx.NamedExecContext(ctx, r.db,
		`INSERT INTO words (owner_id, language, text, type, meaning, tags, created_at, updated_at)
		VALUES (:owner_id, :language, :text, :type, :meaning, :tags, :created_at, :updated_at)`,
		w)
	if err != nil {
		return fmt.Errorf("sqlx.NamedExecContext(insert word) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	w.ID = id
	return nil
}

// Update saves the editable fields of w.
func (r *DBRepository) Update(ctx context.Context, w *Word) error {
	w.UpdatedAt = r.now().UTC()

	if _, err := sqlx.NamedExecContext(ctx, r.db,
		`UPDATE words SET text = :text, type = :type, meaning = :meaning, tags = :tags, updated_at = :updated_at
		WHERE id = :id`,
		w); err != nil {
		return fmt.Errorf("sqlx.NamedExecContext(update word) > %w", err)
	}
	return nil
}
