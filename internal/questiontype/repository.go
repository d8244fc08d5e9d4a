package questiontype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/questiontype/mock_repository.go -package=mock_questiontype

// Repository defines operations for managing question types.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*QuestionType, error)
	ListByOwnerAndLanguage(ctx context.Context, ownerID, language string) ([]QuestionType, error)
	Create(ctx context.Context, qt *QuestionType) error
	Update(ctx context.Context, qt *QuestionType) error
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

// FindByID returns the question type with id, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*QuestionType, error) {
	var qt QuestionType
	err := sqlx.GetContext(ctx, r.db, &qt, "SELECT * FROM question_types WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(question type) > %w", err)
	}
	return &qt, nil
}

func (r *DBRepository) ListByOwnerAndLanguage(ctx context.Context, ownerID, language string) ([]QuestionType, error) {
	var questionTypes []QuestionType
	if err := sqlx.SelectContext(ctx, r.db, &questionTypes,
		"SELECT * FROM question_types WHERE owner_id = ? AND language = ? ORDER BY id",
		ownerID, language); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(question types) > %w", err)
	}
	return questionTypes, nil
}

// Create inserts qt and sets its ID and timestamps.
func (r *DBRepository) Create(ctx context.Context, qt *QuestionType) error {
	now := r.now().UTC()
	qt.CreatedAt = now
	qt.UpdatedAt = now

	result, err := sqlx.NamedExecContext(ctx, r.db,
		`INSERT INTO question_types (owner_id, language, name, data_template, question_template, answer_template, created_at, updated_at)
		VALUES (:owner_id, :language, :name, :data_template, :question_template, :answer_template, :created_at, :updated_at)`,
		qt)
	if err != nil {
		return fmt.Errorf("sqlx.NamedExecContext(insert question type) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	qt.ID = id
	return nil
}

func (r *DBRepository) Update(ctx context.Context, qt *QuestionType) error {
	qt.UpdatedAt = r.now().UTC()

	if _, err := sqlx.NamedExecContext(ctx, r.db,
		`UPDATE question_types SET name = :name, data_template = :data_template,
		question_template = :question_template, answer_template = :answer_template, updated_at = :updated_at
		WHERE id = :id`,
		qt); err != nil {
		return fmt.Errorf("sqlx.NamedExecContext(update question type) > %w", err)
	}
	return nil
}
