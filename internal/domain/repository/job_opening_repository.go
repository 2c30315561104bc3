package repository

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// JobOpeningRepository puerto de persistencia para vacantes (DIP).
type JobOpeningRepository interface {
	List(ctx context.Context) ([]entity.JobOpening, error)
	GetByID(ctx context.Context, id int) (*entity.JobOpening, error)
	Insert(ctx context.Context, j *entity.JobOpening) (int, error)
	Update(ctx context.Context, j *entity.JobOpening) error
	Delete(ctx context.Context, id int) error
}
