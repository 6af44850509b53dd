package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

func (p *PostgresHallRepository) Create(ctx context.Context, hall *domain.Hall) error {
	query := `INSERT INTO halls (name, rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id`

	return p.db.QueryRow(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow).Scan(&hall.ID)
}

func (p *PostgresHallRepository) GetAll(ctx context.Context) ([]domain.Hall, error) {
	query := `SELECT id, name, rows, seats_in_row FROM halls ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make([]domain.Hall, 0)

	for rows.Next() {
		var hall domain.Hall

		err = rows.Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresHallRepository) GetById(ctx context.Context, id int) (*domain.Hall, error) {
	query := `SELECT id, name, rows, seats_in_row FROM halls WHERE id = $1`

	var hall domain.Hall

	err := p.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}
