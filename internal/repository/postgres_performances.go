package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

type PostgresPerformanceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPerformanceRepository(db *pgxpool.Pool) *PostgresPerformanceRepository {
	return &PostgresPerformanceRepository{
		db: db,
	}
}

func (p *PostgresPerformanceRepository) Create(ctx context.Context, performance *domain.Performance) error {
	query := `INSERT INTO performances (play_id, hall_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(
		ctx,
		query,
		performance.PlayID,
		performance.HallID,
		performance.ShowTime).Scan(&performance.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

// GetAll lists performances with their availability. The count only sees
// committed tickets, so a listing taken mid-reservation reports the
// pre-commit availability rather than a partial one.
func (p *PostgresPerformanceRepository) GetAll(ctx context.Context, filters domain.PerformanceFilters) ([]domain.PerformanceSummary, error) {
	query := `
		SELECT
			p.id,
			pl.title,
			h.name,
			h.rows * h.seats_in_row AS capacity,
			h.rows * h.seats_in_row - COUNT(t.id) AS tickets_available,
			p.show_time
		FROM performances p
		JOIN plays pl ON p.play_id = pl.id
		JOIN halls h ON p.hall_id = h.id
		LEFT JOIN tickets t ON t.performance_id = p.id
		%s
		GROUP BY p.id, pl.title, h.name, h.rows, h.seats_in_row, p.show_time
		ORDER BY p.show_time
	`

	var (
		conditions []string
		args       []any
	)

	if filters.Date != nil {
		args = append(args, *filters.Date)
		conditions = append(conditions, fmt.Sprintf("p.show_time::date = $%d::date", len(args)))
	}
	if filters.PlayID > 0 {
		args = append(args, filters.PlayID)
		conditions = append(conditions, fmt.Sprintf("p.play_id = $%d", len(args)))
	}

	where := ""
	for i, c := range conditions {
		if i == 0 {
			where = "WHERE " + c
		} else {
			where += " AND " + c
		}
	}

	query = fmt.Sprintf(query, where)

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performances := make([]domain.PerformanceSummary, 0)

	for rows.Next() {
		var performance domain.PerformanceSummary

		err = rows.Scan(
			&performance.ID,
			&performance.PlayTitle,
			&performance.HallName,
			&performance.HallCapacity,
			&performance.TicketsAvailable,
			&performance.ShowTime,
		)
		if err != nil {
			return nil, err
		}

		performances = append(performances, performance)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performances, nil
}

func (p *PostgresPerformanceRepository) GetById(ctx context.Context, id int) (*domain.PerformanceDetail, error) {
	query := `
		SELECT
			p.id,
			p.show_time,
			pl.id,
			pl.title,
			pl.description,
			pl.duration_minutes,
			COALESCE((
				SELECT jsonb_agg(jsonb_build_object('id', g.id, 'name', g.name) ORDER BY g.name)
				FROM play_genres pg
				JOIN genres g ON g.id = pg.genre_id
				WHERE pg.play_id = pl.id
			), '[]') AS genres,
			COALESCE((
				SELECT jsonb_agg(jsonb_build_object('id', a.id, 'firstName', a.first_name, 'lastName', a.last_name) ORDER BY a.id)
				FROM play_actors pa
				JOIN actors a ON a.id = pa.actor_id
				WHERE pa.play_id = pl.id
			), '[]') AS actors,
			h.id,
			h.name,
			h.rows,
			h.seats_in_row,
			h.rows * h.seats_in_row - (
				SELECT COUNT(*) FROM tickets t WHERE t.performance_id = p.id
			) AS tickets_available
		FROM performances p
		JOIN plays pl ON p.play_id = pl.id
		JOIN halls h ON p.hall_id = h.id
		WHERE p.id = $1
	`

	var detail domain.PerformanceDetail
	var genresJson, actorsJson json.RawMessage

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.ShowTime,
		&detail.Play.ID,
		&detail.Play.Title,
		&detail.Play.Description,
		&detail.Play.Duration,
		&genresJson,
		&actorsJson,
		&detail.Hall.ID,
		&detail.Hall.Name,
		&detail.Hall.Rows,
		&detail.Hall.SeatsInRow,
		&detail.TicketsAvailable,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	if err = json.Unmarshal(genresJson, &detail.Play.Genres); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(actorsJson, &detail.Play.Actors); err != nil {
		return nil, err
	}

	takenSeats, err := p.retrieveTakenSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	detail.TakenSeats = takenSeats

	return &detail, nil
}

func (p *PostgresPerformanceRepository) retrieveTakenSeats(ctx context.Context, performanceID int) ([]domain.SeatRef, error) {
	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE performance_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := p.db.Query(ctx, query, performanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	takenSeats := make([]domain.SeatRef, 0)

	for rows.Next() {
		var seat domain.SeatRef

		err = rows.Scan(&seat.Row, &seat.Seat)
		if err != nil {
			return nil, err
		}

		takenSeats = append(takenSeats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return takenSeats, nil
}

func (p *PostgresPerformanceRepository) GetHall(ctx context.Context, performanceID int) (*domain.Hall, error) {
	query := `
		SELECT h.id, h.name, h.rows, h.seats_in_row
		FROM performances p
		JOIN halls h ON p.hall_id = h.id
		WHERE p.id = $1
	`

	var hall domain.Hall

	err := p.db.QueryRow(ctx, query, performanceID).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}
