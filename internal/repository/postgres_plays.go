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

type PostgresPlayRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayRepository(db *pgxpool.Pool) *PostgresPlayRepository {
	return &PostgresPlayRepository{
		db: db,
	}
}

func (p *PostgresPlayRepository) Create(ctx context.Context, play *domain.Play, genreIDs, actorIDs []int) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO plays (title, description, duration_minutes)
			VALUES ($1, $2, $3)
			RETURNING id`

		err := tx.QueryRow(ctx, query, play.Title, play.Description, play.Duration).Scan(&play.ID)
		if err != nil {
			return err
		}

		if len(genreIDs) > 0 {
			rows := make([][]any, 0, len(genreIDs))
			for _, genreID := range genreIDs {
				rows = append(rows, []any{play.ID, genreID})
			}

			_, err = tx.CopyFrom(
				ctx,
				pgx.Identifier{"play_genres"},
				[]string{"play_id", "genre_id"},
				pgx.CopyFromRows(rows),
			)
			if err != nil {
				return err
			}
		}

		if len(actorIDs) > 0 {
			rows := make([][]any, 0, len(actorIDs))
			for _, actorID := range actorIDs {
				rows = append(rows, []any{play.ID, actorID})
			}

			_, err = tx.CopyFrom(
				ctx,
				pgx.Identifier{"play_actors"},
				[]string{"play_id", "actor_id"},
				pgx.CopyFromRows(rows),
			)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresPlayRepository) GetAll(ctx context.Context, filters domain.PlayFilters) ([]domain.Play, *domain.Metadata, error) {
	query := `
		SELECT
			COUNT(*) OVER(),
			p.id,
			p.title,
			p.duration_minutes,
			COALESCE((
				SELECT jsonb_agg(jsonb_build_object('id', g.id, 'name', g.name) ORDER BY g.name)
				FROM play_genres pg
				JOIN genres g ON g.id = pg.genre_id
				WHERE pg.play_id = p.id
			), '[]') AS genres,
			COALESCE((
				SELECT jsonb_agg(jsonb_build_object('id', a.id, 'firstName', a.first_name, 'lastName', a.last_name) ORDER BY a.id)
				FROM play_actors pa
				JOIN actors a ON a.id = pa.actor_id
				WHERE pa.play_id = p.id
			), '[]') AS actors
		FROM plays p
		%s
		ORDER BY p.title
		LIMIT $%d OFFSET $%d
	`

	// The filters are mutually exclusive: title wins over genres, genres
	// over actors. See domain.PlayFilters.
	var (
		where string
		args  []any
	)

	switch {
	case filters.Title != "":
		where = `WHERE p.title ILIKE '%' || $1 || '%'`
		args = append(args, filters.Title)
	case len(filters.GenreIDs) > 0:
		where = `WHERE EXISTS (
			SELECT 1 FROM play_genres pg
			WHERE pg.play_id = p.id AND pg.genre_id = ANY($1)
		)`
		args = append(args, filters.GenreIDs)
	case len(filters.ActorIDs) > 0:
		where = `WHERE EXISTS (
			SELECT 1 FROM play_actors pa
			WHERE pa.play_id = p.id AND pa.actor_id = ANY($1)
		)`
		args = append(args, filters.ActorIDs)
	}

	query = fmt.Sprintf(query, where, len(args)+1, len(args)+2)
	args = append(args, filters.Limit(), filters.Offset())

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	plays := make([]domain.Play, 0)
	totalRecords := 0

	for rows.Next() {
		var play domain.Play
		var genresJson, actorsJson json.RawMessage

		err = rows.Scan(&totalRecords, &play.ID, &play.Title, &play.Duration, &genresJson, &actorsJson)
		if err != nil {
			return nil, nil, err
		}

		if err = json.Unmarshal(genresJson, &play.Genres); err != nil {
			return nil, nil, err
		}
		if err = json.Unmarshal(actorsJson, &play.Actors); err != nil {
			return nil, nil, err
		}

		plays = append(plays, play)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return plays, metadata, nil
}

func (p *PostgresPlayRepository) GetById(ctx context.Context, id int) (*domain.Play, error) {
	query := `
		SELECT
			p.id,
			p.title,
			p.description,
			p.duration_minutes,
			COALESCE((
				SELECT jsonb_agg(jsonb_build_object('id', g.id, 'name', g.name) ORDER BY g.name)
				FROM play_genres pg
				JOIN genres g ON g.id = pg.genre_id
				WHERE pg.play_id = p.id
			), '[]') AS genres,
			COALESCE((
				SELECT jsonb_agg(jsonb_build_object('id', a.id, 'firstName', a.first_name, 'lastName', a.last_name) ORDER BY a.id)
				FROM play_actors pa
				JOIN actors a ON a.id = pa.actor_id
				WHERE pa.play_id = p.id
			), '[]') AS actors
		FROM plays p
		WHERE p.id = $1
	`

	var play domain.Play
	var genresJson, actorsJson json.RawMessage

	err := p.db.QueryRow(ctx, query, id).Scan(
		&play.ID,
		&play.Title,
		&play.Description,
		&play.Duration,
		&genresJson,
		&actorsJson,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	if err = json.Unmarshal(genresJson, &play.Genres); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(actorsJson, &play.Actors); err != nil {
		return nil, err
	}

	return &play, nil
}
