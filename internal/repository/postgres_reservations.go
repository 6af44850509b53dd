package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create persists the reservation and its tickets in one transaction. The
// tickets are inserted one by one so that when the unique constraint on
// (performance_id, seat_row, seat_number) fires, the failing insert tells us
// exactly which seat was taken. The constraint is the source of truth for
// seat uniqueness; there is no check-then-insert window.
func (p *PostgresReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO reservations (reference, user_id)
			VALUES ($1, $2)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, reservation.Reference, reservation.UserID).
			Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO tickets (reservation_id, performance_id, seat_row, seat_number)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		for i := range reservation.Tickets {
			ticket := &reservation.Tickets[i]

			err = tx.QueryRow(
				ctx,
				query,
				reservation.ID,
				ticket.PerformanceID,
				ticket.Row,
				ticket.Seat).Scan(&ticket.ID)

			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
					return &domain.SeatTakenError{Row: ticket.Row, Seat: ticket.Seat}
				}

				return err
			}
		}

		return nil
	})
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			r.id,
			r.reference,
			r.created_at
		FROM reservations r
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.ReservationSummary, 0)
	reservationIDs := make([]int, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.ReservationSummary

		err = rows.Scan(&totalRecords, &reservation.ID, &reservation.Reference, &reservation.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
		reservationIDs = append(reservationIDs, reservation.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(reservations) == 0 {
		return reservations, domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize), nil
	}

	tickets, err := p.retrieveTickets(ctx, reservationIDs)
	if err != nil {
		return nil, nil, err
	}

	for i := range reservations {
		reservations[i].Tickets = tickets[reservations[i].ID]
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

// retrieveTickets loads the tickets of the given reservations, each decorated
// with its performance summary and the performance's current availability.
func (p *PostgresReservationRepository) retrieveTickets(
	ctx context.Context,
	reservationIDs []int) (map[int][]domain.TicketSummary, error) {

	query := `
		SELECT
			t.reservation_id,
			t.id,
			t.seat_row,
			t.seat_number,
			p.id,
			pl.title,
			h.name,
			h.rows * h.seats_in_row AS capacity,
			h.rows * h.seats_in_row - (
				SELECT COUNT(*) FROM tickets tc WHERE tc.performance_id = p.id
			) AS tickets_available,
			p.show_time
		FROM tickets t
		JOIN performances p ON t.performance_id = p.id
		JOIN plays pl ON p.play_id = pl.id
		JOIN halls h ON p.hall_id = h.id
		WHERE t.reservation_id = ANY($1)
		ORDER BY t.reservation_id, t.seat_row, t.seat_number
	`

	rows, err := p.db.Query(ctx, query, reservationIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make(map[int][]domain.TicketSummary)

	for rows.Next() {
		var reservationID int
		var ticket domain.TicketSummary

		err = rows.Scan(
			&reservationID,
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.PlayTitle,
			&ticket.HallName,
			&ticket.HallCapacity,
			&ticket.TicketsAvailable,
			&ticket.ShowTime,
		)
		if err != nil {
			return nil, err
		}

		tickets[reservationID] = append(tickets[reservationID], ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
