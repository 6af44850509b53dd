package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/tkoseoglu/theatre-reservation-system/api"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

// reservationTimeout bounds the whole commit attempt. A timed out attempt is
// reported as retryable: the transaction either rolled back or the retry will
// surface the seat conflict.
const reservationTimeout = 5 * time.Second

// CreateReservation books the requested seats for the session user. All
// tickets commit together or not at all; the first seat already held by a
// committed ticket turns the whole request into a conflict response.
func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reservationTimeout)
	defer cancel()

	hall, err := app.performanceRepo.GetHall(ctx, input.PerformanceId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seats := make([]domain.SeatRef, len(input.Tickets))
	for i, ticket := range input.Tickets {
		seats[i] = domain.SeatRef{Row: ticket.Row, Seat: ticket.Seat}
	}

	violations := domain.ValidateSeats(*hall, seats)
	if len(violations) > 0 {
		app.seatValidationResponse(w, r, violations)
		return
	}

	reservation := domain.NewReservation(userId, input.PerformanceId, seats)

	err = app.reservationRepo.Create(ctx, &reservation)
	if err != nil {
		var seatErr *domain.SeatTakenError

		switch {
		case errors.As(err, &seatErr):
			app.metrics.seatConflicts.Add(r.Context(), 1,
				metric.WithAttributes(attribute.Int("performance.id", input.PerformanceId)))
			app.seatConflictResponse(w, r, seatErr)
		case errors.Is(err, context.DeadlineExceeded):
			app.transientErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.reservationsCreated.Add(r.Context(), 1)
	app.metrics.ticketsSold.Add(r.Context(), int64(len(reservation.Tickets)),
		metric.WithAttributes(attribute.Int("performance.id", input.PerformanceId)))

	app.logger.Info("reservation created",
		"reference", reservation.Reference,
		"performanceId", input.PerformanceId,
		"tickets", len(reservation.Tickets),
	)

	err = app.writeJSON(w, http.StatusCreated, toReservationResponse(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservationsOfUser(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	params := api.GetReservationsParams{
		Page:     app.readInt(r, "page"),
		PageSize: app.readInt(r, "pageSize"),
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserReservationsResponse{
		Reservations: make([]api.ReservationSummary, len(reservations)),
		Metadata:     toApiMetadata(metadata),
	}
	for i, reservation := range reservations {
		resp.Reservations[i] = toReservationSummary(reservation)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toReservationResponse(reservation domain.Reservation) api.ReservationResponse {
	resp := api.ReservationResponse{
		Id:        reservation.ID,
		Reference: reservation.Reference,
		CreatedAt: reservation.CreatedAt,
		Tickets:   make([]api.TicketResponse, len(reservation.Tickets)),
	}

	for i, ticket := range reservation.Tickets {
		resp.Tickets[i] = api.TicketResponse{
			Id:            ticket.ID,
			Row:           ticket.Row,
			Seat:          ticket.Seat,
			PerformanceId: ticket.PerformanceID,
		}
	}

	return resp
}

func toReservationSummary(reservation domain.ReservationSummary) api.ReservationSummary {
	summary := api.ReservationSummary{
		Id:        reservation.ID,
		Reference: reservation.Reference,
		CreatedAt: reservation.CreatedAt,
		Tickets:   make([]api.TicketSummary, len(reservation.Tickets)),
	}

	for i, ticket := range reservation.Tickets {
		summary.Tickets[i] = api.TicketSummary{
			Id:   ticket.ID,
			Row:  ticket.Row,
			Seat: ticket.Seat,
			Performance: api.PerformanceSummary{
				Id:               ticket.PerformanceID,
				PlayTitle:        ticket.PlayTitle,
				HallName:         ticket.HallName,
				HallCapacity:     ticket.HallCapacity,
				TicketsAvailable: ticket.TicketsAvailable,
				ShowTime:         ticket.ShowTime,
			},
		}
	}

	return summary
}
