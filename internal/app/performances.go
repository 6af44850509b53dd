package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tkoseoglu/theatre-reservation-system/api"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

func (app *Application) GetPerformances(w http.ResponseWriter, r *http.Request) {
	params := api.GetPerformancesParams{
		Date: app.readString(r, "date"),
		Play: app.readInt(r, "play"),
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var filters domain.PerformanceFilters

	if params.Date != nil {
		date, err := time.Parse("2006-01-02", *params.Date)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("date must be in YYYY-MM-DD format"))
			return
		}
		filters.Date = &date
	}
	if params.Play != nil {
		filters.PlayID = *params.Play
	}

	performances, err := app.performanceRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PerformanceListResponse{
		Performances: make([]api.PerformanceSummary, len(performances)),
	}
	for i, performance := range performances {
		resp.Performances[i] = toPerformanceSummary(performance)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "performanceId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.performanceRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	takenSeats := make([]api.Seat, len(detail.TakenSeats))
	for i, seat := range detail.TakenSeats {
		takenSeats[i] = api.Seat{Row: seat.Row, Seat: seat.Seat}
	}

	resp := api.PerformanceDetailResponse{
		Id:               detail.ID,
		Play:             toPlaySummaries([]domain.Play{detail.Play})[0],
		Hall:             toHallResponse(detail.Hall),
		TicketsAvailable: detail.TicketsAvailable,
		TakenSeats:       takenSeats,
		ShowTime:         detail.ShowTime,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	var input api.PerformanceRequest

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

	performance := domain.Performance{
		PlayID:   input.PlayId,
		HallID:   input.HallId,
		ShowTime: input.ShowTime,
	}

	err = app.performanceRepo.Create(r.Context(), &performance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("referenced play or hall does not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	detail, err := app.performanceRepo.GetById(r.Context(), performance.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PerformanceSummary{
		Id:               detail.ID,
		PlayTitle:        detail.Play.Title,
		HallName:         detail.Hall.Name,
		HallCapacity:     detail.Hall.Capacity(),
		TicketsAvailable: detail.TicketsAvailable,
		ShowTime:         detail.ShowTime,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPerformanceSummary(performance domain.PerformanceSummary) api.PerformanceSummary {
	return api.PerformanceSummary{
		Id:               performance.ID,
		PlayTitle:        performance.PlayTitle,
		HallName:         performance.HallName,
		HallCapacity:     performance.HallCapacity,
		TicketsAvailable: performance.TicketsAvailable,
		ShowTime:         performance.ShowTime,
	}
}
