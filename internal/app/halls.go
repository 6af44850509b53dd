package app

import (
	"errors"
	"net/http"

	"github.com/tkoseoglu/theatre-reservation-system/api"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

func (app *Application) GetHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.HallListResponse{
		Halls: make([]api.HallResponse, len(halls)),
	}
	for i, hall := range halls {
		resp.Halls[i] = toHallResponse(hall)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHall(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toHallResponse(*hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateHall(w http.ResponseWriter, r *http.Request) {
	var input api.HallRequest

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

	hall := domain.Hall{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toHallResponse(hall domain.Hall) api.HallResponse {
	return api.HallResponse{
		Id:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}
