package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tkoseoglu/theatre-reservation-system/api"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

func (app *Application) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.GenreListResponse{
		Genres: make([]api.GenreResponse, len(genres)),
	}
	for i, genre := range genres {
		resp.Genres[i] = api.GenreResponse{Id: genre.ID, Name: genre.Name}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var input api.GenreRequest

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

	genre := domain.Genre{Name: input.Name}

	err = app.genreRepo.Create(r.Context(), &genre)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGenreAlreadyExists):
			app.badRequestResponse(w, r, fmt.Errorf("a genre with this name already exists"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.GenreResponse{Id: genre.ID, Name: genre.Name}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
