package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tkoseoglu/theatre-reservation-system/api"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// GetPlays lists plays. The title, genres and actors filters are mutually
// exclusive: title takes precedence, then genres, then actors. Supplying two
// filters silently applies the stronger one, matching the long-standing
// behavior of this API.
func (app *Application) GetPlays(w http.ResponseWriter, r *http.Request) {
	params := api.GetPlaysParams{
		Title:    app.readString(r, "title"),
		Genres:   app.readString(r, "genres"),
		Actors:   app.readString(r, "actors"),
		Page:     app.readInt(r, "page"),
		PageSize: app.readInt(r, "pageSize"),
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters, err := toPlayFilters(params)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	plays, metadata, err := app.playRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PlayListResponse{
		Plays:    toPlaySummaries(plays),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlay(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "playId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	play, err := app.playRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPlayDetailResponse(play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var input api.PlayRequest

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

	play := domain.Play{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
	}

	err = app.playRepo.Create(r.Context(), &play, input.GenreIds, input.ActorIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("one or more referenced genres or actors do not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	created, err := app.playRepo.GetById(r.Context(), play.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPlayDetailResponse(created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPlayFilters(params api.GetPlaysParams) (domain.PlayFilters, error) {
	filters := domain.PlayFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
		},
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Title != nil {
		filters.Title = *params.Title
	}

	if params.Genres != nil {
		ids, err := parseIDList(*params.Genres)
		if err != nil {
			return filters, fmt.Errorf("genres %s", err)
		}
		filters.GenreIDs = ids
	}

	if params.Actors != nil {
		ids, err := parseIDList(*params.Actors)
		if err != nil {
			return filters, fmt.Errorf("actors %s", err)
		}
		filters.ActorIDs = ids
	}

	return filters, nil
}

func toPlaySummaries(plays []domain.Play) []api.PlaySummary {
	summaries := make([]api.PlaySummary, len(plays))

	for i, play := range plays {
		summary := api.PlaySummary{
			Id:       play.ID,
			Title:    play.Title,
			Duration: play.Duration,
			Genres:   make([]string, len(play.Genres)),
			Actors:   make([]string, len(play.Actors)),
		}

		for j, genre := range play.Genres {
			summary.Genres[j] = genre.Name
		}
		for j, actor := range play.Actors {
			summary.Actors[j] = actor.FullName()
		}

		summaries[i] = summary
	}

	return summaries
}

func toPlayDetailResponse(play *domain.Play) api.PlayDetailResponse {
	resp := api.PlayDetailResponse{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		Duration:    play.Duration,
		Genres:      make([]api.GenreResponse, len(play.Genres)),
		Actors:      make([]api.ActorResponse, len(play.Actors)),
	}

	for i, genre := range play.Genres {
		resp.Genres[i] = api.GenreResponse{Id: genre.ID, Name: genre.Name}
	}
	for i, actor := range play.Actors {
		resp.Actors[i] = toActorResponse(actor)
	}

	return resp
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
