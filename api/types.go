// Package api holds the request and response types of the HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

// SeatConflictResponse identifies the first seat that lost the race, so the
// client can re-pick and retry.
type SeatConflictResponse struct {
	Message   string    `json:"message"`
	Row       int       `json:"row"`
	Seat      int       `json:"seat"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	IsStaff   bool      `json:"isStaff"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int       `json:"version"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

type HallRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Rows       int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seatsInRow" validate:"required,min=1"`
}

type HallResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seatsInRow"`
	Capacity   int    `json:"capacity"`
}

type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type GenreResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type GenreListResponse struct {
	Genres []GenreResponse `json:"genres"`
}

type ActorRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
}

type ActorResponse struct {
	Id        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

type ActorListResponse struct {
	Actors []ActorResponse `json:"actors"`
}

type PlayRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Duration    int    `json:"duration" validate:"required,min=1"`
	GenreIds    []int  `json:"genreIds" validate:"dive,min=1"`
	ActorIds    []int  `json:"actorIds" validate:"dive,min=1"`
}

// PlaySummary is the listing shape: genres and actors flattened to names.
type PlaySummary struct {
	Id       int      `json:"id"`
	Title    string   `json:"title"`
	Duration int      `json:"duration"`
	Genres   []string `json:"genres"`
	Actors   []string `json:"actors"`
}

type PlayListResponse struct {
	Plays    []PlaySummary `json:"plays"`
	Metadata *Metadata     `json:"metadata,omitempty"`
}

type PlayDetailResponse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
}

type GetPlaysParams struct {
	Title    *string
	Genres   *string
	Actors   *string
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}

type PerformanceRequest struct {
	PlayId   int       `json:"playId" validate:"required,min=1"`
	HallId   int       `json:"hallId" validate:"required,min=1"`
	ShowTime time.Time `json:"showTime" validate:"required"`
}

type PerformanceSummary struct {
	Id               int       `json:"id"`
	PlayTitle        string    `json:"playTitle"`
	HallName         string    `json:"hallName"`
	HallCapacity     int       `json:"hallCapacity"`
	TicketsAvailable int       `json:"ticketsAvailable"`
	ShowTime         time.Time `json:"showTime"`
}

type PerformanceListResponse struct {
	Performances []PerformanceSummary `json:"performances"`
}

type Seat struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type PerformanceDetailResponse struct {
	Id               int          `json:"id"`
	Play             PlaySummary  `json:"play"`
	Hall             HallResponse `json:"hall"`
	TicketsAvailable int          `json:"ticketsAvailable"`
	TakenSeats       []Seat       `json:"takenSeats"`
	ShowTime         time.Time    `json:"showTime"`
}

type GetPerformancesParams struct {
	Date *string `validate:"omitempty,datetime=2006-01-02"`
	Play *int    `validate:"omitempty,min=1"`
}

// Seat coordinates carry no validate tags: bounds come from the hall grid,
// so zero and negative values surface with the valid range, not "is required".
type TicketRequest struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type CreateReservationRequest struct {
	PerformanceId int             `json:"performanceId" validate:"required,min=1"`
	Tickets       []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

type TicketResponse struct {
	Id            int `json:"id"`
	Row           int `json:"row"`
	Seat          int `json:"seat"`
	PerformanceId int `json:"performanceId"`
}

type ReservationResponse struct {
	Id        int              `json:"id"`
	Reference string           `json:"reference"`
	CreatedAt time.Time        `json:"createdAt"`
	Tickets   []TicketResponse `json:"tickets"`
}

type TicketSummary struct {
	Id          int                `json:"id"`
	Row         int                `json:"row"`
	Seat        int                `json:"seat"`
	Performance PerformanceSummary `json:"performance"`
}

type ReservationSummary struct {
	Id        int             `json:"id"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"createdAt"`
	Tickets   []TicketSummary `json:"tickets"`
}

type UserReservationsResponse struct {
	Reservations []ReservationSummary `json:"reservations"`
	Metadata     *Metadata            `json:"metadata,omitempty"`
}

type GetReservationsParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}
