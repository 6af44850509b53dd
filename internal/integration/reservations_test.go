package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tkoseoglu/theatre-reservation-system/api"
)

type ReservationTestSuite struct {
	BaseSuite
}

func TestReservationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	suite.Run(t, new(ReservationTestSuite))
}

func (s *ReservationTestSuite) TestCreateReservation() {
	cookies := s.app.authenticatedUserCookies(s.T())

	scenarios := []Scenario{
		{
			Name:             "returns 401 if user is not authenticated",
			Method:           "POST",
			URL:              "/reservations",
			Body:             strings.NewReader(`{"performanceId": 2, "tickets": [{"row": 1, "seat": 1}]}`),
			ExpectedStatus:   http.StatusUnauthorized,
			ExpectedResponse: `{"message": "You must be authenticated to access this resource"}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupCatalogTestState(t, app)
			},
		},
		{
			Name:             "returns 404 for a performance that does not exist",
			Method:           "POST",
			URL:              "/reservations",
			Body:             strings.NewReader(`{"performanceId": 999, "tickets": [{"row": 1, "seat": 1}]}`),
			Cookies:          cookies,
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "The requested resource not found"}`,
		},
		{
			Name:           "returns 422 with every violated bound",
			Method:         "POST",
			URL:            "/reservations",
			Body:           strings.NewReader(`{"performanceId": 2, "tickets": [{"row": 21, "seat": 21}]}`),
			Cookies:        cookies,
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedResponse: `{
				"message": "One or more fields failed validation",
				"validationErrors": [
					{"field": "tickets[0].row", "issue": "must be between 1 and 20"},
					{"field": "tickets[0].seat", "issue": "must be between 1 and 20"}
				]
			}`,
		},
		{
			Name:           "creates a reservation with all requested tickets",
			Method:         "POST",
			URL:            "/reservations",
			Body:           strings.NewReader(`{"performanceId": 2, "tickets": [{"row": 4, "seat": 7}, {"row": 4, "seat": 8}, {"row": 4, "seat": 9}]}`),
			Cookies:        cookies,
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"id": 1,
				"tickets": [
					{"id": 1, "row": 4, "seat": 7, "performanceId": 2},
					{"id": 2, "row": 4, "seat": 8, "performanceId": 2},
					{"id": 3, "row": 4, "seat": 9, "performanceId": 2}
				]
			}`,
		},
		{
			Name:           "rejects a retry of the same seats with a conflict",
			Method:         "POST",
			URL:            "/reservations",
			Body:           strings.NewReader(`{"performanceId": 2, "tickets": [{"row": 4, "seat": 7}]}`),
			Cookies:        cookies,
			ExpectedStatus: http.StatusConflict,
			ExpectedResponse: `{
				"message": "seat (row 4, seat 7) is already taken for this performance",
				"row": 4,
				"seat": 7
			}`,
		},
		{
			Name:           "commits nothing when one of the seats is taken",
			Method:         "POST",
			URL:            "/reservations",
			Body:           strings.NewReader(`{"performanceId": 2, "tickets": [{"row": 10, "seat": 1}, {"row": 4, "seat": 8}]}`),
			Cookies:        cookies,
			ExpectedStatus: http.StatusConflict,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				require.Equal(t, 3, ticketCount(t, app, 2))
				require.False(t, seatTaken(t, app, 2, 10, 1))
			},
		},
		{
			Name:           "rejects a duplicate seat within one request as a conflict",
			Method:         "POST",
			URL:            "/reservations",
			Body:           strings.NewReader(`{"performanceId": 2, "tickets": [{"row": 5, "seat": 5}, {"row": 5, "seat": 5}]}`),
			Cookies:        cookies,
			ExpectedStatus: http.StatusConflict,
			ExpectedResponse: `{
				"message": "seat (row 5, seat 5) is already taken for this performance",
				"row": 5,
				"seat": 5
			}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				require.Equal(t, 3, ticketCount(t, app, 2))
				require.False(t, seatTaken(t, app, 2, 5, 5))
			},
		},
		{
			Name:           "same seat is free for a different performance",
			Method:         "POST",
			URL:            "/reservations",
			Body:           strings.NewReader(`{"performanceId": 4, "tickets": [{"row": 4, "seat": 7}]}`),
			Cookies:        cookies,
			ExpectedStatus: http.StatusCreated,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

// Availability must track committed tickets exactly: a 400 seat hall drops to
// 397 after a 3 seat booking and to 395 after 2 more.
func (s *ReservationTestSuite) TestAvailabilityArithmetic() {
	t := s.T()
	cookies := s.app.authenticatedUserCookies(t)

	setupCatalogTestState(t, s.app)

	require.Equal(t, 400, s.ticketsAvailable(2))

	res := s.createReservation(cookies, `{"performanceId": 2, "tickets": [{"row": 1, "seat": 1}, {"row": 1, "seat": 2}, {"row": 1, "seat": 3}]}`)
	require.Equal(t, http.StatusCreated, res.Code)
	require.Equal(t, 397, s.ticketsAvailable(2))

	res = s.createReservation(cookies, `{"performanceId": 2, "tickets": [{"row": 2, "seat": 1}, {"row": 2, "seat": 2}]}`)
	require.Equal(t, http.StatusCreated, res.Code)
	require.Equal(t, 395, s.ticketsAvailable(2))

	// a failed booking must not move the count
	res = s.createReservation(cookies, `{"performanceId": 2, "tickets": [{"row": 1, "seat": 1}]}`)
	require.Equal(t, http.StatusConflict, res.Code)
	require.Equal(t, 395, s.ticketsAvailable(2))

	// the other performance in the same hall is unaffected
	require.Equal(t, 400, s.ticketsAvailable(4))
}

// Many clients race for the same seat; exactly one booking may win and the
// rest must see the structured conflict.
func (s *ReservationTestSuite) TestConcurrentDoubleBooking() {
	t := s.T()
	cookies := s.app.authenticatedUserCookies(t)

	setupCatalogTestState(t, s.app)

	const attempts = 120

	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			res := s.createReservation(cookies, `{"performanceId": 2, "tickets": [{"row": 13, "seat": 13}]}`)
			statuses[i] = res.Code
		}(i)
	}
	wg.Wait()

	created, conflicted := 0, 0
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		default:
			t.Errorf("unexpected status %d", status)
		}
	}

	require.Equal(t, 1, created)
	require.Equal(t, attempts-1, conflicted)
	require.Equal(t, 1, ticketCount(t, s.app, 2))
	require.Equal(t, 399, s.ticketsAvailable(2))
}

func (s *ReservationTestSuite) TestReservationOwnership() {
	t := s.T()
	aliceCookies := s.app.loginUserCookies(t, "alice@example.com")
	bobCookies := s.app.loginUserCookies(t, "bob@example.com")

	setupCatalogTestState(t, s.app)

	res := s.createReservation(aliceCookies, `{"performanceId": 2, "tickets": [{"row": 7, "seat": 7}]}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var aliceReservations api.UserReservationsResponse
	s.getJSON(aliceCookies, "/reservations", &aliceReservations)
	require.Len(t, aliceReservations.Reservations, 1)
	require.Len(t, aliceReservations.Reservations[0].Tickets, 1)
	require.Equal(t, "Hamlet", aliceReservations.Reservations[0].Tickets[0].Performance.PlayTitle)

	var bobReservations api.UserReservationsResponse
	s.getJSON(bobCookies, "/reservations", &bobReservations)
	require.Empty(t, bobReservations.Reservations)

	// reading twice without writes yields identical results
	var again api.UserReservationsResponse
	s.getJSON(aliceCookies, "/reservations", &again)
	require.Equal(t, aliceReservations, again)
}

func (s *ReservationTestSuite) createReservation(cookies []*http.Cookie, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	s.app.App.Routes().ServeHTTP(rec, req)

	return rec
}

func (s *ReservationTestSuite) getJSON(cookies []*http.Cookie, url string, dst any) {
	s.T().Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	s.app.App.Routes().ServeHTTP(rec, req)

	require.Equal(s.T(), http.StatusOK, rec.Code)
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(dst))
}

func (s *ReservationTestSuite) ticketsAvailable(performanceId int) int {
	s.T().Helper()

	var detail api.PerformanceDetailResponse
	s.getJSON(nil, "/performances/"+strconv.Itoa(performanceId), &detail)

	return detail.TicketsAvailable
}

func setupCatalogTestState(t testing.TB, app *TestApp) {
	t.Helper()

	executeSQLFile(t, app.DB, "testdata/catalog_down.sql")
	executeSQLFile(t, app.DB, "testdata/catalog_up.sql")
}

func ticketCount(t testing.TB, app *TestApp, performanceId int) int {
	t.Helper()

	var count int
	err := app.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM tickets WHERE performance_id = $1", performanceId).Scan(&count)
	require.NoError(t, err)

	return count
}

func seatTaken(t testing.TB, app *TestApp, performanceId, row, seat int) bool {
	t.Helper()

	var taken bool
	err := app.DB.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM tickets WHERE performance_id = $1 AND seat_row = $2 AND seat_number = $3)",
		performanceId, row, seat).Scan(&taken)
	require.NoError(t, err)

	return taken
}
