package domain

import "context"

type Genre struct {
	ID   int
	Name string
}

type Actor struct {
	ID        int
	FirstName string
	LastName  string
}

func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Play struct {
	ID          int
	Title       string
	Description string
	Duration    int
	Genres      []Genre
	Actors      []Actor
}

// PlayFilters carries the list filters. Title, GenreIDs and ActorIDs are
// mutually exclusive: when more than one is set, Title wins, then GenreIDs,
// then ActorIDs. This mirrors the behavior clients of the original API rely
// on, see DESIGN.md.
type PlayFilters struct {
	Title    string
	GenreIDs []int
	ActorIDs []int
	Pagination
}

type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	GetAll(ctx context.Context) ([]Genre, error)
}

type ActorRepository interface {
	Create(ctx context.Context, actor *Actor) error
	GetAll(ctx context.Context) ([]Actor, error)
}

type PlayRepository interface {
	Create(ctx context.Context, play *Play, genreIDs, actorIDs []int) error
	GetAll(ctx context.Context, filters PlayFilters) ([]Play, *Metadata, error)
	GetById(ctx context.Context, id int) (*Play, error)
}
