package history

import "github.com/chronist/daybook/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"original_date",
		"header",
		"description",
	).
	From(database.HistoryEventsTable)
