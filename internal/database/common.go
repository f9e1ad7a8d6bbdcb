package database

import sq "github.com/Masterminds/squirrel"

var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const HistoryEventsTable = "history_events"
