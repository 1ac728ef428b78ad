package database

type MigrationId int

type Migration struct {
	Id MigrationId `db:"id"`
}

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Operation journal",
		query: `
			CREATE TABLE operation (
			    id INTEGER PRIMARY KEY,
			    kind TEXT,
			    directory TEXT,
			    file_name TEXT,
			    error TEXT,
			    created_timestamp DATETIME
			);

			CREATE INDEX operation_created_timestamp_idx ON operation (created_timestamp);
		`,
	},
}
