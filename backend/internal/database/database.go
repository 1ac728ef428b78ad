package database

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
	"vincit.fi/image-culler/common/logger"
	"vincit.fi/image-culler/common/util"
)

const (
	ImageCullerDir  = ".image-culler"
	JournalFileName = "journal.db"
)

type TableExist bool

const (
	TableExists   TableExist = true
	TableNotExist TableExist = false
)

type Database struct {
	session db.Session
	dbPath  string
}

func NewInMemoryDatabase() (*Database, error) {
	logger.Info.Printf("Initializing in-memory database")
	// Every pooled connection has to see the same database
	var settings = sqlite.ConnectionURL{
		Database: "memory-" + uuid.New().String() + ".db",
		Options: map[string]string{
			"mode":  "memory",
			"cache": "shared",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return nil, err
	}

	database := &Database{session: session}
	if _, err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func NewDatabase() *Database {
	return &Database{}
}

func (s *Database) InitializeForDirectory(directory string, file string) error {
	if err := util.MakeDirectoriesIfNotExist(directory, filepath.Join(directory, ImageCullerDir)); err != nil {
		return err
	}

	s.dbPath = filepath.Join(directory, ImageCullerDir, file)
	logger.Info.Printf("Initializing database %s", s.dbPath)
	var settings = sqlite.ConnectionURL{
		Database: s.dbPath,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return err
	}
	s.session = session

	var version map[string]interface{}
	if err := s.session.SQL().Select(db.Func("sqlite_version")).One(&version); err != nil {
		logger.Warn.Print("Could not read SQLite version ", err)
	} else {
		logger.Info.Printf("Database initialized. Using SQLite version %s", version["sqlite_version()"])
	}

	return nil
}

func (s *Database) Migrate() (TableExist, error) {
	logger.Info.Printf("Running migrations")
	tablesExists := s.doesTablesExists()

	if !tablesExists {
		logger.Info.Print("Initial databases don't exist. Creating...")
		err := s.session.Tx(func(session db.Session) error {
			_, err := session.SQL().Exec(`
				CREATE TABLE migration (
					id TEXT PRIMARY KEY
				)
			`)
			return err
		})
		if err != nil {
			logger.Error.Print("Error while creating migration table ", err)
			return TableNotExist, err
		}
	}

	logger.Info.Print("Start migrations...")
	if err := s.migrate(); err != nil {
		logger.Error.Print("Error while running migrations ", err)
		return TableExist(tablesExists), err
	}
	logger.Info.Print("All migrations done")

	return TableExist(tablesExists), nil
}

func (s *Database) doesTablesExists() bool {
	rows, err := s.session.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name= 'migration';
	`)
	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}

func (s *Database) Session() db.Session {
	return s.session
}

func (s *Database) migrate() error {
	return s.session.Tx(func(session db.Session) error {
		migrationStatusesById, err := s.findAlreadyRunMigrations(session)
		if err != nil {
			return err
		}
		for _, migration := range migrations {
			if err := s.runMigration(session, migration, migrationStatusesById); err != nil {
				logger.Error.Print("Failed to run migration ", err)
				return err
			}
		}
		logger.Debug.Printf("Commit migrations")
		return nil
	})
}

func (s *Database) runMigration(session db.Session, migration migration, migrationStatusesById map[MigrationId]bool) error {
	migrationId := migration.id

	logger.Info.Printf("Prepare migration %d: %s", migrationId, migration.description)
	if _, found := migrationStatusesById[migrationId]; found {
		logger.Info.Printf("Migration %d is already done", migrationId)
		return nil
	}

	if _, err := session.SQL().Exec(`INSERT INTO migration (id) VALUES (?)`, migrationId); err != nil {
		return err
	}

	logger.Info.Printf("Running migration %d", migrationId)
	_, err := session.SQL().Exec(migration.query)
	return err
}

func (s *Database) findAlreadyRunMigrations(session db.Session) (map[MigrationId]bool, error) {
	var runMigrations []Migration
	if err := session.Collection("migration").Find().All(&runMigrations); err != nil {
		return nil, err
	}

	var migrationStatusesById = map[MigrationId]bool{}
	for _, migration := range runMigrations {
		migrationStatusesById[migration.Id] = true
	}
	return migrationStatusesById, nil
}

func (s *Database) Close() {
	logger.Info.Printf("Closing database %s", s.dbPath)
	if s.session != nil {
		if err := s.session.Close(); err != nil {
			logger.Error.Print("Error while trying to close database ", err)
		}
	} else {
		logger.Warn.Printf("No database instance to close")
	}
}
