package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	storagePathFlag   = "storage-path"
	migrationPathFlag = "migrations-path"
	downFlag          = "down"
)

type flags struct {
	storagePath    string
	migrationsPath string
	down           bool
}

func main() {
	f := getFlagsValues()
	validateFlags(f)
	makeMigrations(f)
}

type MigrationLogger struct {
	logger  *slog.Logger
	verbose bool
}

func NewMigrationLogger() *MigrationLogger {
	return &MigrationLogger{
		logger:  slog.Default(),
		verbose: true,
	}
}

func (ml *MigrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(fmt.Sprintf(format, v...))
}

func (ml *MigrationLogger) Verbose() bool {
	return ml.verbose
}

func getFlagsValues() flags {
	var f flags
	pflag.StringVarP(&f.storagePath, storagePathFlag, "s", "",
		"postgres address without scheme, user:pass@host:5432/shop")
	pflag.StringVarP(&f.migrationsPath, migrationPathFlag, "m", "migrations",
		"directory with migration files")
	pflag.BoolVar(&f.down, downFlag, false, "roll back every migration")
	pflag.Parse()
	return f
}

func validateFlags(f flags) {
	var errs []error

	if f.storagePath == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", storagePathFlag))
	}

	if f.migrationsPath == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", migrationPathFlag))
	}

	if len(errs) != 0 {
		slog.Error("too few args", "err", errors.Join(errs...))
		fallDown()
	}
}

func makeMigrations(f flags) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", f.migrationsPath),
		fmt.Sprintf("pgx5://%s", f.storagePath),
	)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}

	m.Log = NewMigrationLogger()

	migrateFn, done := m.Up, "migration applied"
	if f.down {
		migrateFn, done = m.Down, "migration rolled back"
	}

	if err := migrateFn(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return
		}
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	m.Log.Printf("%s", done)
}

func fallDown() {
	os.Exit(2)
}
