package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/brandkit/api/api"
	"github.com/brandkit/api/config"
	"github.com/brandkit/api/datastore"
	"github.com/brandkit/api/metrics"
	"github.com/brandkit/api/migrations"
	"github.com/brandkit/api/scheduler"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "Address to listen on, e.g. :8080")
	lo.Must0(viper.BindPFlag(config.HTTPPort, serveCmd.Flags().Lookup("port")))

	serveCmd.Flags().Bool("in-memory", false, "Keep data in memory instead of PostgreSQL")
	lo.Must0(viper.BindPFlag(config.DBInMemory, serveCmd.Flags().Lookup("in-memory")))

	serveCmd.Flags().Bool("dev", false, "Development mode: allow every origin, debug logs")
	lo.Must0(viper.BindPFlag(config.DevMode, serveCmd.Flags().Lookup("dev")))

	serveCmd.Flags().Bool("skip-migrations", false, "Do not run pending migrations on start")
}

type repositories struct {
	brands   datastore.BrandRepository
	palettes datastore.PaletteRepository
	styles   datastore.TypeStyleRepository
	db       *sql.DB
}

// openRepositories connects to PostgreSQL, or builds the in-memory store when
// configured to.
func openRepositories(settings config.Settings, migrate bool) (repositories, error) {
	if settings.Database.InMemory {
		log.Warn("Using the in-memory store; data is lost on exit")
		store := datastore.NewMemoryStore()
		return repositories{brands: store, palettes: store, styles: store}, nil
	}

	db, err := datastore.NewDB(settings.Database.Type, settings.Database.ConnStr())
	if err != nil {
		return repositories{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if migrate {
		if err := migrations.RunMigrations(db); err != nil {
			db.Close()
			return repositories{}, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	brands, err := datastore.NewBrandDatabase(db)
	if err != nil {
		db.Close()
		return repositories{}, fmt.Errorf("failed to create brand repository: %w", err)
	}
	palettes, err := datastore.NewPaletteDatabase(db)
	if err != nil {
		db.Close()
		return repositories{}, fmt.Errorf("failed to create palette repository: %w", err)
	}
	styles, err := datastore.NewTypeStyleDatabase(db)
	if err != nil {
		db.Close()
		return repositories{}, fmt.Errorf("failed to create type style repository: %w", err)
	}

	return repositories{brands: brands, palettes: palettes, styles: styles, db: db}, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Load()
		skipMigrations := lo.Must(cmd.Flags().GetBool("skip-migrations"))

		repos, err := openRepositories(settings, !skipMigrations)
		if err != nil {
			return err
		}

		ctx := context.Background()
		recorder, err := metrics.New(ctx, settings.Metrics)
		if err != nil {
			log.WithError(err).Warn("Metrics exporter unavailable, continuing without metrics")
		}

		regen := scheduler.NewRegenerator(repos.brands, repos.palettes, recorder, settings.RegenDebounce)

		app := &api.Application{
			Config: api.Config{
				HTTPPort:       settings.HTTPPort,
				AllowedOrigins: settings.AllowedOrigins,
				DevMode:        settings.DevMode,
			},
			BrandRepo:     repos.brands,
			PaletteRepo:   repos.palettes,
			TypeStyleRepo: repos.styles,
			Regenerator:   regen,
			Metrics:       recorder,
		}

		return app.Serve(http.NewServeMux(), func() {
			regen.Stop()

			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := recorder.Close(flushCtx); err != nil {
				log.WithError(err).Warn("Could not flush metrics")
			}
			if repos.db != nil {
				repos.db.Close()
			}
		})
	},
}
