package main

import (
	"context"
	"fmt"
	"os"

	"studentoffice/config"
	"studentoffice/delivery"
	"studentoffice/domain"
	"studentoffice/repository"
	"studentoffice/service"
	"studentoffice/utils"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// CLI flags
var (
	mockMode bool
	debug    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "studentoffice",
		Short: "College student office records system",
		Long: "Interactive student-records tool: students view their profile, marksheet and " +
			"fee receipts; admins manage accounts, marks and payments.",
		RunE: run,
	}
	rootCmd.PersistentFlags().BoolVar(&mockMode, "mock", false, "use the in-memory store instead of Postgres")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load the sample data set into the configured store",
		RunE:  seed,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("studentoffice %s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore acquires the shared store for the process lifetime. The returned
// release func runs on every exit path, including connection failure in the
// caller.
func openStore(ctx context.Context) (domain.RecordStore, func(), error) {
	if mockMode {
		store := repository.NewMemoryStore()
		if err := store.InsertAdmin(ctx, &domain.AdminAccount{ID: "ADMIN001", Secret: "adminpass"}); err != nil {
			return nil, nil, err
		}
		if err := repository.Seed(ctx, store); err != nil {
			return nil, nil, err
		}
		log.Info().Msg("running with in-memory store (no database required)")
		return store, func() {}, nil
	}

	cfg := config.Load()
	db, err := config.BootDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewSQLStore(db), func() { config.CloseDB(db) }, nil
}

func run(cmd *cobra.Command, args []string) error {
	utils.SetupLogger(debug)
	ctx := context.Background()

	store, release, err := openStore(ctx)
	if err != nil {
		log.Error().Err(err).Msg("❌ failed to open record store")
		return err
	}
	defer release()

	shell := delivery.NewShell(
		service.NewAuthService(store),
		service.NewStudentService(store),
		service.NewAdminService(store),
	)
	return shell.Run(ctx)
}

func seed(cmd *cobra.Command, args []string) error {
	utils.SetupLogger(debug)
	ctx := context.Background()

	store, release, err := openStore(ctx)
	if err != nil {
		log.Error().Err(err).Msg("❌ failed to open record store")
		return err
	}
	defer release()

	if err := repository.Seed(ctx, store); err != nil {
		log.Error().Err(err).Msg("❌ seeding failed")
		return err
	}
	log.Info().Msg("✅ sample data loaded")
	return nil
}
