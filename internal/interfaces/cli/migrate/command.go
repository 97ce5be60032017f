package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"blogsummarizer/internal/infrastructure/config"
	"blogsummarizer/internal/infrastructure/database"
	"blogsummarizer/internal/infrastructure/migration"
	"blogsummarizer/internal/shared/constants"
	"blogsummarizer/internal/shared/logger"
)

var (
	env        string
	configPath string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage primary store migrations: apply, roll back, and inspect the versioned scripts.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

type migrateEnv struct {
	db       *gorm.DB
	strategy *migration.GooseStrategy
	log      logger.Interface
}

func (m *migrateEnv) close() {
	if err := database.Close(m.db); err != nil {
		m.log.Errorw("failed to close database", "error", err)
	}
}

func initEnv() (*migrateEnv, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	db, err := database.Open(&cfg.Database, log.Named("database"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver, log)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}

	return &migrateEnv{db: db, strategy: strategy, log: log}, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	m, err := initEnv()
	if err != nil {
		return err
	}
	defer m.close()

	m.log.Infow("running up migrations", "environment", env)

	if err := m.strategy.Migrate(m.db); err != nil {
		m.log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	m.log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	m, err := initEnv()
	if err != nil {
		return err
	}
	defer m.close()

	m.log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := m.strategy.MigrateDown(m.db, steps); err != nil {
		m.log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	m.log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	m, err := initEnv()
	if err != nil {
		return err
	}
	defer m.close()

	m.log.Infow("checking migration status", "environment", env)

	version, err := m.strategy.GetVersion(m.db)
	if err != nil {
		m.log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := m.strategy.Status(m.db); err != nil {
		m.log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}
