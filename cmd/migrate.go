package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	"pirex.GO/migrations"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply catalog schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		dsn := os.Getenv("MIGRATE_DSN")
		if dsn == "" {
			// golang-migrate wants a URL-style DSN, unlike GORM
			user := os.Getenv("MYSQL_USER")
			pass := os.Getenv("MYSQL_PASS")
			host := os.Getenv("MYSQL_HOST")
			port := os.Getenv("MYSQL_PORT")
			name := os.Getenv("MYSQL_DB")
			if port == "" {
				port = "3306"
			}
			dsn = fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s", user, pass, host, port, name)
		}

		src, err := iofs.New(migrations.FS, ".")
		if err != nil {
			fmt.Printf("Migration source failed: %v\n", err)
			os.Exit(1)
		}
		m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
		if err != nil {
			fmt.Printf("Migrate init failed: %v\n", err)
			os.Exit(1)
		}

		if migrateDown {
			err = m.Down()
		} else {
			err = m.Up()
		}
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No schema changes to apply")
			return
		}
		if err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations applied")
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back all migrations")
	rootCmd.AddCommand(migrateCmd)
}
