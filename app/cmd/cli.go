package cmd

import (
	"context"
	"log"
	"os"

	"github.com/rakhadenta/gokart/app/configs"
	"github.com/rakhadenta/gokart/app/db/seeders"
	"github.com/rakhadenta/gokart/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Fill the database with sample users, categories and products",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seed complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate a new JWT signing secret for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintJWTKey(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the key to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
