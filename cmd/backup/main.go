package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/billing"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/config"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/export"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/logging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/settings"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/users"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/views"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-backup",
		Short: "Offline backups and exports of the clinic store",
	}
	rootCmd.PersistentFlags().String("out", ".", "Directory the file is written to")
	rootCmd.AddCommand(fullCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "full",
		Short: "Write the full JSON backup document",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return withSource(cmd.Context(), func(ctx context.Context, src *views.Source) error {
				b, err := src.Backup(ctx)
				if err != nil {
					return err
				}
				now := time.Now()
				b.Timestamp = now.UTC().Format(export.TimestampLayout)
				body, err := b.Encode()
				if err != nil {
					return fmt.Errorf("failed to encode backup: %w", err)
				}
				return write(out, export.BackupFileName(now), body)
			})
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <collection>",
		Short: "Export one collection as csv, xlsx or pdf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			rawFormat, _ := cmd.Flags().GetString("format")

			collection := args[0]
			name, ok := export.Collections[collection]
			if !ok {
				return fmt.Errorf("%w: %s", export.ErrUnknownCollection, collection)
			}
			format, err := export.ParseFormat(rawFormat)
			if err != nil {
				return err
			}

			return withSource(cmd.Context(), func(ctx context.Context, src *views.Source) error {
				records, err := src.Records(ctx, collection)
				if err != nil {
					return err
				}
				file, err := export.Render(name, format, time.Now(), records)
				if errors.Is(err, export.ErrNothingToExport) {
					log.Info().Str("collection", collection).Msg("Nothing to export")
					return nil
				}
				if err != nil {
					return err
				}
				return write(out, file.Name, file.Body)
			})
		},
	}
	cmd.Flags().String("format", "csv", "Output format: csv, xlsx or pdf")
	return cmd
}

// withSource opens the configured store and runs fn against its collections.
func withSource(ctx context.Context, fn func(context.Context, *views.Source) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.New(cfg.Env, cfg.LogLevel)
	if cfg.StoreBackend == config.BackendMemory {
		log.Warn().Msg("STORE_BACKEND is memory, output will only contain seed data")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	kv, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer kv.Close()

	src := views.NewSource(views.Collections{
		Patients:     patient.NewRepository(kv, nil),
		Doctors:      doctor.NewRepository(kv, nil),
		Appointments: appointment.NewRepository(kv, nil),
		Labs:         lab.NewRepository(kv, nil),
		Invoices:     billing.NewRepository(kv, nil, nil),
		Users:        users.NewRepository(kv, nil),
		Settings:     settings.NewRepository(kv, nil),
	})
	return fn(ctx, src)
}

func write(dir, name string, body []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("bytes", len(body)).Msg("✓ Written")
	return nil
}
