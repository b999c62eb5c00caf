package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/respond"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Source supplies the joined rows of a collection and the backup document.
type Source interface {
	Records(ctx context.Context, collection string) ([]Record, error)
	Backup(ctx context.Context) (*Backup, error)
}

type Handler struct {
	source Source
	now    clock.Clock
}

func NewHandler(source Source, now clock.Clock) *Handler {
	if now == nil {
		now = clock.System
	}
	return &Handler{source: source, now: now}
}

// Export handles GET /api/export/{collection}?format=csv|xlsx|pdf
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]
	name, ok := Collections[collection]
	if !ok {
		respond.Error(w, http.StatusNotFound, "not_found", ErrUnknownCollection.Error())
		return
	}
	format, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid_format", "format must be csv, xlsx or pdf")
		return
	}

	records, err := h.source.Records(r.Context(), collection)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("Failed to collect export rows")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to export")
		return
	}

	file, err := Render(name, format, h.now(), records)
	if err != nil {
		if errors.Is(err, ErrNothingToExport) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		log.Error().Err(err).Str("collection", collection).Msg("Failed to render export")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to export")
		return
	}

	log.Info().Str("collection", collection).Str("format", string(format)).Int("rows", len(records)).Msg("Export generated")
	write(w, file)
}

// Backup handles GET /api/settings/backup
func (h *Handler) Backup(w http.ResponseWriter, r *http.Request) {
	b, err := h.source.Backup(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to collect backup")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to create backup")
		return
	}
	now := h.now()
	b.Timestamp = now.UTC().Format(TimestampLayout)

	body, err := b.Encode()
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode backup")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to create backup")
		return
	}

	write(w, &File{Name: BackupFileName(now), ContentType: "application/json", Body: body})
}

func write(w http.ResponseWriter, f *File) {
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Body)
}
