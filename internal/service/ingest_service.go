package service

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/stc-cow/cowtrack-backend-go/internal/ingest"
	"github.com/stc-cow/cowtrack-backend-go/internal/repository"
)

// IngestService imports spreadsheet exports into storage. Each import
// replaces the stored snapshot wholesale; the analytics layer recomputes
// everything from the new batch on the next call.
type IngestService struct {
	locationRepo *repository.LocationRepository
	movementRepo *repository.MovementRepository
	opts         ingest.Options
}

// NewIngestService creates a new ingest service
func NewIngestService(locationRepo *repository.LocationRepository, movementRepo *repository.MovementRepository) *IngestService {
	return &IngestService{
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// ImportLocations parses and stores a location directory export.
// Returns the batch ID and row count.
func (s *IngestService) ImportLocations(r io.Reader) (string, int, error) {
	batchID := uuid.NewString()
	locations, err := ingest.ParseLocations(r, s.opts)
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse locations: %w", err)
	}
	if err := s.locationRepo.ReplaceAll(locations); err != nil {
		return "", 0, fmt.Errorf("failed to store locations: %w", err)
	}
	log.Printf("[Ingest] batch %s: imported %d locations", batchID, len(locations))
	return batchID, len(locations), nil
}

// ImportMovements parses and stores a movement log export.
func (s *IngestService) ImportMovements(r io.Reader) (string, int, error) {
	batchID := uuid.NewString()
	movements, err := ingest.ParseMovements(r)
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse movements: %w", err)
	}
	if err := s.movementRepo.ReplaceAll(movements); err != nil {
		return "", 0, fmt.Errorf("failed to store movements: %w", err)
	}
	log.Printf("[Ingest] batch %s: imported %d movements", batchID, len(movements))
	return batchID, len(movements), nil
}

// RefreshFromFiles re-imports the configured snapshot files. Used by the
// scheduled refresh job; missing paths are skipped silently so a
// movements-only deployment still works.
func (s *IngestService) RefreshFromFiles(locationsPath, movementsPath string) error {
	if locationsPath != "" {
		f, err := os.Open(locationsPath)
		if err != nil {
			return fmt.Errorf("failed to open locations snapshot: %w", err)
		}
		_, n, err := s.ImportLocations(f)
		f.Close()
		if err != nil {
			return err
		}
		log.Printf("[Ingest] refreshed %d locations from %s", n, locationsPath)
	}
	if movementsPath != "" {
		f, err := os.Open(movementsPath)
		if err != nil {
			return fmt.Errorf("failed to open movements snapshot: %w", err)
		}
		_, n, err := s.ImportMovements(f)
		f.Close()
		if err != nil {
			return err
		}
		log.Printf("[Ingest] refreshed %d movements from %s", n, movementsPath)
	}
	return nil
}
