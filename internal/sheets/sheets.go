package sheets

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"marina/internal/models"
)

// SheetsService mirrors the reservation list into a Google spreadsheet so
// the office staff can read it without opening the app.
type SheetsService struct {
	srv           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
	logger        *zerolog.Logger
}

// NewSheetsService authenticates with a service account credentials file.
func NewSheetsService(ctx context.Context, credentialsFile, spreadsheetID, sheetName string, logger *zerolog.Logger) (*SheetsService, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	srv, err := sheetsapi.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	return &SheetsService{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger,
	}, nil
}

var headerRow = []interface{}{
	"ID", "Dock", "Start Date", "End Date", "Guest", "Boat Type",
	"Length", "Width", "Email", "Phone", "Payment Status", "Notes",
}

func reservationRowValues(res *models.Reservation) []interface{} {
	return []interface{}{
		res.ID,
		res.DockID,
		models.FormatDay(res.StartDate),
		models.FormatDay(res.EndDate),
		res.GuestName,
		res.BoatType,
		res.BoatLength,
		res.BoatWidth,
		res.Email,
		res.PhoneNumber,
		res.PaymentStatus,
		res.Notes,
	}
}

// SyncReservations rewrites the sheet with the current reservation list.
// Full rewrite keeps the sheet consistent without tracking row positions.
func (s *SheetsService) SyncReservations(ctx context.Context, reservations []models.Reservation) error {
	if s == nil {
		return nil
	}

	values := make([][]interface{}, 0, len(reservations)+1)
	values = append(values, headerRow)
	for i := range reservations {
		values = append(values, reservationRowValues(&reservations[i]))
	}

	clearRange := fmt.Sprintf("%s!A:L", s.sheetName)
	if _, err := s.srv.Spreadsheets.Values.Clear(s.spreadsheetID, clearRange, &sheetsapi.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet: %w", err)
	}

	body := &sheetsapi.ValueRange{Values: values}
	_, err := s.srv.Spreadsheets.Values.
		Update(s.spreadsheetID, fmt.Sprintf("%s!A1", s.sheetName), body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}

	s.logger.Info().Int("rows", len(reservations)).Msg("Reservations synced to Google Sheets")
	return nil
}
