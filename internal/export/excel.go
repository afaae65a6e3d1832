package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"marina/internal/models"
)

// excelWriter is a thin row-oriented wrapper over excelize.
type excelWriter struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

func newExcelWriter() *excelWriter {
	return &excelWriter{file: excelize.NewFile()}
}

func (w *excelWriter) addSheet(name string) error {
	// Excel limits sheet names to 31 chars.
	if len(name) > 31 {
		name = name[:31]
	}

	if w.currentSheet == "" {
		w.file.SetSheetName("Sheet1", name)
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	w.currentSheet = name
	w.currentRow = 1
	return nil
}

func (w *excelWriter) writeHeader(columns []string) error {
	if err := w.writeCells(columns); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, w.currentRow-1)
		endCell, _ := excelize.CoordinatesToCellName(len(columns), w.currentRow-1)
		_ = w.file.SetCellStyle(w.currentSheet, startCell, endCell, style)
	}
	return nil
}

func (w *excelWriter) writeRow(row []any) error {
	return w.writeCells(row)
}

func (w *excelWriter) writeCells(values any) error {
	if w.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	write := func(i int, val any) error {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return err
		}
		return w.file.SetCellValue(w.currentSheet, cell, val)
	}

	switch vs := values.(type) {
	case []string:
		for i, v := range vs {
			if err := write(i, v); err != nil {
				return err
			}
		}
	case []any:
		for i, v := range vs {
			if err := write(i, v); err != nil {
				return err
			}
		}
	}

	w.currentRow++
	return nil
}

func (w *excelWriter) save(wr io.Writer) error {
	return w.file.Write(wr)
}

func (w *excelWriter) close() error {
	return w.file.Close()
}

// ReservationColumns is the header row of a reservations export.
var ReservationColumns = []string{
	"ID", "Dock", "Start Date", "End Date", "Guest", "Boat Type",
	"Boat Length", "Boat Width", "Email", "Phone", "Payment Status", "Notes",
}

// WriteReservations renders reservations as an xlsx workbook.
func WriteReservations(wr io.Writer, reservations []models.Reservation) error {
	w := newExcelWriter()
	defer w.close()

	if err := w.addSheet("Reservations"); err != nil {
		return err
	}
	if err := w.writeHeader(ReservationColumns); err != nil {
		return err
	}
	for _, res := range reservations {
		row := []any{
			res.ID, res.DockID,
			models.FormatDay(res.StartDate), models.FormatDay(res.EndDate),
			res.GuestName, res.BoatType, res.BoatLength, res.BoatWidth,
			res.Email, res.PhoneNumber, res.PaymentStatus, res.Notes,
		}
		if err := w.writeRow(row); err != nil {
			return err
		}
	}
	return w.save(wr)
}

// WaitlistColumns is the header row of a waitlist export.
var WaitlistColumns = []string{
	"ID", "Name", "Phone", "Email", "Address", "Boat Name", "Boat License",
	"Trailer Plate", "Vessel Type", "Width", "Length", "Status", "Notes", "Added",
}

// WriteWaitlist renders one waitlist category per sheet.
func WriteWaitlist(wr io.Writer, byType map[string][]models.WaitlistEntry) error {
	w := newExcelWriter()
	defer w.close()

	wrote := false
	for _, waitlistType := range models.WaitlistTypes {
		entries, ok := byType[waitlistType]
		if !ok {
			continue
		}
		if err := w.addSheet(waitlistType); err != nil {
			return err
		}
		if err := w.writeHeader(WaitlistColumns); err != nil {
			return err
		}
		for _, e := range entries {
			row := []any{
				e.ID, e.Name, e.Phone, e.Email, e.Address, e.BoatName,
				e.BoatLicense, e.TrailerLicensePlate, e.BoatOrJetSki,
				e.BoatWidth, e.BoatLength, e.Status, e.Notes,
				e.CreatedAt.Format("2006-01-02"),
			}
			if err := w.writeRow(row); err != nil {
				return err
			}
		}
		wrote = true
	}

	if !wrote {
		if err := w.addSheet("Waitlist"); err != nil {
			return err
		}
		if err := w.writeHeader(WaitlistColumns); err != nil {
			return err
		}
	}
	return w.save(wr)
}
