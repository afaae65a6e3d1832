package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"marina/internal/models"
)

const reservationColumns = `id, dock_id, start_date, end_date, guest_name, boat_type,
	boat_length, boat_width, email, phone_number, payment_status, notes, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (models.Reservation, error) {
	var (
		res        models.Reservation
		start, end string
	)
	err := row.Scan(
		&res.ID, &res.DockID, &start, &end, &res.GuestName, &res.BoatType,
		&res.BoatLength, &res.BoatWidth, &res.Email, &res.PhoneNumber,
		&res.PaymentStatus, &res.Notes, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return models.Reservation{}, err
	}
	if res.StartDate, err = models.ParseDay(start); err != nil {
		return models.Reservation{}, fmt.Errorf("bad start_date %q: %w", start, err)
	}
	if res.EndDate, err = models.ParseDay(end); err != nil {
		return models.Reservation{}, fmt.Errorf("bad end_date %q: %w", end, err)
	}
	return res, nil
}

// ListReservations returns every reservation ordered by start date, then id.
func (db *DB) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+reservationColumns+`
		FROM reservations ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	var out []models.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetReservation fetches one reservation by id.
func (db *DB) GetReservation(ctx context.Context, id int64) (models.Reservation, error) {
	row := db.QueryRowContext(ctx, `SELECT `+reservationColumns+`
		FROM reservations WHERE id = ?`, id)
	res, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reservation{}, ErrNotFound
	}
	if err != nil {
		return models.Reservation{}, fmt.Errorf("get reservation %d: %w", id, err)
	}
	return res, nil
}

// CreateReservation inserts a reservation and returns it with its id and
// timestamps filled in.
func (db *DB) CreateReservation(ctx context.Context, res *models.Reservation) (*models.Reservation, error) {
	result, err := db.ExecContext(ctx, `INSERT INTO reservations
		(dock_id, start_date, end_date, guest_name, boat_type, boat_length,
		 boat_width, email, phone_number, payment_status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.DockID, models.FormatDay(res.StartDate), models.FormatDay(res.EndDate),
		res.GuestName, res.BoatType, res.BoatLength, res.BoatWidth,
		res.Email, res.PhoneNumber, res.PaymentStatus, res.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert reservation id: %w", err)
	}

	created, err := db.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReservation rewrites a reservation's fields by id and returns the
// stored record.
func (db *DB) UpdateReservation(ctx context.Context, res *models.Reservation) (*models.Reservation, error) {
	result, err := db.ExecContext(ctx, `UPDATE reservations SET
		dock_id = ?, start_date = ?, end_date = ?, guest_name = ?, boat_type = ?,
		boat_length = ?, boat_width = ?, email = ?, phone_number = ?,
		payment_status = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		res.DockID, models.FormatDay(res.StartDate), models.FormatDay(res.EndDate),
		res.GuestName, res.BoatType, res.BoatLength, res.BoatWidth,
		res.Email, res.PhoneNumber, res.PaymentStatus, res.Notes, res.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update reservation %d: %w", res.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	updated, err := db.GetReservation(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReservation removes a reservation by id.
func (db *DB) DeleteReservation(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete reservation %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
