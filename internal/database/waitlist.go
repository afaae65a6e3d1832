package database

import (
	"context"
	"fmt"

	"marina/internal/models"
)

const waitlistColumns = `id, waitlist_type, name, phone, email, address,
	boat_name, boat_license, trailer_license_plate, boat_or_jet_ski,
	boat_width, boat_length, notes, status, created_at`

func scanWaitlistEntry(row interface{ Scan(...any) error }) (models.WaitlistEntry, error) {
	var e models.WaitlistEntry
	err := row.Scan(
		&e.ID, &e.WaitlistType, &e.Name, &e.Phone, &e.Email, &e.Address,
		&e.BoatName, &e.BoatLicense, &e.TrailerLicensePlate, &e.BoatOrJetSki,
		&e.BoatWidth, &e.BoatLength, &e.Notes, &e.Status, &e.CreatedAt,
	)
	return e, err
}

// ListWaitlist returns entries for one waitlist category, oldest first, so
// position in the slice is queue position.
func (db *DB) ListWaitlist(ctx context.Context, waitlistType string) ([]models.WaitlistEntry, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+waitlistColumns+`
		FROM waitlist_entries WHERE waitlist_type = ?
		ORDER BY created_at ASC, id ASC`, waitlistType)
	if err != nil {
		return nil, fmt.Errorf("query waitlist: %w", err)
	}
	defer rows.Close()

	var out []models.WaitlistEntry
	for rows.Next() {
		e, err := scanWaitlistEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (db *DB) getWaitlistEntry(ctx context.Context, id int64) (models.WaitlistEntry, error) {
	row := db.QueryRowContext(ctx, `SELECT `+waitlistColumns+` FROM waitlist_entries WHERE id = ?`, id)
	e, err := scanWaitlistEntry(row)
	if err != nil {
		return models.WaitlistEntry{}, fmt.Errorf("get waitlist entry %d: %w", id, err)
	}
	return e, nil
}

// CreateWaitlistEntry inserts an entry and returns it with id and
// timestamp set.
func (db *DB) CreateWaitlistEntry(ctx context.Context, e *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	status := e.Status
	if status == "" {
		status = models.WaitlistStatusWaiting
	}
	result, err := db.ExecContext(ctx, `INSERT INTO waitlist_entries
		(waitlist_type, name, phone, email, address, boat_name, boat_license,
		 trailer_license_plate, boat_or_jet_ski, boat_width, boat_length, notes, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.WaitlistType, e.Name, e.Phone, e.Email, e.Address, e.BoatName,
		e.BoatLicense, e.TrailerLicensePlate, e.BoatOrJetSki,
		e.BoatWidth, e.BoatLength, e.Notes, status,
	)
	if err != nil {
		return nil, fmt.Errorf("insert waitlist entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	created, err := db.getWaitlistEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWaitlistEntry rewrites an entry's fields by id.
func (db *DB) UpdateWaitlistEntry(ctx context.Context, e *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	result, err := db.ExecContext(ctx, `UPDATE waitlist_entries SET
		waitlist_type = ?, name = ?, phone = ?, email = ?, address = ?,
		boat_name = ?, boat_license = ?, trailer_license_plate = ?,
		boat_or_jet_ski = ?, boat_width = ?, boat_length = ?, notes = ?, status = ?
		WHERE id = ?`,
		e.WaitlistType, e.Name, e.Phone, e.Email, e.Address, e.BoatName,
		e.BoatLicense, e.TrailerLicensePlate, e.BoatOrJetSki,
		e.BoatWidth, e.BoatLength, e.Notes, e.Status, e.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update waitlist entry %d: %w", e.ID, err)
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}

	updated, err := db.getWaitlistEntry(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteWaitlistEntry removes an entry by id.
func (db *DB) DeleteWaitlistEntry(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM waitlist_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete waitlist entry %d: %w", id, err)
	}
	return requireAffected(result)
}
