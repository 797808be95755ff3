package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/timetrack/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const recordColumns = `ar.id, ar.employee_id, ar.type, ar.timestamp, ar.notes, ar.created_at, ar.updated_at, e.name`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Type,
		&rec.Timestamp,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeName,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO attendance_records (id, employee_id, type, timestamp, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, employee_id, type, timestamp, notes, created_at, updated_at
		)
		SELECT ar.id, ar.employee_id, ar.type, ar.timestamp, ar.notes, ar.created_at, ar.updated_at, e.name
		FROM inserted ar
		JOIN employees e ON e.id = ar.employee_id
	`

	created, err := scanRecord(q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Type,
		record.Timestamp,
		record.Notes,
	))
	if err != nil {
		return attendance.Record{}, err
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, err
	}

	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE attendance_records
			SET type = $1, timestamp = $2, notes = $3, updated_at = NOW()
			WHERE id = $4
			RETURNING id, employee_id, type, timestamp, notes, created_at, updated_at
		)
		SELECT ar.id, ar.employee_id, ar.type, ar.timestamp, ar.notes, ar.created_at, ar.updated_at, e.name
		FROM updated ar
		JOIN employees e ON e.id = ar.employee_id
	`

	updated, err := scanRecord(q.QueryRow(ctx, query,
		record.Type,
		record.Timestamp,
		record.Notes,
		record.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, err
	}

	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance_records WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.employee_id = $1
		ORDER BY ar.timestamp DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.employee_id = $1 AND ar.timestamp >= $2 AND ar.timestamp <= $3
		ORDER BY ar.timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// GetLastByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetLastByEmployee(ctx context.Context, employeeID string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.employee_id = $1
		ORDER BY ar.timestamp DESC
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, err
	}

	return rec, nil
}

// ListToday implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListToday(ctx context.Context, dateLocal string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.timestamp::date = $1::date
		ORDER BY ar.timestamp ASC
	`

	rows, err := q.Query(ctx, query, dateLocal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
