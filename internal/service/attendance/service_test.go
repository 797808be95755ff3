package attendance

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/timetrack/attendance-backend-go/internal/domain/employee"
	"github.com/timetrack/attendance-backend-go/internal/pkg/database"
	"github.com/timetrack/attendance-backend-go/internal/repository/postgresql"
)

var testAttendanceDB *database.DB

func attendanceTestInit(t *testing.T) {
	if testAttendanceDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testAttendanceDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateAttendanceTables(t *testing.T, ctx context.Context) {
	tables := []string{"attendance_records", "employees"}

	for _, table := range tables {
		_, err := testAttendanceDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createAttendanceTestEmployee(t *testing.T, ctx context.Context) string {
	repo := postgresql.NewEmployeeRepository(testAttendanceDB)
	created, err := repo.Create(ctx, employee.Employee{
		ID:         uuid.NewString(),
		Name:       "Attendance Test Employee",
		DNI:        fmt.Sprintf("A%d", time.Now().UnixNano()%1e9),
		HourlyRate: decimal.RequireFromString("10"),
		HireDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		IsActive:   true,
	})
	require.NoError(t, err)
	return created.ID
}

func newTestAttendanceService() attendance.AttendanceService {
	return NewAttendanceService(
		postgresql.NewAttendanceRepository(testAttendanceDB),
		postgresql.NewEmployeeRepository(testAttendanceDB),
	)
}

func TestAttendanceService_CreateRecord_Success(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx)
	svc := newTestAttendanceService()

	rec, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		EmployeeID: employeeID,
		Type:       "check_in",
		Timestamp:  "2025-01-06 09:00:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, employeeID, rec.EmployeeID)
	assert.Equal(t, "check_in", rec.Type)
	assert.Equal(t, "2025-01-06 09:00:00", rec.Timestamp)
	require.NotNil(t, rec.EmployeeName)
	assert.Equal(t, "Attendance Test Employee", *rec.EmployeeName)
}

func TestAttendanceService_CreateRecord_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	svc := newTestAttendanceService()
	_, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		EmployeeID: uuid.NewString(),
		Type:       "check_in",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_CreateRecord_InvalidType(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx)
	svc := newTestAttendanceService()

	_, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		EmployeeID: employeeID,
		Type:       "lunch_break",
	})

	assert.Error(t, err)
}

func TestAttendanceService_UpdateRecord_PartialMerge(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx)
	svc := newTestAttendanceService()

	notes := "forgot badge"
	created, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		EmployeeID: employeeID,
		Type:       "check_in",
		Timestamp:  "2025-01-06 09:00:00",
		Notes:      &notes,
	})
	require.NoError(t, err)

	// Only the timestamp changes; type and notes stay
	newTS := "2025-01-06 08:45:00"
	updated, err := svc.UpdateRecord(ctx, created.ID, attendance.UpdateRecordRequest{
		Timestamp: &newTS,
	})
	require.NoError(t, err)

	assert.Equal(t, "check_in", updated.Type)
	assert.Equal(t, newTS, updated.Timestamp)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
}

func TestAttendanceService_DeleteRecord_NotFound(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	svc := newTestAttendanceService()
	err := svc.DeleteRecord(ctx, uuid.NewString())

	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_ListByEmployee_RangeFilter(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx)
	svc := newTestAttendanceService()

	for _, ts := range []string{"2025-01-06 09:00:00", "2025-01-06 17:00:00", "2025-02-10 09:00:00"} {
		_, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
			EmployeeID: employeeID,
			Type:       "check_in",
			Timestamp:  ts,
		})
		require.NoError(t, err)
	}

	all, err := svc.ListByEmployee(ctx, employeeID, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	january, err := svc.ListByEmployee(ctx, employeeID, "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	require.Len(t, january, 2)
	// Ranged listing is chronological
	assert.Equal(t, "2025-01-06 09:00:00", january[0].Timestamp)
	assert.Equal(t, "2025-01-06 17:00:00", january[1].Timestamp)
}

func TestAttendanceService_ListByEmployee_InvalidRange(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx)
	svc := newTestAttendanceService()

	_, err := svc.ListByEmployee(ctx, employeeID, "2025-02-01", "2025-01-01")
	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

func TestAttendanceService_GetLastRecord(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx)
	svc := newTestAttendanceService()

	_, err := svc.GetLastRecord(ctx, employeeID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	for _, ts := range []string{"2025-01-06 09:00:00", "2025-01-06 17:00:00"} {
		recType := "check_in"
		if ts == "2025-01-06 17:00:00" {
			recType = "check_out"
		}
		_, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
			EmployeeID: employeeID,
			Type:       recType,
			Timestamp:  ts,
		})
		require.NoError(t, err)
	}

	last, err := svc.GetLastRecord(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, "check_out", last.Type)
	assert.Equal(t, "2025-01-06 17:00:00", last.Timestamp)
}
