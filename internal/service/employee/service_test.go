package employee

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timetrack/attendance-backend-go/internal/domain/employee"
	"github.com/timetrack/attendance-backend-go/internal/pkg/database"
	"github.com/timetrack/attendance-backend-go/internal/repository/postgresql"
)

var testEmployeeDB *database.DB

func employeeTestInit(t *testing.T) {
	if testEmployeeDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testEmployeeDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateEmployeeTables(t *testing.T, ctx context.Context) {
	_, err := testEmployeeDB.Exec(ctx, "TRUNCATE TABLE employees CASCADE")
	require.NoError(t, err)
}

func newTestEmployeeService() employee.EmployeeService {
	return NewEmployeeService(testEmployeeDB, postgresql.NewEmployeeRepository(testEmployeeDB))
}

func uniqueDNI() string {
	return fmt.Sprintf("D%d", time.Now().UnixNano()%1e9)
}

func TestEmployeeService_Create_Success(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService()
	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "John Doe",
		DNI:        uniqueDNI(),
		HourlyRate: 12.5,
		HireDate:   "2024-06-01",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "John Doe", created.Name)
	assert.Equal(t, "2024-06-01", created.HireDate)
	assert.True(t, created.IsActive)
	assert.Equal(t, "12.5", created.HourlyRate.String())
}

func TestEmployeeService_Create_DuplicateDNI(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService()
	dni := uniqueDNI()

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "First",
		DNI:        dni,
		HourlyRate: 10,
		HireDate:   "2024-06-01",
	})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "Second",
		DNI:        dni,
		HourlyRate: 10,
		HireDate:   "2024-06-01",
	})
	assert.ErrorIs(t, err, employee.ErrDNIExists)
}

func TestEmployeeService_Update_PartialMerge(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService()
	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "Before",
		DNI:        uniqueDNI(),
		HourlyRate: 10,
		HireDate:   "2024-06-01",
	})
	require.NoError(t, err)

	newName := "After"
	updated, err := svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, created.DNI, updated.DNI)
	assert.Equal(t, created.HireDate, updated.HireDate)
}

func TestEmployeeService_Deactivate_HidesFromDefaultListing(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService()
	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "Leaver",
		DNI:        uniqueDNI(),
		HourlyRate: 10,
		HireDate:   "2024-06-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateEmployee(ctx, created.ID))

	active, err := svc.ListEmployees(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListEmployees(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	// Soft delete keeps the row fetchable
	fetched, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
}

func TestEmployeeService_DeletePermanently(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService()
	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "Gone",
		DNI:        uniqueDNI(),
		HourlyRate: 10,
		HireDate:   "2024-06-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployeePermanently(ctx, created.ID))

	_, err = svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_UpdateHourlyRate(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService()
	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "Raise",
		DNI:        uniqueDNI(),
		HourlyRate: 10,
		HireDate:   "2024-06-01",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateHourlyRate(ctx, created.ID, employee.UpdateHourlyRateRequest{HourlyRate: 15.75})
	require.NoError(t, err)
	assert.Equal(t, "15.75", updated.HourlyRate.String())

	_, err = svc.UpdateHourlyRate(ctx, uuid.NewString(), employee.UpdateHourlyRateRequest{HourlyRate: 15})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Create_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService()
	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "",
		DNI:        "x",
		HourlyRate: -1,
		HireDate:   "junk",
	})

	assert.Error(t, err)
}
