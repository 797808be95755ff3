package main

import (
	"fmt"
	"net/http"

	"github.com/timetrack/attendance-backend-go/internal/config"
	appHTTP "github.com/timetrack/attendance-backend-go/internal/handler/http"
	"github.com/timetrack/attendance-backend-go/internal/pkg/database"
	"github.com/timetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/timetrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/timetrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/timetrack/attendance-backend-go/internal/service/auth"
	employeeService "github.com/timetrack/attendance-backend-go/internal/service/employee"
	payrollService "github.com/timetrack/attendance-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
