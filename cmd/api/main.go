package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/TusharVard/hrms-lite/internal/config"
	"github.com/TusharVard/hrms-lite/internal/domain/attendance"
	appHTTP "github.com/TusharVard/hrms-lite/internal/handler/http"
	"github.com/TusharVard/hrms-lite/internal/handler/http/response"
	"github.com/TusharVard/hrms-lite/internal/pkg/clock"
	"github.com/TusharVard/hrms-lite/internal/pkg/database"
	"github.com/TusharVard/hrms-lite/internal/repository/postgresql"
	attendanceService "github.com/TusharVard/hrms-lite/internal/service/attendance"
	employeeService "github.com/TusharVard/hrms-lite/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		fmt.Println("Error loading attendance timezone:", err)
		return
	}
	threshold, err := attendance.ParseLateThreshold(cfg.Attendance.LateThreshold, loc)
	if err != nil {
		fmt.Println("Error parsing late threshold:", err)
		return
	}

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		clock.System{},
		threshold,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	response.SetEnv(cfg.App.Env)
	router := appHTTP.NewRouter(cfg, employeeHandler, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
