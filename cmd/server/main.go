package main

import (
	"log"
	"net/http"

	"nomina/internal/domain/employee"
	"nomina/internal/domain/payroll"
	"nomina/internal/platform/config"
	"nomina/internal/store/jsonfile"
	"nomina/internal/transport/http/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config error: %v", err)
	}

	employeeStore, err := jsonfile.NewEmployeeStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open employee store: %v", err)
	}
	payrollStore, err := jsonfile.NewPayrollStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open payroll store: %v", err)
	}

	roster, err := employee.NewRoster(employeeStore)
	if err != nil {
		log.Fatalf("load roster: %v", err)
	}

	handler := handlers.New(roster, payroll.NewService(payrollStore))

	log.Printf("nomina server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler.Router()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
