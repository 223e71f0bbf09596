package main

import (
	"os"

	"github.com/SscSPs/erp_backoffice/internal/cli"
)

// @title ERP Back-office API
// @version 1.0
// @description Ledger, payroll, renewals and notification dispatch for the back office.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
