//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestCodegaugeWithMySQL tests the codegauge CLI with a MySQL snapshot backend.
func TestCodegaugeWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "codegauge",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/codegauge?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("CODEGAUGE_STORE_BACKEND", "mysql")
	_ = os.Setenv("CODEGAUGE_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("CODEGAUGE_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("CODEGAUGE_STORE_DB_CONNECT") }()

	// Run codegauge store migrate
	err = runCodegaugeCommand(t, "store", "migrate")
	require.NoError(t, err)

	// Run codegauge trend twice so the second run has a baseline
	err = runCodegaugeCommand(t, "trend", ".")
	require.NoError(t, err)
	err = runCodegaugeCommand(t, "trend", ".")
	require.NoError(t, err)

	// Run codegauge store status
	err = runCodegaugeCommand(t, "store", "status")
	require.NoError(t, err)
}

// TestCodegaugeWithPostgres tests the codegauge CLI with a PostgreSQL snapshot backend.
func TestCodegaugeWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("CODEGAUGE_STORE_BACKEND", "postgresql")
	_ = os.Setenv("CODEGAUGE_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("CODEGAUGE_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("CODEGAUGE_STORE_DB_CONNECT") }()

	// Run codegauge store migrate
	err = runCodegaugeCommand(t, "store", "migrate")
	require.NoError(t, err)

	// Run codegauge report (records a snapshot)
	err = runCodegaugeCommand(t, "report", ".")
	require.NoError(t, err)

	// Run codegauge trend against the recorded baseline
	err = runCodegaugeCommand(t, "trend", ".")
	require.NoError(t, err)

	// Run codegauge store status
	err = runCodegaugeCommand(t, "store", "status")
	require.NoError(t, err)
}

func runCodegaugeCommand(t *testing.T, args ...string) error {
	binaryPath := getCodegaugeBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
