package doctor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DatabaseCheck validates the configured DATABASE_URL. It always parses the
// connection string; when Connect is set it also dials the database and
// pings it.
type DatabaseCheck struct {
	// URL is the connection string under test.
	URL string

	// Connect enables the live dial-and-ping probe.
	Connect bool
}

func (c *DatabaseCheck) Name() string { return "database" }

func (c *DatabaseCheck) Run(ctx context.Context) Result {
	if c.URL == "" {
		return Result{
			Name:   c.Name(),
			Status: StatusWarn,
			Detail: "DATABASE_URL is not set",
		}
	}

	parsed, err := pgconn.ParseConfig(c.URL)
	if err != nil {
		return Result{
			Name:   c.Name(),
			Status: StatusFail,
			Detail: fmt.Sprintf("connection string does not parse: %v", err),
		}
	}

	if !c.Connect {
		return Result{
			Name:   c.Name(),
			Status: StatusOK,
			Detail: fmt.Sprintf("connection string parses (host %s, database %s)", parsed.Host, parsed.Database),
		}
	}

	conn, err := pgx.Connect(ctx, c.URL)
	if err != nil {
		return Result{
			Name:   c.Name(),
			Status: StatusFail,
			Detail: fmt.Sprintf("connect failed: %v", err),
		}
	}
	defer conn.Close(ctx)

	if err := conn.Ping(ctx); err != nil {
		return Result{
			Name:   c.Name(),
			Status: StatusFail,
			Detail: fmt.Sprintf("ping failed: %v", err),
		}
	}

	return Result{
		Name:   c.Name(),
		Status: StatusOK,
		Detail: fmt.Sprintf("connected to %s", parsed.Host),
	}
}
