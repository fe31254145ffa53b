package doctor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// JobAPICheck probes the configured Arbeitsagentur job search endpoint for
// reachability.
type JobAPICheck struct {
	// URL is the endpoint under test.
	URL string

	client *resty.Client
}

// NewJobAPICheck returns a JobAPICheck with a ready HTTP client.
func NewJobAPICheck(rawURL string) *JobAPICheck {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(rawURL, "/")).
		SetTimeout(checkTimeout).
		SetHeader("Accept", "application/json")

	return &JobAPICheck{URL: rawURL, client: cli}
}

func (c *JobAPICheck) Name() string { return "job-api" }

func (c *JobAPICheck) Run(ctx context.Context) Result {
	if c.URL == "" {
		return Result{
			Name:   c.Name(),
			Status: StatusWarn,
			Detail: "ARBEITSAGENTUR_API_URL is not set",
		}
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return Result{
			Name:   c.Name(),
			Status: StatusFail,
			Detail: fmt.Sprintf("request failed: %v", err),
		}
	}

	elapsed := time.Since(start).Round(time.Millisecond)

	if resp.StatusCode() >= http.StatusInternalServerError {
		return Result{
			Name:   c.Name(),
			Status: StatusFail,
			Detail: fmt.Sprintf("endpoint answered %d in %s", resp.StatusCode(), elapsed),
		}
	}

	// Any non-5xx answer, auth challenges included, proves the endpoint
	// is reachable from here.
	return Result{
		Name:   c.Name(),
		Status: StatusOK,
		Detail: fmt.Sprintf("endpoint answered %d in %s", resp.StatusCode(), elapsed),
	}
}
