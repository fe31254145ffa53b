package doctor

import (
	"context"

	"github.com/mycareerassist/careerctl/internal/config"
)

// SecretsCheck verifies that the loaded configuration is complete enough to
// start the application.
type SecretsCheck struct {
	// Config is the merged configuration under test.
	Config *config.Config
}

func (c *SecretsCheck) Name() string { return "secrets" }

func (c *SecretsCheck) Run(_ context.Context) Result {
	if err := c.Config.ValidateComplete(); err != nil {
		return Result{
			Name:   c.Name(),
			Status: StatusFail,
			Detail: err.Error(),
		}
	}

	return Result{
		Name:   c.Name(),
		Status: StatusOK,
		Detail: "all required secrets are set",
	}
}
