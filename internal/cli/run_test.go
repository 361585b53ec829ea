package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probatch/probatch/internal/config"
	"github.com/probatch/probatch/internal/model"
)

// newRunCmdForTest returns a fresh command carrying the run flags so
// each test starts with a clean Changed() state.
func newRunCmdForTest() *cobra.Command {
	cmd := &cobra.Command{Use: "run"}
	addRunFlags(cmd)
	return cmd
}

func twoProjectConfig() *config.Config {
	return &config.Config{
		Projects: []model.Project{
			{ID: "api", Name: "API", BaseURL: "https://api.example.com"},
			{ID: "admin", Name: "Admin", BaseURL: "https://admin.example.com"},
		},
		TestCases: []model.TestCase{
			{ID: "get-user", ProjectID: "api", Method: "GET", Endpoint: "/users/1", ExpectedStatus: 200},
			{ID: "list-users", ProjectID: "api", Method: "GET", Endpoint: "/users", ExpectedStatus: 200},
		},
		Defaults: config.Defaults{
			ConcurrencyLimit: 5,
			Timeout:          10 * time.Second,
			RetryCount:       2,
			Strategy:         "parallel",
		},
	}
}

func TestBuildRequest_UsesConfigDefaults(t *testing.T) {
	cmd := newRunCmdForTest()

	req, caseCount, err := buildRequest(cmd, twoProjectConfig(), "api")
	require.NoError(t, err)

	assert.Equal(t, "api", req.ProjectID)
	assert.Equal(t, []string{"get-user", "list-users"}, req.TestCaseIDs)
	assert.Equal(t, 2, caseCount)
	assert.Equal(t, 5, req.ConcurrencyLimit)
	assert.Equal(t, 10*time.Second, req.Timeout)
	assert.Equal(t, 2, req.RetryCount)
	assert.Equal(t, "parallel", req.Strategy)
}

func TestBuildRequest_FlagsOverrideDefaults(t *testing.T) {
	cmd := newRunCmdForTest()
	require.NoError(t, cmd.Flags().Set("concurrency", "7"))
	require.NoError(t, cmd.Flags().Set("timeout", "5s"))
	require.NoError(t, cmd.Flags().Set("retries", "1"))
	require.NoError(t, cmd.Flags().Set("strategy", "serial"))

	req, _, err := buildRequest(cmd, twoProjectConfig(), "api")
	require.NoError(t, err)

	assert.Equal(t, 7, req.ConcurrencyLimit)
	assert.Equal(t, 5*time.Second, req.Timeout)
	assert.Equal(t, 1, req.RetryCount)
	assert.Equal(t, "serial", req.Strategy)
}

func TestBuildRequest_PartialOverrideKeepsOtherDefaults(t *testing.T) {
	cmd := newRunCmdForTest()
	require.NoError(t, cmd.Flags().Set("strategy", "mixed"))

	req, _, err := buildRequest(cmd, twoProjectConfig(), "api")
	require.NoError(t, err)

	assert.Equal(t, "mixed", req.Strategy)
	assert.Equal(t, 5, req.ConcurrencyLimit)
	assert.Equal(t, 10*time.Second, req.Timeout)
	assert.Equal(t, 2, req.RetryCount)
}

func TestBuildRequest_InfersSingleProject(t *testing.T) {
	cmd := newRunCmdForTest()
	cfg := twoProjectConfig()
	cfg.Projects = cfg.Projects[:1]

	req, caseCount, err := buildRequest(cmd, cfg, "")
	require.NoError(t, err)

	assert.Equal(t, "api", req.ProjectID)
	assert.Equal(t, 2, caseCount)
}

func TestBuildRequest_MultipleProjectsRequireFlag(t *testing.T) {
	cmd := newRunCmdForTest()

	_, _, err := buildRequest(cmd, twoProjectConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--project is required")
}

func TestBuildRequest_ProjectWithoutCases(t *testing.T) {
	cmd := newRunCmdForTest()

	req, caseCount, err := buildRequest(cmd, twoProjectConfig(), "admin")
	require.NoError(t, err)

	assert.Equal(t, "admin", req.ProjectID)
	assert.Zero(t, caseCount)
	assert.Empty(t, req.TestCaseIDs)
}
