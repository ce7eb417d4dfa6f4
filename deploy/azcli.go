// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/uuid"
)

// ErrAzNotFound is returned when the Azure CLI binary cannot be located.
var ErrAzNotFound = errors.New("azure cli not found: install it from https://aka.ms/azure-cli and run 'az login'")

const azBinary = "az"

// CommandRunner executes an external command and returns its standard output.
// It exists so tests can substitute a double for the real CLI.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			// Surface the CLI's own error text verbatim.
			return nil, fmt.Errorf("%s %s: %s", name, args[0], strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("%s %s: %w", name, args[0], err)
	}
	return out, nil
}

var _ Backend = (*AzCLI)(nil)

// AzCLI implements Backend by invoking the `az` command.
type AzCLI struct {
	runner CommandRunner
}

// NewAzCLI returns an AzCLI backend, verifying up front that the binary is on
// the PATH so that a missing CLI is reported as a precondition error with a
// corrective instruction rather than failing on first use.
func NewAzCLI() (*AzCLI, error) {
	if _, err := exec.LookPath(azBinary); err != nil {
		return nil, ErrAzNotFound
	}
	return &AzCLI{runner: execRunner{}}, nil
}

func (a *AzCLI) run(ctx context.Context, args ...string) ([]byte, error) {
	return a.runner.Run(ctx, azBinary, append(args, "--output", "json")...)
}

// CreateResourceGroup creates the resource group, a no-op when it already
// exists unchanged (the CLI's own idempotency applies).
func (a *AzCLI) CreateResourceGroup(ctx context.Context, name, location string) error {
	_, err := a.run(ctx, "group", "create", "--name", name, "--location", location)
	return err
}

// ValidateTemplate asks the CLI to validate the template without deploying it.
func (a *AzCLI) ValidateTemplate(ctx context.Context, req TemplateRequest) error {
	args := []string{
		"deployment", "group", "validate",
		"--resource-group", req.ResourceGroup,
		"--template-file", req.TemplateFile,
	}
	args = appendParameters(args, req.ParametersFile)
	_, err := a.run(ctx, args...)
	return err
}

// DeployTemplate submits the template and parses the deployment result from
// the CLI's JSON output.
func (a *AzCLI) DeployTemplate(ctx context.Context, req TemplateRequest) (*DeployResult, error) {
	name := req.Name
	if name == "" {
		name = "biceplab-" + uuid.NewString()
	}
	args := []string{
		"deployment", "group", "create",
		"--resource-group", req.ResourceGroup,
		"--name", name,
		"--template-file", req.TemplateFile,
	}
	args = appendParameters(args, req.ParametersFile)
	out, err := a.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Name       string `json:"name"`
		Properties struct {
			ProvisioningState string `json:"provisioningState"`
			Outputs           map[string]struct {
				Value any `json:"value"`
			} `json:"outputs"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(out, &parsed); err != nil {
		return nil, fmt.Errorf("parsing deployment output: %w", err)
	}

	result := &DeployResult{
		Name:              parsed.Name,
		ProvisioningState: parsed.Properties.ProvisioningState,
		Outputs:           make(map[string]any, len(parsed.Properties.Outputs)),
	}
	for k, v := range parsed.Properties.Outputs {
		result.Outputs[k] = v.Value
	}
	return result, nil
}

// ListResources returns the resources in the group.
func (a *AzCLI) ListResources(ctx context.Context, resourceGroup string) ([]Resource, error) {
	out, err := a.run(ctx, "resource", "list", "--resource-group", resourceGroup)
	if err != nil {
		return nil, err
	}
	var resources []Resource
	if err := json.Unmarshal(out, &resources); err != nil {
		return nil, fmt.Errorf("parsing resource list: %w", err)
	}
	return resources, nil
}

func appendParameters(args []string, parametersFile string) []string {
	if parametersFile == "" {
		return args
	}
	return append(args, "--parameters", "@"+parametersFile)
}
