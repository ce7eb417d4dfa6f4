// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deploy

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	output []byte
	err    error
	calls  [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func TestCreateResourceGroup(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: []byte(`{"name": "biceplab-rg"}`)}
	cli := &AzCLI{runner: runner}

	require.NoError(t, cli.CreateResourceGroup(context.Background(), "biceplab-rg", "westeurope"))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{
		"az", "group", "create",
		"--name", "biceplab-rg",
		"--location", "westeurope",
		"--output", "json",
	}, runner.calls[0])
}

func TestValidateTemplate(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: []byte(`{}`)}
	cli := &AzCLI{runner: runner}

	err := cli.ValidateTemplate(context.Background(), TemplateRequest{
		ResourceGroup:  "biceplab-rg",
		TemplateFile:   "main.bicep",
		ParametersFile: "main.parameters.json",
	})
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "validate")
	assert.Contains(t, runner.calls[0], "@main.parameters.json")
}

func TestDeployTemplate(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: []byte(`{
		"name": "biceplab-123",
		"properties": {
			"provisioningState": "Succeeded",
			"outputs": {
				"vaultUri": {"type": "String", "value": "https://kv.vault.azure.net/"}
			}
		}
	}`)}
	cli := &AzCLI{runner: runner}

	result, err := cli.DeployTemplate(context.Background(), TemplateRequest{
		ResourceGroup: "biceplab-rg",
		Name:          "biceplab-123",
		TemplateFile:  "main.bicep",
	})
	require.NoError(t, err)
	assert.Equal(t, "biceplab-123", result.Name)
	assert.Equal(t, "Succeeded", result.ProvisioningState)
	assert.Equal(t, "https://kv.vault.azure.net/", result.Outputs["vaultUri"])
}

func TestDeployTemplateGeneratesName(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: []byte(`{"name": "x", "properties": {"provisioningState": "Succeeded"}}`)}
	cli := &AzCLI{runner: runner}

	_, err := cli.DeployTemplate(context.Background(), TemplateRequest{
		ResourceGroup: "biceplab-rg",
		TemplateFile:  "main.bicep",
	})
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)

	var name string
	for i, arg := range runner.calls[0] {
		if arg == "--name" {
			name = runner.calls[0][i+1]
		}
	}
	assert.True(t, strings.HasPrefix(name, "biceplab-"), "generated deployment name, got %q", name)
	assert.Greater(t, len(name), len("biceplab-"))
}

func TestDeployTemplateSurfacesCLIError(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{err: errors.New("az deployment: ERROR: InvalidTemplate")}
	cli := &AzCLI{runner: runner}

	_, err := cli.DeployTemplate(context.Background(), TemplateRequest{
		ResourceGroup: "biceplab-rg",
		TemplateFile:  "main.bicep",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidTemplate")
}

func TestListResources(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: []byte(`[
		{"id": "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/st001",
		 "name": "st001", "type": "Microsoft.Storage/storageAccounts", "location": "westeurope"}
	]`)}
	cli := &AzCLI{runner: runner}

	resources, err := cli.ListResources(context.Background(), "biceplab-rg")
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "st001", resources[0].Name)
	assert.Equal(t, "Microsoft.Storage/storageAccounts", resources[0].Type)
}
