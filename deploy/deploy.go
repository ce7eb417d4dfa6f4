// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package deploy defines the deployment backend used to push tutorial
// templates to Azure. Callers depend only on the Backend interface; the
// shipped implementation shells out to the Azure CLI so that deployments run
// under the user's existing `az login` session.
package deploy

import (
	"context"
)

// TemplateRequest describes a template submission.
type TemplateRequest struct {
	ResourceGroup  string
	Name           string // deployment name, generated when empty
	TemplateFile   string
	ParametersFile string // optional
}

// DeployResult is the outcome of a completed deployment.
type DeployResult struct {
	Name              string
	ProvisioningState string
	Outputs           map[string]any
}

// Resource is a deployed resource as reported by the backend.
type Resource struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// Backend is the capability surface for cloud operations. Every operation is
// all-or-nothing: failures surface the backend's own output verbatim with no
// retry or partial-failure recovery.
type Backend interface {
	CreateResourceGroup(ctx context.Context, name, location string) error
	ValidateTemplate(ctx context.Context, req TemplateRequest) error
	DeployTemplate(ctx context.Context, req TemplateRequest) (*DeployResult, error)
	ListResources(ctx context.Context, resourceGroup string) ([]Resource, error)
}
