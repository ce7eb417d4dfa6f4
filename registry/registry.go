// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package registry resolves the newest known API version for Azure resource
// types by querying the Azure Resource Manager provider metadata.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/biceplab/to"
)

var (
	// ErrResourceTypeNotFound is returned when the namespace exists but does not define the resource type.
	ErrResourceTypeNotFound = errors.New("resource type not found in provider namespace")

	// ErrNoAPIVersions is returned when the resource type defines no API versions.
	ErrNoAPIVersions = errors.New("no API versions listed for resource type")
)

// providerGetter is the subset of armresources.ProvidersClient that the
// registry depends on, allowing a test double to stand in for ARM.
type providerGetter interface {
	Get(ctx context.Context, resourceProviderNamespace string, options *armresources.ProvidersClientGetOptions) (armresources.ProvidersClientGetResponse, error)
}

// ProviderRegistry looks up provider metadata from ARM. Provider responses
// are cached per namespace for the lifetime of the registry, so auditing a
// corpus costs one GET per distinct namespace.
type ProviderRegistry struct {
	client providerGetter
	mu     sync.RWMutex
	cache  map[string]*armresources.Provider
}

// NewProviderRegistry creates a registry scoped to the given subscription.
func NewProviderRegistry(subscriptionID string, cred azcore.TokenCredential, options *arm.ClientOptions) (*ProviderRegistry, error) {
	client, err := armresources.NewProvidersClient(subscriptionID, cred, options)
	if err != nil {
		return nil, fmt.Errorf("creating providers client: %w", err)
	}
	return &ProviderRegistry{
		client: client,
		cache:  make(map[string]*armresources.Provider),
	}, nil
}

// LatestAPIVersion returns the newest API version for the resource type in
// the given provider namespace. ARM lists API versions newest first; only the
// first element is consulted.
func (r *ProviderRegistry) LatestAPIVersion(ctx context.Context, namespace, resourceType string) (string, error) {
	provider, err := r.provider(ctx, namespace)
	if err != nil {
		return "", err
	}
	for _, rt := range provider.ResourceTypes {
		if !strings.EqualFold(to.ValOrZero(rt.ResourceType), resourceType) {
			continue
		}
		if len(rt.APIVersions) == 0 {
			return "", fmt.Errorf("%w: %s/%s", ErrNoAPIVersions, namespace, resourceType)
		}
		return to.ValOrZero(rt.APIVersions[0]), nil
	}
	return "", fmt.Errorf("%w: %s/%s", ErrResourceTypeNotFound, namespace, resourceType)
}

func (r *ProviderRegistry) provider(ctx context.Context, namespace string) (*armresources.Provider, error) {
	r.mu.RLock()
	if p, ok := r.cache[namespace]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	resp, err := r.client.Get(ctx, namespace, nil)
	if err != nil {
		return nil, fmt.Errorf("getting provider %s: %w", namespace, err)
	}

	r.mu.Lock()
	r.cache[namespace] = &resp.Provider
	r.mu.Unlock()
	return &resp.Provider, nil
}
