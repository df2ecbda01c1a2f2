package model

import (
	"fmt"
	"sort"

	"lexasta/internal/config"
	"lexasta/internal/port"
)

// ProviderFactory is a function that creates a ModelClient from a provider config.
type ProviderFactory func(cfg *config.ParserProviderConfig) (port.ModelClient, error)

// registry of provider factories, populated by init() in each provider package
// or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a model provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// Registered returns the names of the registered providers, sorted.
func Registered() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewClient creates a ModelClient from a provider config using the registered factory.
func NewClient(cfg *config.ParserProviderConfig) (port.ModelClient, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// NewFromConfig builds the client for the configured provider chain. A single
// provider is returned as is; two or more are wrapped in a FallbackClient.
func NewFromConfig(cfg *config.ParserConfig) (port.ModelClient, error) {
	chain := cfg.Providers()
	if len(chain) == 1 {
		return NewClient(chain[0])
	}

	clients := make([]port.ModelClient, 0, len(chain))
	names := make([]string, 0, len(chain))
	for _, pc := range chain {
		c, err := NewClient(pc)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
		names = append(names, pc.Provider)
	}
	return NewFallbackClient(clients, names, nil), nil
}
