package secret

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// refPrefix starts every secret reference.
const refPrefix = "secretref:"

var inlineRefPattern = regexp.MustCompile(`secretref:[^:\s]+:\S+`)

// Resolver expands environment variables and resolves secret references.
//
// A value that is entirely a reference is replaced by the provider's value.
// References embedded in a longer value are replaced in place, left to right.
type Resolver struct {
	providers map[string]Provider
	strict    bool
}

// NewResolver creates a resolver over providers. A strict resolver rejects
// empty provider values.
func NewResolver(strict bool, providers ...Provider) *Resolver {
	r := &Resolver{strict: strict}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds provider, replacing any provider of the same name.
func (r *Resolver) Register(provider Provider) {
	if r == nil || provider == nil {
		return
	}
	if r.providers == nil {
		r.providers = make(map[string]Provider)
	}
	r.providers[provider.Name()] = provider
}

// ResolveValue expands ${VAR} references, then resolves secret references.
// A nil Resolver only expands the environment.
func (r *Resolver) ResolveValue(ctx context.Context, value string) (string, error) {
	expanded, err := ExpandEnvStrict(value)
	if err != nil || r == nil {
		return expanded, err
	}

	if name, ref, ok := ParseSecretRef(expanded); ok {
		return r.lookup(ctx, name, ref)
	}
	if strings.HasPrefix(expanded, refPrefix) && !strings.ContainsAny(expanded, " \t") {
		return "", fmt.Errorf("%w: %q", ErrInvalidReference, expanded)
	}

	var lookupErr error
	out := inlineRefPattern.ReplaceAllStringFunc(expanded, func(match string) string {
		if lookupErr != nil {
			return match
		}
		name, ref, _ := ParseSecretRef(match)
		v, err := r.lookup(ctx, name, ref)
		if err != nil {
			lookupErr = err
			return match
		}
		return v
	})
	if lookupErr != nil {
		return "", lookupErr
	}
	return out, nil
}

// Close closes every provider, returning the first error.
func (r *Resolver) Close() error {
	if r == nil {
		return nil
	}
	var first error
	for _, p := range r.providers {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ParseSecretRef splits a full reference of the form
//
//	secretref:<provider>:<ref>
func ParseSecretRef(value string) (provider, ref string, ok bool) {
	rest, found := strings.CutPrefix(value, refPrefix)
	if !found {
		return "", "", false
	}
	provider, ref, found = strings.Cut(rest, ":")
	if !found || provider == "" || ref == "" {
		return "", "", false
	}
	return provider, ref, true
}

func (r *Resolver) lookup(ctx context.Context, name, ref string) (string, error) {
	p, ok := r.providers[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrProviderNotRegistered, name)
	}
	v, err := p.Resolve(ctx, ref)
	if err != nil {
		return "", err
	}
	if v == "" && r.strict {
		return "", fmt.Errorf("%w: %s:%s", ErrEmptyValue, name, ref)
	}
	return v, nil
}
