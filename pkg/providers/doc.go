// Package providers defines the provider-agnostic generation types and the
// shared HTTP JSON helper the concrete provider clients build on.
package providers
