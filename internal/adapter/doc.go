// Package adapter holds the outbound integrations: clients for services the
// harness talks to but does not own. Adapters translate between the domain
// models and the vendor wire formats; everything above them sees domain
// types and sentinel errors only.
package adapter
