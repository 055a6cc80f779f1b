// Package service provides domain services for WhiteHole.
//
// RegistryService is the VLAN record registry: it owns the device
// identity, delegates storage to a VLANRepository and adds logging,
// metrics, statistics and configuration export/import on top.
//
// Failed operations return a *domain.DomainError (possibly wrapped) and
// are logged at warn level. Nothing in this package panics on bad input.
package service
