// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (questionario.go, questao.go, session.go, errors.go)
// hold shared types and cross-cutting interfaces. No implementation code -
// just contracts. Keeping interfaces here prevents circular imports between
// the app service and the storage adapters.
package domain
