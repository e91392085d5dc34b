// Package app is the application layer, the only component that references
// multiple domain components. It orchestrates questionario and questao
// management, CSV imports, and the practice/simulado session flows.
package app
