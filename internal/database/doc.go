// Package database implements the MongoDB-backed repositories.
//
// Provides QuestionarioRepo, QuestaoRepo and RespostaRepo over the
// questionarios, questoes and respostas collections. Indexes are ensured at
// startup, and the reserved Favoritos questionario is seeded alongside them.
package database
