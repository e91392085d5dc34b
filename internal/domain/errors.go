package domain

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrQuestionarioNotFound = errors.New("questionario not found")
	ErrQuestaoNotFound      = errors.New("questao not found")
	ErrDuplicateNome        = errors.New("questionario nome already exists")
	ErrFavoritosProtected   = errors.New("favoritos questionario cannot be deleted")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionFinished      = errors.New("session already finished")
)
