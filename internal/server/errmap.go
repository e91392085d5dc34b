package server

import (
	"errors"

	"github.com/hamiltonbss/qapp/internal/domain"
	apperrors "github.com/hamiltonbss/qapp/internal/errors"
)

// mapDomainError translates domain sentinels into structured errors the
// middleware knows how to render.
func mapDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrValidation):
		return apperrors.ValidationError(err.Error())
	case errors.Is(err, domain.ErrQuestionarioNotFound):
		return apperrors.NotFoundError("questionario not found")
	case errors.Is(err, domain.ErrQuestaoNotFound):
		return apperrors.NotFoundError("questao not found")
	case errors.Is(err, domain.ErrSessionNotFound):
		return apperrors.NotFoundError("session not found")
	case errors.Is(err, domain.ErrDuplicateNome):
		return apperrors.ConflictError("questionario nome already exists")
	case errors.Is(err, domain.ErrFavoritosProtected):
		return apperrors.ConflictError("favoritos questionario cannot be deleted")
	case errors.Is(err, domain.ErrSessionFinished):
		return apperrors.ConflictError("session already finished")
	default:
		return apperrors.InternalError("internal server error", err)
	}
}
