package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamiltonbss/qapp/internal/domain"
)

// --- Mock implementations ---

type mockQuestionarioRepo struct {
	listFn      func(ctx context.Context) ([]domain.Questionario, error)
	getByIDFn   func(ctx context.Context, id primitive.ObjectID) (*domain.Questionario, error)
	getByNomeFn func(ctx context.Context, nome string) (*domain.Questionario, error)
	insertFn    func(ctx context.Context, nome, descricao string) (*domain.Questionario, error)
	deleteFn    func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockQuestionarioRepo) List(ctx context.Context) ([]domain.Questionario, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockQuestionarioRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Questionario, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &domain.Questionario{ID: id, Nome: "Mock"}, nil
}

func (m *mockQuestionarioRepo) GetByNome(ctx context.Context, nome string) (*domain.Questionario, error) {
	if m.getByNomeFn != nil {
		return m.getByNomeFn(ctx, nome)
	}
	return nil, domain.ErrQuestionarioNotFound
}

func (m *mockQuestionarioRepo) Insert(ctx context.Context, nome, descricao string) (*domain.Questionario, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, nome, descricao)
	}
	return &domain.Questionario{ID: primitive.NewObjectID(), Nome: nome, Descricao: descricao}, nil
}

func (m *mockQuestionarioRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockQuestaoRepo struct {
	listByQuestionarioFn   func(ctx context.Context, questionarioID primitive.ObjectID) ([]domain.Questao, error)
	getByIDFn              func(ctx context.Context, id primitive.ObjectID) (*domain.Questao, error)
	insertFn               func(ctx context.Context, q *domain.Questao) (*domain.Questao, error)
	updateExplicacaoFn     func(ctx context.Context, id primitive.ObjectID, explicacao string) error
	countByQuestionariosFn func(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	sampleFn               func(ctx context.Context, ids []primitive.ObjectID, n int) ([]domain.Questao, error)
	deleteByQuestionarioFn func(ctx context.Context, questionarioID primitive.ObjectID) error
}

func (m *mockQuestaoRepo) ListByQuestionario(ctx context.Context, questionarioID primitive.ObjectID) ([]domain.Questao, error) {
	if m.listByQuestionarioFn != nil {
		return m.listByQuestionarioFn(ctx, questionarioID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockQuestaoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Questao, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrQuestaoNotFound
}

func (m *mockQuestaoRepo) Insert(ctx context.Context, q *domain.Questao) (*domain.Questao, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, q)
	}
	inserted := *q
	inserted.ID = primitive.NewObjectID()
	return &inserted, nil
}

func (m *mockQuestaoRepo) UpdateExplicacao(ctx context.Context, id primitive.ObjectID, explicacao string) error {
	if m.updateExplicacaoFn != nil {
		return m.updateExplicacaoFn(ctx, id, explicacao)
	}
	return nil
}

func (m *mockQuestaoRepo) CountByQuestionarios(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if m.countByQuestionariosFn != nil {
		return m.countByQuestionariosFn(ctx, ids)
	}
	return 0, nil
}

func (m *mockQuestaoRepo) SampleByQuestionarios(ctx context.Context, ids []primitive.ObjectID, n int) ([]domain.Questao, error) {
	if m.sampleFn != nil {
		return m.sampleFn(ctx, ids, n)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockQuestaoRepo) DeleteByQuestionario(ctx context.Context, questionarioID primitive.ObjectID) error {
	if m.deleteByQuestionarioFn != nil {
		return m.deleteByQuestionarioFn(ctx, questionarioID)
	}
	return nil
}

type mockRespostaRepo struct {
	insertFn     func(ctx context.Context, resposta domain.Resposta) error
	desempenhoFn func(ctx context.Context, questionarioID primitive.ObjectID) (*domain.Desempenho, error)
	deleteFn     func(ctx context.Context, questionarioID primitive.ObjectID) error
}

func (m *mockRespostaRepo) Insert(ctx context.Context, resposta domain.Resposta) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, resposta)
	}
	return nil
}

func (m *mockRespostaRepo) Desempenho(ctx context.Context, questionarioID primitive.ObjectID) (*domain.Desempenho, error) {
	if m.desempenhoFn != nil {
		return m.desempenhoFn(ctx, questionarioID)
	}
	return &domain.Desempenho{}, nil
}

func (m *mockRespostaRepo) DeleteByQuestionario(ctx context.Context, questionarioID primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, questionarioID)
	}
	return nil
}

// --- In-memory session stores ---

type fakePracticeState struct {
	questionarioID string
	pool           []string
	answered       int64
	correct        int64
}

type fakePracticeStore struct {
	sessions map[uuid.UUID]*fakePracticeState
}

func newFakePracticeStore() *fakePracticeStore {
	return &fakePracticeStore{sessions: make(map[uuid.UUID]*fakePracticeState)}
}

func (f *fakePracticeStore) Create(_ context.Context, id uuid.UUID, questionarioID string, pool []string) error {
	f.sessions[id] = &fakePracticeState{questionarioID: questionarioID, pool: append([]string(nil), pool...)}
	return nil
}

func (f *fakePracticeStore) Get(_ context.Context, id uuid.UUID) (*domain.PracticeSession, error) {
	st, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &domain.PracticeSession{
		ID:             id,
		QuestionarioID: st.questionarioID,
		Remaining:      int64(len(st.pool)),
		Answered:       st.answered,
		Correct:        st.correct,
	}, nil
}

func (f *fakePracticeStore) Current(_ context.Context, id uuid.UUID) (string, error) {
	st, ok := f.sessions[id]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	if len(st.pool) == 0 {
		return "", nil
	}
	return st.pool[0], nil
}

func (f *fakePracticeStore) Advance(_ context.Context, id uuid.UUID, answered, correct bool) error {
	st, ok := f.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if len(st.pool) > 0 {
		st.pool = st.pool[1:]
	}
	if answered {
		st.answered++
	}
	if correct {
		st.correct++
	}
	return nil
}

func (f *fakePracticeStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}

type fakeSimuladoState struct {
	questaoIDs []string
	idx        int64
	acertos    int64
}

type fakeSimuladoStore struct {
	sessions map[uuid.UUID]*fakeSimuladoState
}

func newFakeSimuladoStore() *fakeSimuladoStore {
	return &fakeSimuladoStore{sessions: make(map[uuid.UUID]*fakeSimuladoState)}
}

func (f *fakeSimuladoStore) Create(_ context.Context, id uuid.UUID, questaoIDs []string) error {
	f.sessions[id] = &fakeSimuladoState{questaoIDs: append([]string(nil), questaoIDs...)}
	return nil
}

func (f *fakeSimuladoStore) Get(_ context.Context, id uuid.UUID) (*domain.SimuladoSession, error) {
	st, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &domain.SimuladoSession{
		ID:      id,
		Total:   int64(len(st.questaoIDs)),
		Index:   st.idx,
		Acertos: st.acertos,
	}, nil
}

func (f *fakeSimuladoStore) Current(_ context.Context, id uuid.UUID) (string, error) {
	st, ok := f.sessions[id]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	if st.idx >= int64(len(st.questaoIDs)) {
		return "", nil
	}
	return st.questaoIDs[st.idx], nil
}

func (f *fakeSimuladoStore) RecordAnswer(_ context.Context, id uuid.UUID, correct bool) error {
	st, ok := f.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if st.idx >= int64(len(st.questaoIDs)) {
		return domain.ErrSessionFinished
	}
	st.idx++
	if correct {
		st.acertos++
	}
	return nil
}

func (f *fakeSimuladoStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}
