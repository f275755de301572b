package interviewhandler

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	dbmodels "talenttrek-backend/models/db"
)

type fakeGpt struct {
	mu     sync.Mutex
	answer string
	err    error
	promts []string
}

func (f *fakeGpt) Generate(_ context.Context, promt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.promts = append(f.promts, promt)
	return f.answer, f.err
}

func (f *fakeGpt) AiName() dbmodels.AiName {
	return dbmodels.AiGeminiType
}

func (f *fakeGpt) Model() string {
	return "fake-model"
}

type fakeAiLogStore struct {
	mu   sync.Mutex
	recs []dbmodels.AiLog
	err  error
}

func (f *fakeAiLogStore) Save(_ context.Context, rec dbmodels.AiLog) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, rec)
	return "id", f.err
}

func TestGenerateQuestions(t *testing.T) {
	t.Run(`empty job title makes no upstream call`, func(t *testing.T) {
		gpt := &fakeGpt{answer: makeQuestionsJSON(10)}
		store := &fakeAiLogStore{}
		h := NewInstance(gpt, store)
		for _, title := range []string{"", "   ", "\n\t"} {
			_, err := h.GenerateQuestions(context.TODO(), title)
			require.NotNil(t, err)
			require.Equal(t, InvalidRequest, KindOf(err))
		}
		require.Len(t, gpt.promts, 0)
		require.Len(t, store.recs, 0)
	})

	t.Run(`success`, func(t *testing.T) {
		gpt := &fakeGpt{answer: "```json\n" + makeQuestionsJSON(10) + "\n```"}
		store := &fakeAiLogStore{}
		h := NewInstance(gpt, store)
		questions, err := h.GenerateQuestions(context.TODO(), " Backend Engineer ")
		require.Nil(t, err)
		require.Len(t, questions, 10)

		require.Len(t, gpt.promts, 1)
		require.True(t, strings.Contains(gpt.promts[0], "Format for job title: Backend Engineer."))

		require.Len(t, store.recs, 1)
		require.Equal(t, "Backend Engineer", store.recs[0].JobTitle)
		require.Equal(t, dbmodels.AiLogSuccess, store.recs[0].Status)
		require.Equal(t, dbmodels.AiGeminiType, store.recs[0].AiName)
		require.Equal(t, "fake-model", store.recs[0].Model)
		require.Equal(t, dbmodels.AiInterviewQuestionsType, store.recs[0].ReqestType)
		require.Equal(t, "", store.recs[0].ErrorKind)
	})

	t.Run(`upstream failure is not retried`, func(t *testing.T) {
		upstreamErr := errors.New("quota exceeded")
		gpt := &fakeGpt{err: upstreamErr}
		store := &fakeAiLogStore{}
		h := NewInstance(gpt, store)
		_, err := h.GenerateQuestions(context.TODO(), "Designer")
		require.Equal(t, UpstreamInvocationError, KindOf(err))
		require.True(t, errors.Is(err, upstreamErr))
		require.Len(t, gpt.promts, 1)

		require.Len(t, store.recs, 1)
		require.Equal(t, dbmodels.AiLogFail, store.recs[0].Status)
		require.Equal(t, string(UpstreamInvocationError), store.recs[0].ErrorKind)
	})

	t.Run(`format and shape failures`, func(t *testing.T) {
		cases := map[string]ErrorKind{
			"not json at all":     UpstreamFormatError,
			makeQuestionsJSON(9):  UpstreamShapeError,
			makeQuestionsJSON(11): UpstreamShapeError,
			`{"id": 1}`:           UpstreamShapeError,
		}
		for answer, kind := range cases {
			store := &fakeAiLogStore{}
			h := NewInstance(&fakeGpt{answer: answer}, store)
			questions, err := h.GenerateQuestions(context.TODO(), "QA Engineer")
			require.Nil(t, questions)
			require.Equal(t, kind, KindOf(err))
			require.Len(t, store.recs, 1)
			require.Equal(t, string(kind), store.recs[0].ErrorKind)
		}
	})

	t.Run(`audit log failure does not fail request`, func(t *testing.T) {
		store := &fakeAiLogStore{err: errors.New("db is down")}
		h := NewInstance(&fakeGpt{answer: makeQuestionsJSON(10)}, store)
		questions, err := h.GenerateQuestions(context.TODO(), "Analyst")
		require.Nil(t, err)
		require.Len(t, questions, 10)
	})
}

func TestBuildPromt(t *testing.T) {
	promt := buildPromt("Data Scientist")
	require.True(t, strings.Contains(promt, "Format for job title: Data Scientist."))
	require.True(t, strings.Contains(promt, "generate 10 concise interview questions and answers"))
	require.True(t, strings.Contains(promt, `Example output: [{"id": 1,`))
	require.Equal(t, promt, buildPromt("Data Scientist"))
}

func TestKindOf(t *testing.T) {
	require.Equal(t, ErrorKind(""), KindOf(nil))
	require.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	wrapped := errors.Wrap(newError(UpstreamShapeError, errors.New("short")), "context")
	require.Equal(t, UpstreamShapeError, KindOf(wrapped))
}
