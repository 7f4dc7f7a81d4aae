package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edupath/internal/domain/entity"
)

type profileFixture struct {
	svc      *ProfileService
	store    *fakeStore
	gen      *fakeGenerator
	extract  *fakeExtractor
	users    *fakeUsers
	index    *fakeIndex
	notifier *fakeNotifier
	userID   int64
}

func newProfileFixture(t *testing.T, gen *fakeGenerator) *profileFixture {
	t.Helper()
	f := &profileFixture{
		store:    newFakeStore(),
		gen:      gen,
		extract:  &fakeExtractor{text: "Built a CNN classifier"},
		users:    newFakeUsers(),
		index:    &fakeIndex{},
		notifier: &fakeNotifier{},
	}
	u := &entity.User{Email: "asha@example.com", Password: "x"}
	require.NoError(t, f.users.Create(context.Background(), u))
	f.userID = u.ID
	f.svc = NewProfileService(f.store, f.store, f.users, f.extract, gen, StaticJobSource{}, nil, f.index, f.notifier, nil)
	return f
}

func ashaInput() SubmitInput {
	return SubmitInput{Name: "Asha", CGPA: "8.1", Interests: "AI", Skills: "Python, SQL"}
}

func TestSubmitStoresProfileWithElevenRecommendations(t *testing.T) {
	f := newProfileFixture(t, echoGenerator())

	sub, err := f.svc.Submit(context.Background(), f.userID, ashaInput())
	require.NoError(t, err)

	p := sub.Profile
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, "8.1", p.CGPA)
	assert.Equal(t, "", p.ResumeText)
	assert.Equal(t, "python,ml,aws", p.Keywords)
	assert.Equal(t, "generated: 3-bullet student summary:", p.Summary)
	assert.Equal(t, "generated: 3 skill gaps with fixes:", p.Gaps)
	assert.Equal(t, "generated: 6-month roadmap:", p.Roadmap)

	recs, err := f.store.ListForProfile(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, recs, 11)
	types := make([]entity.RecommendationType, 0, len(recs))
	for _, r := range recs {
		types = append(types, r.Type)
	}
	assert.Equal(t, []entity.RecommendationType{"course", "course", "course", "career", "career", "career", "job", "job", "job", "job", "job"}, types)
	name, err := recs[1].Name()
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning A-Z", name)

	assert.Equal(t, Courses, sub.Courses)
	assert.Equal(t, Careers, sub.Careers)
	require.Len(t, sub.Jobs, 5)
	assert.Equal(t, "Infosys", sub.Jobs[4].Company)
	assert.Equal(t, []int64{p.ID}, f.index.indexed)
	assert.Equal(t, []int64{p.ID}, f.notifier.ready)
}

func TestSubmitGenerationPromptsAndBudgets(t *testing.T) {
	f := newProfileFixture(t, echoGenerator())
	_, err := f.svc.Submit(context.Background(), f.userID, ashaInput())
	require.NoError(t, err)

	blob := "CGPA: 8.1\nSkills: Python, SQL\nInterests: AI\nResume: "
	require.Len(t, f.gen.calls, 3)
	assert.Equal(t, call{Prompt: "3-bullet student summary:\n" + blob, MaxTokens: 150}, f.gen.calls[0])
	assert.Equal(t, call{Prompt: "3 skill gaps with fixes:\n" + blob, MaxTokens: 250}, f.gen.calls[1])
	assert.Equal(t, call{Prompt: "6-month roadmap:\n" + blob, MaxTokens: 800}, f.gen.calls[2])
}

func TestSubmitDefaultsCGPA(t *testing.T) {
	f := newProfileFixture(t, echoGenerator())
	in := ashaInput()
	in.CGPA = "   "
	sub, err := f.svc.Submit(context.Background(), f.userID, in)
	require.NoError(t, err)
	assert.Equal(t, "7.0", sub.Profile.CGPA)
	assert.True(t, strings.HasSuffix(f.gen.calls[0].Prompt, "CGPA: 7.0\nSkills: Python, SQL\nInterests: AI\nResume: "))
}

func TestSubmitRequiresName(t *testing.T) {
	f := newProfileFixture(t, echoGenerator())
	in := ashaInput()
	in.Name = "  "
	_, err := f.svc.Submit(context.Background(), f.userID, in)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.store.profiles)
	assert.Empty(t, f.gen.calls)
}

func TestSubmitExtractsOnlyPDF(t *testing.T) {
	f := newProfileFixture(t, echoGenerator())
	f.svc.Archive = &fakeArchive{url: "https://storage.googleapis.com/b/resumes/1/x.pdf"}

	in := ashaInput()
	in.Document = &Upload{Filename: "notes.docx", Data: []byte("x")}
	sub, err := f.svc.Submit(context.Background(), f.userID, in)
	require.NoError(t, err)
	assert.Equal(t, 0, f.extract.calls)
	assert.Equal(t, "", sub.Profile.ResumeURL)

	in.Document = &Upload{Filename: "CV.PDF", Data: []byte("%PDF")}
	sub, err = f.svc.Submit(context.Background(), f.userID, in)
	require.NoError(t, err)
	assert.Equal(t, 1, f.extract.calls)
	assert.Equal(t, "Built a CNN classifier", sub.Profile.ResumeText)
	assert.Equal(t, "https://storage.googleapis.com/b/resumes/1/x.pdf", sub.Profile.ResumeURL)
}

func TestSubmitArchiveFailureIsNotFatal(t *testing.T) {
	f := newProfileFixture(t, echoGenerator())
	f.svc.Archive = &fakeArchive{err: errBoom}
	in := ashaInput()
	in.Document = &Upload{Filename: "cv.pdf", Data: []byte("%PDF")}

	sub, err := f.svc.Submit(context.Background(), f.userID, in)
	require.NoError(t, err)
	assert.Equal(t, "", sub.Profile.ResumeURL)
}

func TestSubmitStoresFailureMarkers(t *testing.T) {
	f := newProfileFixture(t, failingGenerator())

	sub, err := f.svc.Submit(context.Background(), f.userID, ashaInput())
	require.NoError(t, err)
	assert.True(t, entity.IsGenerationFailure(sub.Profile.Summary))
	assert.True(t, entity.IsGenerationFailure(sub.Profile.Gaps))
	assert.True(t, entity.IsGenerationFailure(sub.Profile.Roadmap))
	assert.Len(t, f.store.recs, 11)
}

func TestSubmitPersistenceFailureKeepsNothing(t *testing.T) {
	f := newProfileFixture(t, echoGenerator())
	f.store.failTx = true

	_, err := f.svc.Submit(context.Background(), f.userID, ashaInput())
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, f.store.profiles)
	assert.Empty(t, f.store.recs)
	assert.Empty(t, f.index.indexed)
	assert.Empty(t, f.notifier.ready)
}

func TestSubmitSideEffectFailuresAreNotFatal(t *testing.T) {
	f := newProfileFixture(t, echoGenerator())
	f.index.err = errBoom
	f.notifier.err = errBoom
	_, err := f.svc.Submit(context.Background(), f.userID, ashaInput())
	assert.NoError(t, err)
}

func TestLatestSubmission(t *testing.T) {
	f := newProfileFixture(t, echoGenerator())
	_, err := f.svc.Latest(context.Background(), f.userID)
	assert.ErrorIs(t, err, ErrNoProfile)

	_, err = f.svc.Submit(context.Background(), f.userID, ashaInput())
	require.NoError(t, err)
	in := ashaInput()
	in.Name = "Asha v2"
	_, err = f.svc.Submit(context.Background(), f.userID, in)
	require.NoError(t, err)

	sub, err := f.svc.Latest(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, "Asha v2", sub.Profile.Name)
	assert.Len(t, sub.Recommendations, 11)
	assert.Equal(t, Courses, sub.Courses)
	assert.Len(t, sub.Jobs, 5)
}

func TestSplitRecommendationsSkipsCorruptRows(t *testing.T) {
	good, err := entity.NewCareer("ML Engineer")
	require.NoError(t, err)
	bad := entity.Recommendation{ID: 9, Type: entity.RecommendationCourse, Data: []byte("{")}

	courses, careers, jobs := splitRecommendations([]entity.Recommendation{bad, good}, nil)
	assert.Empty(t, courses)
	assert.Equal(t, []string{"ML Engineer"}, careers)
	assert.Empty(t, jobs)
}
