package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resumeFixture struct {
	svc      *ResumeService
	profiles *profileFixture
	sessions *fakeSessions
	renderer *fakeRenderer
	gen      *fakeGenerator
}

func newResumeFixture(t *testing.T, gen *fakeGenerator) *resumeFixture {
	t.Helper()
	pf := newProfileFixture(t, echoGenerator())
	sessions := newFakeSessions()
	_, err := sessions.Start(context.Background(), pf.userID, "asha@example.com")
	require.NoError(t, err)
	r := &fakeRenderer{}
	return &resumeFixture{
		svc:      NewResumeService(pf.store, pf.store, sessions, gen, r, nil),
		profiles: pf,
		sessions: sessions,
		renderer: r,
		gen:      gen,
	}
}

func TestPrefillForm(t *testing.T) {
	f := newResumeFixture(t, echoGenerator())
	uid := f.profiles.userID

	form, err := f.svc.PrefillForm(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, ResumeForm{}, form)

	f.profiles.extract.text = "Intern at Acme"
	in := ashaInput()
	in.Document = &Upload{Filename: "cv.pdf", Data: []byte("%PDF")}
	_, err = f.profiles.svc.Submit(context.Background(), uid, in)
	require.NoError(t, err)

	form, err = f.svc.PrefillForm(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "Asha", form.Name)
	assert.Equal(t, "8.1", form.CGPA)
	assert.Equal(t, "Python, SQL", form.Skills)
	assert.Equal(t, "Intern at Acme", form.Projects)
	assert.Equal(t, "Intern at Acme", form.Experience)
	assert.Equal(t, EducationPlaceholder, form.Education)
}

func TestSubmitFormSavesDraftAndRemembersResume(t *testing.T) {
	f := newResumeFixture(t, echoGenerator())
	uid := f.profiles.userID

	out, err := f.svc.SubmitForm(context.Background(), uid, ResumeForm{Name: " Asha ", Email: "asha@example.com", Skills: "Go"})
	require.NoError(t, err)
	assert.False(t, out.Fallback)

	require.Len(t, f.profiles.store.drafts, 1)
	assert.Equal(t, "Asha", f.profiles.store.drafts[0].Name)
	require.Len(t, f.gen.calls, 1)
	assert.Equal(t, 700, f.gen.calls[0].MaxTokens)
	assert.Contains(t, f.gen.calls[0].Prompt, "**ASHA**")
	assert.Contains(t, f.gen.calls[0].Prompt, "Skills: Go")

	var stored string
	ok, err := f.sessions.Get(context.Background(), uid, sessionLatestResume, &stored)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, out.Text, stored)
}

func TestSubmitFormFallback(t *testing.T) {
	f := newResumeFixture(t, failingGenerator())
	out, err := f.svc.SubmitForm(context.Background(), f.profiles.userID, ResumeForm{Name: "Asha", CGPA: "8.1"})
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.True(t, strings.HasPrefix(out.Text, "**ASHA**"))
	assert.Contains(t, out.Text, "• Languages: Python, Java")
	assert.Contains(t, out.Text, "CGPA: 8.1/10")
	assert.Contains(t, out.Text, "• Add your projects here")
}

func TestSubmitFormBlankGenerationUsesFallback(t *testing.T) {
	f := newResumeFixture(t, &fakeGenerator{reply: func(string) string { return "  \n" }})
	out, err := f.svc.SubmitForm(context.Background(), f.profiles.userID, ResumeForm{Name: "Asha"})
	require.NoError(t, err)
	assert.True(t, out.Fallback)
}

func TestSubmitFormDraftFailure(t *testing.T) {
	f := newResumeFixture(t, echoGenerator())
	f.profiles.store.failSave = true
	_, err := f.svc.SubmitForm(context.Background(), f.profiles.userID, ResumeForm{Name: "Asha"})
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, f.gen.calls)
}

func TestBuildRequiresProfile(t *testing.T) {
	f := newResumeFixture(t, echoGenerator())
	_, err := f.svc.Build(context.Background(), f.profiles.userID, "modern")
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestBuildTemplates(t *testing.T) {
	f := newResumeFixture(t, echoGenerator())
	uid := f.profiles.userID
	_, err := f.profiles.svc.Submit(context.Background(), uid, ashaInput())
	require.NoError(t, err)

	out, err := f.svc.Build(context.Background(), uid, "Modern")
	require.NoError(t, err)
	assert.Equal(t, "modern", out.Template)
	assert.Contains(t, f.gen.calls[0].Prompt, "strong action verbs")
	assert.Equal(t, 600, f.gen.calls[0].MaxTokens)
	assert.True(t, strings.HasSuffix(f.gen.calls[0].Prompt, "Name: Asha\nCGPA: 8.1\nSkills: Python, SQL\nInterests: AI\nResume: "))

	out, err = f.svc.Build(context.Background(), uid, "fancy")
	require.NoError(t, err)
	assert.Equal(t, "classic", out.Template)
	assert.Contains(t, f.gen.calls[1].Prompt, "traditional, formal language")
}

func TestBuildFallback(t *testing.T) {
	f := newResumeFixture(t, failingGenerator())
	uid := f.profiles.userID
	in := ashaInput()
	in.Skills = ""
	_, err := f.profiles.svc.Submit(context.Background(), uid, in)
	require.NoError(t, err)

	out, err := f.svc.Build(context.Background(), uid, "")
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.True(t, strings.HasPrefix(out.Text, "**Asha**"))
	assert.Contains(t, out.Text, "B.Tech - CGPA: 8.1")
	assert.Contains(t, out.Text, "• Python, ML, AWS")
}

func TestDownload(t *testing.T) {
	f := newResumeFixture(t, echoGenerator())
	uid := f.profiles.userID

	_, err := f.svc.Download(context.Background(), uid)
	assert.ErrorIs(t, err, ErrNoResume)

	require.NoError(t, f.sessions.Put(context.Background(), uid, sessionLatestResume, "ASHA\n\nSKILLS"))
	doc, err := f.svc.Download(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), doc)
	assert.Equal(t, []string{"ASHA", "", "SKILLS"}, f.renderer.lines)
}

func TestDownloadRenderFailure(t *testing.T) {
	f := newResumeFixture(t, echoGenerator())
	uid := f.profiles.userID
	require.NoError(t, f.sessions.Put(context.Background(), uid, sessionLatestResume, "ASHA"))
	f.renderer.err = errBoom
	_, err := f.svc.Download(context.Background(), uid)
	assert.ErrorIs(t, err, errBoom)
}
