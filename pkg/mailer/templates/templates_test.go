package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edupath/config"
)

func TestRenderWelcome(t *testing.T) {
	cfg := &config.Config{AppName: "EduPath", AppURL: "http://localhost:8080"}
	subject, text, html, err := Render(Welcome, NewWelcomeData(cfg, "asha@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "EduPath: welcome aboard", subject)
	assert.Contains(t, text, "asha@example.com")
	assert.Contains(t, html, "http://localhost:8080")
}

func TestRenderRoadmapReady(t *testing.T) {
	cfg := &config.Config{AppURL: "http://app.test"}
	data := NewRoadmapReadyData(cfg, "Asha", "asha@example.com", 7, "- one\n- two")
	subject, text, html, err := Render(RoadmapReady, data)
	require.NoError(t, err)
	assert.Equal(t, "Your career roadmap is ready", subject)
	assert.Contains(t, text, "- two")
	assert.Contains(t, html, "<li>- one</li>")
	assert.Contains(t, html, "http://app.test/api/dashboard")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", map[string]any{})
	assert.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "x", defaultFn("x", " "))
	assert.Equal(t, "x", defaultFn("x", nil))
	assert.Equal(t, "x", defaultFn("x", 0))
	assert.Equal(t, 3, defaultFn("x", 3))
}
