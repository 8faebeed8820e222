package showcase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase.dev/internal/models"
)

func TestActionsFor_WebAppBeatsAPK(t *testing.T) {
	a := ActionsFor(models.Project{
		WebApp: "https://app.example.com",
		APK:    "https://example.com/app.apk",
	})

	require.NotNil(t, a.Primary)
	assert.Equal(t, PrimaryLive, a.Kind)
	assert.Equal(t, "View Live", a.Primary.Label)
	assert.Equal(t, "https://app.example.com", a.Primary.Href)
	assert.Nil(t, a.Code)
}

func TestActionsFor_APKBeatsVideo(t *testing.T) {
	a := ActionsFor(models.Project{
		APK:   "https://example.com/app.apk",
		Video: "https://drive.example.com/file/d/1/view?usp=sharing",
	})

	require.NotNil(t, a.Primary)
	assert.Equal(t, PrimaryDownload, a.Kind)
	assert.Equal(t, "Download APK", a.Primary.Label)
}

func TestActionsFor_VideoOnlyIsDemo(t *testing.T) {
	a := ActionsFor(models.Project{Video: "https://drive.example.com/file/d/1/view?usp=sharing"})

	require.NotNil(t, a.Primary)
	assert.Equal(t, PrimaryDemo, a.Kind)
	assert.Equal(t, "Watch Full Demo", a.Primary.Label)
	assert.Equal(t, IconPlayCircle, a.Primary.Icon)
	// the button links the sharing URL, not the embed form
	assert.Equal(t, "https://drive.example.com/file/d/1/view?usp=sharing", a.Primary.Href)
}

func TestActionsFor_CodeOnly(t *testing.T) {
	a := ActionsFor(models.Project{GitHub: "https://github.com/example/repo"})

	assert.Equal(t, PrimaryNone, a.Kind)
	assert.Nil(t, a.Primary)
	require.NotNil(t, a.Code)
	assert.Equal(t, "View Code", a.Code.Label)
	assert.Equal(t, IconGitHub, a.Code.Icon)
}

func TestActionsFor_CodeShownAlongsidePrimary(t *testing.T) {
	a := ActionsFor(models.Project{
		GitHub: "https://github.com/example/repo",
		WebApp: "https://app.example.com",
	})

	links := a.Links()
	require.Len(t, links, 2)
	assert.Equal(t, "View Code", links[0].Label)
	assert.Equal(t, "View Live", links[1].Label)
}

func TestActionsFor_NoLinks(t *testing.T) {
	a := ActionsFor(models.Project{ID: "bare", Title: "Bare"})

	assert.Equal(t, PrimaryNone, a.Kind)
	assert.Empty(t, a.Links())
}

func TestActions_JSON(t *testing.T) {
	data, err := json.Marshal(ActionsFor(models.Project{APK: "https://example.com/app.apk"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"download","primary":{"label":"Download APK","href":"https://example.com/app.apk","icon":"download"}}`, string(data))
}
