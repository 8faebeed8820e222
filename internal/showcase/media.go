package showcase

import (
	"strings"

	"showcase.dev/internal/models"
)

const (
	shareSuffix   = "/view?usp=sharing"
	previewSuffix = "/preview"
)

// MediaKind tells the modal which media panel to render.
type MediaKind int

const (
	MediaImage MediaKind = iota
	MediaVideo
)

func (k MediaKind) String() string {
	switch k {
	case MediaVideo:
		return "video"
	default:
		return "image"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k MediaKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Media is the content of the modal's media panel.
type Media struct {
	Kind  MediaKind `json:"kind"`
	Src   string    `json:"src"`
	Title string    `json:"title"`
}

// MediaFor picks the media panel for a project. A video wins over the static
// image regardless of which link owns the primary action.
func MediaFor(p models.Project) Media {
	if p.Video != "" {
		return Media{Kind: MediaVideo, Src: EmbedURL(p.Video), Title: p.Title}
	}
	return Media{Kind: MediaImage, Src: p.Image, Title: p.Title}
}

// EmbedURL rewrites a sharing link into its embeddable preview form.
// URLs without the sharing suffix are returned unchanged.
func EmbedURL(video string) string {
	return strings.Replace(video, shareSuffix, previewSuffix, 1)
}
