package showcase

import "showcase.dev/internal/models"

// Icon names follow the Feather icon set.
const (
	IconGitHub       = "github"
	IconExternalLink = "external-link"
	IconDownload     = "download"
	IconPlayCircle   = "play-circle"
)

// PrimaryKind is the variant of the single priority-selected action.
type PrimaryKind int

const (
	PrimaryNone PrimaryKind = iota
	PrimaryLive
	PrimaryDownload
	PrimaryDemo
)

func (k PrimaryKind) String() string {
	switch k {
	case PrimaryLive:
		return "live"
	case PrimaryDownload:
		return "download"
	case PrimaryDemo:
		return "demo"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k PrimaryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Link is one rendered action button.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
}

// Actions holds the buttons offered for a project. Code is independent of
// Primary: a code link is shown whenever it exists.
type Actions struct {
	Code    *Link       `json:"code,omitempty"`
	Kind    PrimaryKind `json:"kind"`
	Primary *Link       `json:"primary,omitempty"`
}

// ActionsFor maps a project to its action buttons. The primary slot goes to
// the first present link of webapp, apk, video, in that order.
func ActionsFor(p models.Project) Actions {
	var a Actions
	if p.GitHub != "" {
		a.Code = &Link{Label: "View Code", Href: p.GitHub, Icon: IconGitHub}
	}

	switch {
	case p.WebApp != "":
		a.Kind = PrimaryLive
		a.Primary = &Link{Label: "View Live", Href: p.WebApp, Icon: IconExternalLink}
	case p.APK != "":
		a.Kind = PrimaryDownload
		a.Primary = &Link{Label: "Download APK", Href: p.APK, Icon: IconDownload}
	case p.Video != "":
		a.Kind = PrimaryDemo
		a.Primary = &Link{Label: "Watch Full Demo", Href: p.Video, Icon: IconPlayCircle}
	}
	return a
}

// Links returns the buttons in render order: code first, then primary.
func (a Actions) Links() []Link {
	links := make([]Link, 0, 2)
	if a.Code != nil {
		links = append(links, *a.Code)
	}
	if a.Primary != nil {
		links = append(links, *a.Primary)
	}
	return links
}
