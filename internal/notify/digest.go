package notify

import (
	"fmt"
	"strings"
	"text/template"

	"marquee/internal/media"
)

var digestTemplate = template.Must(template.New("digest").Parse(
	`{{len .Releases}} new release{{if ne (len .Releases) 1}}s{{end}} from your directors:
{{range .Groups}}
{{.Director}}
{{- range .Releases}}
  - {{.Title}}{{if .ReleaseDate}} ({{.ReleaseDate}}){{end}}
    {{.IMDbURL}}
{{- end}}
{{end}}`))

type digestGroup struct {
	Director string
	Releases []media.Release
}

type digestData struct {
	Releases []media.Release
	Groups   []digestGroup
}

// RenderDigest produces the plain-text body for a digest. Releases arrive
// already ordered by the pipeline, so grouping preserves director order.
func RenderDigest(releases []media.Release) (string, error) {
	data := digestData{Releases: releases}
	for _, release := range releases {
		if n := len(data.Groups); n > 0 && data.Groups[n-1].Director == release.Director {
			data.Groups[n-1].Releases = append(data.Groups[n-1].Releases, release)
			continue
		}
		data.Groups = append(data.Groups, digestGroup{
			Director: release.Director,
			Releases: []media.Release{release},
		})
	}

	var builder strings.Builder
	if err := digestTemplate.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return builder.String(), nil
}
