package spacedeck

import (
	"path"
	"strings"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// Reference is a repository path attached to a slide, resolved to the public
// asset it opens.
type Reference struct {
	Path string
	// Href is the public location of the asset, empty when inert.
	Href string
	// Action opens the matching overlay. Nil for inert references and for
	// media, which open in a new browsing context instead.
	Action *Action
}

func (r Reference) Inert() bool {
	return r.Href == ""
}

// NewTab reports whether the reference opens outside the presentation.
func (r Reference) NewTab() bool {
	return r.Href != "" && r.Action == nil
}

// ResolveReference routes a repository path to an overlay by file extension.
// Paths with a wildcard are inert, web addresses open the external viewer.
func ResolveReference(p string) Reference {
	ref := Reference{Path: p}
	if strings.Contains(p, "*") {
		return ref
	}
	if IsWebURL(p) {
		ref.Href = p
		a := OpenExternal(p, p)
		ref.Action = &a
		return ref
	}
	file := p
	if i := strings.LastIndex(p, "/"); i >= 0 && i < len(p)-1 {
		file = p[i+1:]
	}
	ext := strings.ToLower(path.Ext(file))

	switch {
	case ext == ".md" || ext == ".txt":
		ref.Href = "/prompts/" + file
		a := OpenMarkdown(ref.Href, file)
		ref.Action = &a
	case imageExtensions[ext]:
		ref.Href = "/prints/" + file
		a := OpenImage(ref.Href, file)
		ref.Action = &a
	case ext == ".pdf":
		ref.Href = "/docs/" + file
		a := OpenDocument(ref.Href, file)
		ref.Action = &a
	case ext == ".mp4":
		ref.Href = "/media/" + file
	}
	return ref
}

func IsWebURL(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func ResolveReferences(paths []string) []Reference {
	if len(paths) == 0 {
		return nil
	}
	refs := make([]Reference, len(paths))
	for i, p := range paths {
		refs[i] = ResolveReference(p)
	}
	return refs
}
