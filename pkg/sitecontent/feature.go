package sitecontent

import (
	"time"
)

// Kind discriminates the six searchable content types.
type Kind string

const (
	KindAlbum    Kind = "album"
	KindBlog     Kind = "blog"
	KindDocument Kind = "document"
	KindBusiness Kind = "business"
	KindProduct  Kind = "product"
	KindProject  Kind = "project"

	// KindMedia never appears in the search feed; album media surface
	// through their album. It exists for error reporting only.
	KindMedia Kind = "media"
)

// FeatureRecord is one row of the merged search feed: a record tagged with
// its kind, a required display name, the record's last activity timestamp and
// any resolved reference labels. Downstream sorting and the newest-timestamp
// scan read only DisplayName and ActivityAt; the per-kind shape is never
// re-inspected after tagging.
type FeatureRecord struct {
	Kind        Kind              `json:"feature"`
	DisplayName string            `json:"display_name"`
	ActivityAt  *time.Time        `json:"activity_at,omitempty"`
	Labels      map[string]string `json:"-"`
	Payload     interface{}       `json:"data"`
}

func albumFeature(a *Album) FeatureRecord {
	t := a.UpdatedAt
	return FeatureRecord{
		Kind:        KindAlbum,
		DisplayName: a.Name,
		ActivityAt:  &t,
		Labels:      map[string]string{"creator": a.Creator},
		Payload:     a,
	}
}

func blogFeature(b *Blog) FeatureRecord {
	t := b.UpdatedAt
	return FeatureRecord{
		Kind:        KindBlog,
		DisplayName: b.Title,
		ActivityAt:  &t,
		Labels:      map[string]string{"author": b.Author},
		Payload:     b,
	}
}

func documentFeature(d *Document) FeatureRecord {
	t := d.UploadedAt
	return FeatureRecord{
		Kind:        KindDocument,
		DisplayName: d.Name,
		ActivityAt:  &t,
		Labels:      map[string]string{"uploader": d.Uploader},
		Payload:     d,
	}
}

func businessFeature(b *Business) FeatureRecord {
	t := b.UpdatedAt
	return FeatureRecord{
		Kind:        KindBusiness,
		DisplayName: b.Title,
		ActivityAt:  &t,
		Payload:     b,
	}
}

func productFeature(p *Product) FeatureRecord {
	t := p.UpdatedAt
	return FeatureRecord{
		Kind:        KindProduct,
		DisplayName: p.Title,
		ActivityAt:  &t,
		Labels:      map[string]string{"business": p.BusinessTitle},
		Payload:     p,
	}
}

func projectFeature(p *Project) FeatureRecord {
	t := p.UpdatedAt
	return FeatureRecord{
		Kind:        KindProject,
		DisplayName: p.Title,
		ActivityAt:  &t,
		Labels:      map[string]string{"business": p.BusinessTitle},
		Payload:     p,
	}
}
