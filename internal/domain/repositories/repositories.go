// Package repositories defines the repository interfaces for the studio's
// domain entities. These abstract the persistence details so the application
// layer stays decoupled from the database.
package repositories

import (
	"github.com/dspfilms/studio-go/internal/domain/entities/admin"
	"github.com/dspfilms/studio-go/internal/domain/entities/catalog"
	"github.com/dspfilms/studio-go/internal/domain/entities/sitecontent"
)

// SiteContentRepository is the content-override store. (section, key) is
// unique; Upsert replaces an existing item for the same address. A store
// instance provides read-after-write consistency: a GetAll immediately after
// an Upsert reflects it.
type SiteContentRepository interface {
	GetAll() ([]sitecontent.ContentItem, error)
	GetBySection(section string) ([]sitecontent.ContentItem, error)
	Upsert(section, key, value, editorID string) (*sitecontent.ContentItem, error)
}

type GalleryRepository interface {
	FindAll() ([]*catalog.GalleryItem, error)
	FindActive() ([]*catalog.GalleryItem, error)
	FindByCategory(category string) ([]*catalog.GalleryItem, error)
	FindByID(id string) (*catalog.GalleryItem, error)
	Store(item *catalog.GalleryItem) error
	Update(item *catalog.GalleryItem) error
	Deactivate(id string) error
	Count() (int, error)
}

type ServiceOfferingRepository interface {
	FindActive() ([]*catalog.ServiceOffering, error)
	FindByID(id string) (*catalog.ServiceOffering, error)
	Store(offering *catalog.ServiceOffering) error
	Update(offering *catalog.ServiceOffering) error
	Deactivate(id string) error
}

type PackageRepository interface {
	FindActive() ([]*catalog.Package, error)
	FindByCategory(category string) ([]*catalog.Package, error)
	FindByID(id string) (*catalog.Package, error)
	Store(pkg *catalog.Package) error
	Update(pkg *catalog.Package) error
	Deactivate(id string) error
	Count() (int, error)
}

type TestimonialRepository interface {
	FindActive() ([]*catalog.Testimonial, error)
	FindByID(id string) (*catalog.Testimonial, error)
	Store(testimonial *catalog.Testimonial) error
	Update(testimonial *catalog.Testimonial) error
	Deactivate(id string) error
	Count() (int, error)
}

type BlogRepository interface {
	FindAll() ([]*catalog.BlogPost, error)
	FindActive() ([]*catalog.BlogPost, error)
	FindByID(id string) (*catalog.BlogPost, error)
	Store(post *catalog.BlogPost) error
	Update(post *catalog.BlogPost) error
	Delete(id string) error
}

type VideoRepository interface {
	FindAll() ([]*catalog.Video, error)
	FindActive() ([]*catalog.Video, error)
	FindByID(id string) (*catalog.Video, error)
	Store(video *catalog.Video) error
	Update(video *catalog.Video) error
	Delete(id string) error
}

type InquiryRepository interface {
	FindAll() ([]*catalog.Inquiry, error)
	FindByID(id string) (*catalog.Inquiry, error)
	Store(inquiry *catalog.Inquiry) error
	UpdateStatus(id string, status catalog.InquiryStatus) error
	Delete(id string) error
	Count() (int, error)
	CountByStatus(status catalog.InquiryStatus) (int, error)
}

type UserRepository interface {
	FindByEmail(email string) (*admin.User, error)
	FindByID(id string) (*admin.User, error)
	FindAll() ([]*admin.User, error)
	Store(user *admin.User) error
	UpdateLastLogin(id string) error
}

type SessionRepository interface {
	FindByTokenHash(tokenHash string) (*admin.Session, error)
	Store(session *admin.Session) error
	Delete(tokenHash string) error
	DeleteExpired() error
}

type SettingsRepository interface {
	Get() (*admin.Settings, error)
	Upsert(settings *admin.Settings) error
}

type ActivityRepository interface {
	Record(entry *admin.ActivityEntry) error
	FindRecent(limit int) ([]*admin.ActivityEntry, error)
}
