// Package catalog defines the public-site collection entities: galleries,
// service offerings, packages, testimonials, blog posts, videos, and
// visitor inquiries.
package catalog

import "time"

type GalleryItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	Description string     `json:"description"`
	Order       int        `json:"order"`
	IsActive    bool       `json:"isActive"`
	Created     time.Time  `json:"created"`
	Changed     *time.Time `json:"changed,omitempty"`
}

type ServiceOffering struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Features    []string   `json:"features"`
	Image       string     `json:"image"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	Order       int        `json:"order"`
	IsActive    bool       `json:"isActive"`
	Created     time.Time  `json:"created"`
	Changed     *time.Time `json:"changed,omitempty"`
}

type Package struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Price    string     `json:"price"`
	Duration string     `json:"duration"`
	Category string     `json:"category"`
	Features []string   `json:"features"`
	Popular  bool       `json:"popular"`
	Color    string     `json:"color"`
	Order    int        `json:"order"`
	IsActive bool       `json:"isActive"`
	Created  time.Time  `json:"created"`
	Changed  *time.Time `json:"changed,omitempty"`
}

type Testimonial struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Event    string     `json:"event"`
	Rating   int        `json:"rating"`
	Text     string     `json:"text"`
	Image    string     `json:"image"`
	Location string     `json:"location"`
	Order    int        `json:"order"`
	IsActive bool       `json:"isActive"`
	Created  time.Time  `json:"created"`
	Changed  *time.Time `json:"changed,omitempty"`
}

type BlogPost struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Slug     string     `json:"slug"`
	Excerpt  string     `json:"excerpt"`
	Body     string     `json:"body"`
	Image    string     `json:"image"`
	IsActive bool       `json:"isActive"`
	Created  time.Time  `json:"created"`
	Changed  *time.Time `json:"changed,omitempty"`
}

type Video struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	URL      string     `json:"url"`
	Thumb    string     `json:"thumb"`
	Order    int        `json:"order"`
	IsActive bool       `json:"isActive"`
	Created  time.Time  `json:"created"`
	Changed  *time.Time `json:"changed,omitempty"`
}

// InquiryStatus tracks the lifecycle of a contact-form lead.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryResponded InquiryStatus = "responded"
	InquiryBooked    InquiryStatus = "booked"
	InquiryClosed    InquiryStatus = "closed"
)

type Inquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	EventType string        `json:"eventType"`
	EventDate string        `json:"eventDate,omitempty"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	Created   time.Time     `json:"created"`
	Changed   *time.Time    `json:"changed,omitempty"`
}
