package sitecontent

// DefaultCatalog holds the compiled-in fallback value for every address the
// public site renders. Entries are immutable and never persisted; the store
// only ever holds overrides on top of these.
type DefaultCatalog map[Address]string

// Defaults returns the catalog of compiled fallback content. The values
// mirror the shipped site copy so a fresh deployment renders complete pages
// before any editor has touched anything.
func Defaults() DefaultCatalog {
	return DefaultCatalog{
		{Section: "hero", Key: "brand_name"}:  "DSP Film's",
		{Section: "hero", Key: "heading"}:     "Capturing Life's Beautiful Moments",
		{Section: "hero", Key: "tagline"}:     "Capturing Life's Precious Moments",
		{Section: "hero", Key: "description"}: "Expert in Cinematic & Wedding photography, newborn & maternity sessions, and commercial projects. Based in Ahilyanagar & Pune, Maharashtra, India.",

		{Section: "about", Key: "title"}:       "Meet Devendra S. Shinde",
		{Section: "about", Key: "subtitle"}:    "Cinematic Photographer & Visual Storyteller",
		{Section: "about", Key: "description"}: "With over 8 years of experience since February 2017 in cinematic photography and videography, I specialize in capturing life's most precious moments with an artistic eye.",
		{Section: "about", Key: "image"}:       "/uploads/defaults/about-portrait.webp",
		{Section: "about", Key: "experience"}:  "8+ Years",

		{Section: "contact", Key: "name"}:           "Devendra S. Shinde",
		{Section: "contact", Key: "phone"}:          "+91 8308398378",
		{Section: "contact", Key: "location"}:       "Ahilyanagar & Pune, Maharashtra",
		{Section: "contact", Key: "office_address"}: "1st floor, above Ola EV showroom, opp. Shilpa Garden, Nagar - Pune Highway, Ahilyanagar - 414001",

		{Section: "social", Key: "instagram"}: "https://www.instagram.com/d.s.p.films/",
		{Section: "social", Key: "facebook"}:  "https://www.facebook.com/devshindephotography/",
		{Section: "social", Key: "youtube"}:   "https://www.youtube.com/@devshindefilms6040/featured",
	}
}

// Lookup returns the default value for an address, if one is compiled in.
func (d DefaultCatalog) Lookup(addr Address) (string, bool) {
	v, ok := d[addr]
	return v, ok
}
